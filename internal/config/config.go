package config

const (
	// DefaultTargetPath is where the landing page is written, relative to the
	// working directory the command is started from.
	DefaultTargetPath = "../Social-Scheduler-Landing/index.html"

	// DefaultDatabaseURL is empty; the emission ledger stays disabled unless a URL
	// is provided via flag or environment.
	DefaultDatabaseURL = ""

	// DefaultLogLevel is used when LOG_LEVEL is not set.
	DefaultLogLevel = "info"

	// DefaultHistoryLimit caps the number of ledger rows printed by the history command.
	DefaultHistoryLimit = 20
)
