package domain

// Verification is the outcome of comparing the target file against the payload.
type Verification struct {
	TargetPath  string
	Match       bool
	Expected    string // payload fingerprint
	Actual      string // target file fingerprint
	ActualBytes int64
}
