package domain

import "time"

// Emission records one successful write of the landing page payload.
type Emission struct {
	ID          string // assigned by the ledger, empty until recorded
	TargetPath  string
	Bytes       int64
	Fingerprint string
	CreatedAt   time.Time
}

// IsRecorded returns true if the emission has been stored in the ledger.
func (e *Emission) IsRecorded() bool {
	return e.ID != ""
}
