package domain

import "errors"

// Domain-specific errors.
var (
	// Ledger errors
	ErrEmissionNotFound = errors.New("emission not found")
	ErrLedgerDisabled   = errors.New("emission ledger disabled: no database URL configured")
	ErrInvalidLimit     = errors.New("history limit must be positive")

	// Target errors
	ErrTargetMissing  = errors.New("landing page target does not exist")
	ErrTargetMismatch = errors.New("landing page target differs from embedded document")
)
