package entities

import "errors"

// Persistence-level conflicts surfaced by the repositories. They are normal
// outcomes, not failures: a status conflict means a concurrent writer already
// applied a newer gateway status, and a duplicate entry means a re-import.
var (
	ErrStatusConflict          = errors.New("transaction status conflict")
	ErrDuplicateStatementEntry = errors.New("duplicate statement entry")
	ErrDeliveryNotPending      = errors.New("webhook delivery is not pending")
	ErrStatementEntryNotFound  = errors.New("statement entry not found")
)
