package engine

import "errors"

var (
	// ErrValidationFailed is returned by Submit when required fields are empty.
	// The per-field messages are available from Snapshot().Errors.
	ErrValidationFailed = errors.New("engine: validation failed")
	// ErrInvalidTransition is returned when an operation is not allowed in the
	// current phase.
	ErrInvalidTransition = errors.New("engine: invalid transition")
	// ErrUnknownField is returned when a value targets a field the active form
	// does not define.
	ErrUnknownField = errors.New("engine: unknown field")
)
