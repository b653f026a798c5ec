package store

import "errors"

var (
	// ErrNotFound is returned for operations on an unknown record id.
	ErrNotFound = errors.New("store: record not found")
	// ErrDuplicateID is returned when the id generator repeats a live id.
	ErrDuplicateID = errors.New("store: duplicate record id")
	// ErrTypeMismatch is returned when an update names a different form type.
	ErrTypeMismatch = errors.New("store: form type mismatch")
)
