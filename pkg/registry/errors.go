package registry

import "errors"

var (
	// ErrNotFound is returned when a form type is not registered.
	ErrNotFound = errors.New("registry: form type not found")
	// ErrDuplicateType is returned when two schemas share a type name.
	ErrDuplicateType = errors.New("registry: duplicate form type")
	// ErrInvalidSchema is returned when a schema fails structural checks.
	ErrInvalidSchema = errors.New("registry: invalid schema")
)
