package store

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/goliatone/go-formdesk/pkg/schema"
)

// IDGenerator produces record identifiers.
type IDGenerator interface {
	NewID() (schema.RecordID, error)
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func() (schema.RecordID, error)

// NewID calls f.
func (f IDGeneratorFunc) NewID() (schema.RecordID, error) {
	return f()
}

// UUIDGenerator issues time-ordered UUIDv7 identifiers, so ids sort by
// creation time and never collide within the same clock tick.
type UUIDGenerator struct{}

// NewID returns a fresh UUIDv7.
func (UUIDGenerator) NewID() (schema.RecordID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("store: generate id: %w", err)
	}
	return schema.RecordID(id.String()), nil
}

// Sequence issues "<prefix>-1", "<prefix>-2", ... and is safe for concurrent
// use. Mostly useful in tests and examples where ids must be predictable.
type Sequence struct {
	prefix string
	next   atomic.Uint64
}

// NewSequence returns a Sequence with the given prefix ("rec" when empty).
func NewSequence(prefix string) *Sequence {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "rec"
	}
	return &Sequence{prefix: prefix}
}

// NewID returns the next id in the sequence.
func (s *Sequence) NewID() (schema.RecordID, error) {
	n := s.next.Add(1)
	return schema.RecordID(fmt.Sprintf("%s-%d", s.prefix, n)), nil
}
