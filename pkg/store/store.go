// Package store keeps the session's submitted records in insertion order.
// Records live in memory only; nothing is written to disk.
package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-formdesk/pkg/schema"
)

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides the default UUIDv7 generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.ids = gen
		}
	}
}

// WithRecords seeds the store, keeping the given order. Records without an id
// receive one from the generator when the store is built.
func WithRecords(records ...schema.Record) Option {
	return func(s *Store) {
		s.seed = append(s.seed, records...)
	}
}

// Store is an ordered, in-memory collection of submitted records. All reads
// return copies.
type Store struct {
	mu      sync.RWMutex
	ids     IDGenerator
	records []schema.Record
	index   map[schema.RecordID]int
	seed    []schema.Record
}

// New constructs a store.
func New(options ...Option) (*Store, error) {
	s := &Store{
		ids:   UUIDGenerator{},
		index: make(map[schema.RecordID]int),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}

	seed := s.seed
	s.seed = nil
	for _, record := range seed {
		if record.ID == "" {
			if _, err := s.Append(record.TypeName, record.Values); err != nil {
				return nil, err
			}
			continue
		}
		if err := s.insert(record.Clone()); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MustNew panics when New fails.
func MustNew(options ...Option) *Store {
	s, err := New(options...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Store) insert(record schema.Record) error {
	if _, exists := s.index[record.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, record.ID)
	}
	s.index[record.ID] = len(s.records)
	s.records = append(s.records, record)
	return nil
}

// Append stores a new record at the end of the collection and returns it.
func (s *Store) Append(typeName string, values schema.Values) (schema.Record, error) {
	typeName = strings.TrimSpace(typeName)
	if typeName == "" {
		return schema.Record{}, fmt.Errorf("store: form type is required")
	}
	id, err := s.ids.NewID()
	if err != nil {
		return schema.Record{}, err
	}
	if id == "" {
		return schema.Record{}, fmt.Errorf("store: id generator returned an empty id")
	}

	record := schema.Record{ID: id, TypeName: typeName, Values: values.Clone()}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.insert(record); err != nil {
		return schema.Record{}, err
	}
	return record.Clone(), nil
}

// UpdateByID replaces the values of an existing record. The id, type and
// position are preserved.
func (s *Store) UpdateByID(id schema.RecordID, typeName string, values schema.Values) (schema.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return schema.Record{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	current := s.records[pos]
	if typeName != "" && typeName != current.TypeName {
		return schema.Record{}, fmt.Errorf("%w: record %q is %q, not %q", ErrTypeMismatch, id, current.TypeName, typeName)
	}
	current.Values = values.Clone()
	s.records[pos] = current
	return current.Clone(), nil
}

// DeleteByID removes exactly one record.
func (s *Store) DeleteByID(id schema.RecordID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	s.records = append(s.records[:pos], s.records[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.records); i++ {
		s.index[s.records[i].ID] = i
	}
	return nil
}

// Get returns a copy of one record.
func (s *Store) Get(id schema.RecordID) (schema.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return schema.Record{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return s.records[pos].Clone(), nil
}

// List returns a snapshot of all records in insertion order.
func (s *Store) List() []schema.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]schema.Record, len(s.records))
	for i, record := range s.records {
		out[i] = record.Clone()
	}
	return out
}

// Len reports the number of records held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
