// Package edit bridges the submission store and the form engine: it loads
// stored records back into the engine for editing and deletes records.
package edit

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/goliatone/go-formdesk/pkg/engine"
	"github.com/goliatone/go-formdesk/pkg/schema"
)

// MessageDeleted is shown after a record is removed.
const MessageDeleted = "Entry deleted successfully."

// DefaultDeleteDelay is how long the delete message stays up.
const DefaultDeleteDelay = 3 * time.Second

// Store is the part of the submission store the coordinator needs.
type Store interface {
	Get(id schema.RecordID) (schema.Record, error)
	DeleteByID(id schema.RecordID) error
}

// Engine is the part of the form engine the coordinator drives.
type Engine interface {
	Load(typeName string, values schema.Values, id schema.RecordID) error
	CancelEdit() error
	EditingID() schema.RecordID
	Announce(message string, delay time.Duration)
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithDeleteDelay sets how long the delete message is shown. Negative values
// are ignored.
func WithDeleteDelay(d time.Duration) Option {
	return func(c *Coordinator) {
		if d >= 0 {
			c.deleteDelay = d
		}
	}
}

// WithLogger sets the logger used for record events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Coordinator implements the edit and delete flows over one store and one
// engine.
type Coordinator struct {
	store       Store
	engine      Engine
	deleteDelay time.Duration
	logger      *slog.Logger
}

// New constructs a Coordinator.
func New(records Store, eng Engine, options ...Option) (*Coordinator, error) {
	if records == nil {
		return nil, errors.New("edit: store is required")
	}
	if eng == nil {
		return nil, errors.New("edit: engine is required")
	}
	c := &Coordinator{
		store:       records,
		engine:      eng,
		deleteDelay: DefaultDeleteDelay,
		logger:      slog.Default(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// BeginEdit loads record id into the engine. The engine applies the type
// selection, the stored values and the editing id in a single step.
func (c *Coordinator) BeginEdit(id schema.RecordID) (schema.Record, error) {
	record, err := c.store.Get(id)
	if err != nil {
		return schema.Record{}, fmt.Errorf("edit: begin %q: %w", id, err)
	}
	if err := c.engine.Load(record.TypeName, record.Values, record.ID); err != nil {
		return schema.Record{}, fmt.Errorf("edit: begin %q: %w", id, err)
	}
	c.logger.Info("editing record", "id", record.ID, "type", record.TypeName)
	return record, nil
}

// DeleteRecord removes record id and shows the delete message. Deleting the
// record under edit cancels the edit first.
func (c *Coordinator) DeleteRecord(id schema.RecordID) error {
	if _, err := c.store.Get(id); err != nil {
		return fmt.Errorf("edit: delete %q: %w", id, err)
	}
	if c.engine.EditingID() == id {
		// A timer may have ended the edit since EditingID was read.
		if err := c.engine.CancelEdit(); err != nil && !errors.Is(err, engine.ErrInvalidTransition) {
			return fmt.Errorf("edit: delete %q: %w", id, err)
		}
	}
	if err := c.store.DeleteByID(id); err != nil {
		return fmt.Errorf("edit: delete %q: %w", id, err)
	}
	c.engine.Announce(MessageDeleted, c.deleteDelay)
	c.logger.Info("record deleted", "id", id)
	return nil
}
