// Package session wires the registry, submission store, form engine and edit
// coordinator into the single object a view layer talks to.
package session

import (
	"fmt"
	"log/slog"

	"github.com/goliatone/go-formdesk/pkg/edit"
	"github.com/goliatone/go-formdesk/pkg/engine"
	"github.com/goliatone/go-formdesk/pkg/registry"
	"github.com/goliatone/go-formdesk/pkg/render"
	"github.com/goliatone/go-formdesk/pkg/schema"
	"github.com/goliatone/go-formdesk/pkg/store"
)

// Session owns one store, engine and coordinator over a shared registry.
type Session struct {
	registry    *registry.Registry
	store       *store.Store
	engine      *engine.Engine
	coordinator *edit.Coordinator
	logger      *slog.Logger
}

// New builds a session. Without options it uses the bundled form types, a
// UUIDv7 store and system timers.
func New(options ...Option) (*Session, error) {
	cfg := config{
		logger:      slog.Default(),
		submitDelay: engine.DefaultSubmitDelay,
		deleteDelay: edit.DefaultDeleteDelay,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.registry == nil {
		reg, err := registry.Default()
		if err != nil {
			return nil, fmt.Errorf("session: load default forms: %w", err)
		}
		cfg.registry = reg
	}
	if cfg.store == nil {
		var storeOpts []store.Option
		if cfg.ids != nil {
			storeOpts = append(storeOpts, store.WithIDGenerator(cfg.ids))
		}
		s, err := store.New(storeOpts...)
		if err != nil {
			return nil, fmt.Errorf("session: create store: %w", err)
		}
		cfg.store = s
	}

	engineOpts := []engine.Option{
		engine.WithSubmitDelay(cfg.submitDelay),
		engine.WithLogger(cfg.logger),
		engine.WithObserver(cfg.observer),
	}
	if cfg.scheduler != nil {
		engineOpts = append(engineOpts, engine.WithScheduler(cfg.scheduler))
	}
	eng, err := engine.New(cfg.registry, cfg.store, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("session: create engine: %w", err)
	}

	coordinator, err := edit.New(cfg.store, eng,
		edit.WithDeleteDelay(cfg.deleteDelay),
		edit.WithLogger(cfg.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("session: create coordinator: %w", err)
	}

	return &Session{
		registry:    cfg.registry,
		store:       cfg.store,
		engine:      eng,
		coordinator: coordinator,
		logger:      cfg.logger,
	}, nil
}

// TypeNames lists the selectable form types in definition order.
func (s *Session) TypeNames() []string {
	return s.registry.ListTypeNames()
}

// Lookup returns one form type.
func (s *Session) Lookup(typeName string) (schema.FormTypeSchema, error) {
	return s.registry.Lookup(typeName)
}

// Snapshot returns the current engine state.
func (s *Session) Snapshot() engine.Snapshot {
	return s.engine.Snapshot()
}

// Records lists submitted records in insertion order.
func (s *Session) Records() []schema.Record {
	return s.store.List()
}

// SelectType starts a new form of the given type.
func (s *Session) SelectType(typeName string) error {
	if err := s.engine.SelectType(typeName); err != nil {
		s.logger.Debug("select type rejected", "type", typeName, "error", err)
		return err
	}
	return nil
}

// SetFieldValue records input for one field of the active form.
func (s *Session) SetFieldValue(name, value string) error {
	return s.engine.SetFieldValue(name, value)
}

// Validate runs validation without submitting.
func (s *Session) Validate() (schema.Errors, bool) {
	return s.engine.Validate()
}

// Submit validates and stores the active form.
func (s *Session) Submit() (schema.Record, error) {
	record, err := s.engine.Submit()
	if err != nil {
		s.logger.Debug("submit failed", "error", err)
		return schema.Record{}, err
	}
	s.logger.Info("record saved", "id", record.ID, "type", record.TypeName)
	return record, nil
}

// CancelEdit abandons the current edit.
func (s *Session) CancelEdit() error {
	return s.engine.CancelEdit()
}

// BeginEdit loads a stored record into the form.
func (s *Session) BeginEdit(id schema.RecordID) (schema.Record, error) {
	return s.coordinator.BeginEdit(id)
}

// DeleteRecord removes a stored record.
func (s *Session) DeleteRecord(id schema.RecordID) error {
	return s.coordinator.DeleteRecord(id)
}

// Settle applies a pending post-submit reset immediately. Synchronous view
// loops call it before redrawing instead of waiting for the timer.
func (s *Session) Settle() {
	s.engine.Settle()
}

// FieldViews describes the fields of the active form, or nil when idle.
func (s *Session) FieldViews() []render.FieldView {
	snap := s.engine.Snapshot()
	if snap.ActiveType == "" {
		return nil
	}
	form, err := s.registry.Lookup(snap.ActiveType)
	if err != nil {
		return nil
	}
	return render.RenderForm(form, snap.Values, snap.Errors)
}

// Page builds the full view model for the current state.
func (s *Session) Page() render.Page {
	snap := s.engine.Snapshot()
	in := render.PageInput{
		TypeNames: s.registry.ListTypeNames(),
		Values:    snap.Values,
		Errors:    snap.Errors,
		EditingID: snap.EditingID,
		Progress:  snap.Progress,
		Message:   snap.Message,
		Records:   s.store.List(),
		Lookup:    s.registry.Lookup,
	}
	if snap.ActiveType != "" {
		if form, err := s.registry.Lookup(snap.ActiveType); err == nil {
			in.Form = &form
		}
	}
	return render.NewPage(in)
}

// Close stops pending timers.
func (s *Session) Close() {
	s.engine.Close()
}
