package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/goliatone/go-formdesk/pkg/render"
	"github.com/goliatone/go-formdesk/pkg/schema"
)

// Schemas resolves form types. *registry.Registry satisfies it.
type Schemas interface {
	Lookup(typeName string) (schema.FormTypeSchema, error)
}

// Records is the part of the submission store the engine writes to.
// *store.Store satisfies it.
type Records interface {
	Append(typeName string, values schema.Values) (schema.Record, error)
	UpdateByID(id schema.RecordID, typeName string, values schema.Values) (schema.Record, error)
}

// Engine owns the state of the form being filled in.
type Engine struct {
	mu sync.Mutex

	schemas     Schemas
	records     Records
	scheduler   Scheduler
	submitDelay time.Duration
	observer    func(Snapshot)
	logger      *slog.Logger

	form      *schema.FormTypeSchema
	values    schema.Values
	errors    schema.Errors
	editingID schema.RecordID
	message   string

	stopTimer    func() bool
	timerGen     uint64
	resetPending bool
}

// New constructs an idle engine reading schemas from schemas and writing
// submissions to records.
func New(schemas Schemas, records Records, options ...Option) (*Engine, error) {
	if schemas == nil {
		return nil, errors.New("engine: schema source is required")
	}
	if records == nil {
		return nil, errors.New("engine: record store is required")
	}
	e := &Engine{
		schemas:     schemas,
		records:     records,
		scheduler:   SystemScheduler{},
		submitDelay: DefaultSubmitDelay,
		logger:      slog.Default(),
		values:      schema.Values{},
		errors:      schema.Errors{},
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e, nil
}

// SelectType activates a form type with empty values. It is rejected while a
// record is being edited.
func (e *Engine) SelectType(typeName string) error {
	form, err := e.schemas.Lookup(typeName)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.settleLocked()
	if current := e.editingID; current != "" {
		e.mu.Unlock()
		return fmt.Errorf("%w: cannot select %q while editing %q", ErrInvalidTransition, typeName, current)
	}
	e.cancelTimerLocked()
	e.message = ""
	e.form = &form
	e.values = schema.Values{}
	e.errors = schema.Errors{}
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.logger.Debug("form type selected", "type", typeName)
	e.notify(snap)
	return nil
}

// SetFieldValue stores the interpreted value of one field and clears any
// error the field had.
func (e *Engine) SetFieldValue(name, value string) error {
	e.mu.Lock()
	e.settleLocked()
	if e.form == nil {
		e.mu.Unlock()
		return fmt.Errorf("%w: no active form", ErrInvalidTransition)
	}
	field, ok := e.form.Field(name)
	if !ok {
		typeName := e.form.TypeName
		e.mu.Unlock()
		return fmt.Errorf("%w: %q is not part of %q", ErrUnknownField, name, typeName)
	}
	e.values[name] = render.Interpret(field, value)
	delete(e.errors, name)
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.notify(snap)
	return nil
}

// Validate replaces the current errors with a fresh validation pass and
// reports whether the form is valid. An idle engine is trivially valid.
func (e *Engine) Validate() (schema.Errors, bool) {
	e.mu.Lock()
	e.settleLocked()
	if e.form == nil {
		e.mu.Unlock()
		return schema.Errors{}, true
	}
	e.errors = Validate(*e.form, e.values)
	errs := e.errors.Clone()
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.notify(snap)
	return errs, len(errs) == 0
}

// Submit validates the form and, when valid, appends a new record or updates
// the one being edited. After an update the engine stops editing at once. The
// submitted values stay visible until the form resets to Idle after the
// submit delay.
func (e *Engine) Submit() (schema.Record, error) {
	e.mu.Lock()
	e.settleLocked()
	if e.form == nil {
		e.mu.Unlock()
		return schema.Record{}, fmt.Errorf("%w: no active form", ErrInvalidTransition)
	}

	e.errors = Validate(*e.form, e.values)
	if n := len(e.errors); n > 0 {
		snap := e.snapshotLocked()
		e.mu.Unlock()
		e.logger.Debug("submit rejected", "type", snap.ActiveType, "missing", n)
		e.notify(snap)
		return schema.Record{}, fmt.Errorf("%w: %d required field(s) empty", ErrValidationFailed, n)
	}

	var (
		record  schema.Record
		err     error
		message string
	)
	if e.editingID != "" {
		record, err = e.records.UpdateByID(e.editingID, e.form.TypeName, e.values.Clone())
		message = MessageUpdated
	} else {
		record, err = e.records.Append(e.form.TypeName, e.values.Clone())
		message = MessageSubmitted
	}
	if err != nil {
		e.mu.Unlock()
		return schema.Record{}, fmt.Errorf("engine: submit: %w", err)
	}

	// A saved edit is over; only the post-submit display remains.
	e.editingID = ""
	e.message = message
	e.scheduleLocked(e.submitDelay, true)
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.logger.Debug("form submitted", "type", record.TypeName, "id", record.ID, "update", message == MessageUpdated)
	e.notify(snap)
	return record, nil
}

// CancelEdit abandons the record being edited without touching the store.
func (e *Engine) CancelEdit() error {
	e.mu.Lock()
	e.settleLocked()
	if e.editingID == "" {
		e.mu.Unlock()
		return fmt.Errorf("%w: not editing", ErrInvalidTransition)
	}
	id := e.editingID
	e.resetLocked()
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.logger.Debug("edit cancelled", "id", id)
	e.notify(snap)
	return nil
}

// Load selects typeName and installs values verbatim for editing record id,
// as one step. It is rejected while another record is being edited.
func (e *Engine) Load(typeName string, values schema.Values, id schema.RecordID) error {
	if id == "" {
		return errors.New("engine: record id is required")
	}
	form, err := e.schemas.Lookup(typeName)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.settleLocked()
	if e.editingID != "" {
		current := e.editingID
		e.mu.Unlock()
		return fmt.Errorf("%w: already editing %q", ErrInvalidTransition, current)
	}
	e.form = &form
	e.values = values.Clone()
	e.errors = schema.Errors{}
	e.editingID = id
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.logger.Debug("record loaded for edit", "type", typeName, "id", id)
	e.notify(snap)
	return nil
}

// Announce shows message until delay elapses. It replaces any pending
// message.
func (e *Engine) Announce(message string, delay time.Duration) {
	e.mu.Lock()
	e.settleLocked()
	e.message = message
	e.scheduleLocked(delay, false)
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.notify(snap)
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Phase reports the current phase.
func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phaseLocked()
}

// Progress reports completion of the active form; 0 when idle.
func (e *Engine) Progress() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.form == nil {
		return 0
	}
	return Progress(*e.form, e.values)
}

// ActiveSchema returns the active form type, if any.
func (e *Engine) ActiveSchema() (schema.FormTypeSchema, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.form == nil {
		return schema.FormTypeSchema{}, false
	}
	return e.form.Clone(), true
}

// EditingID returns the id of the record being edited, or "".
func (e *Engine) EditingID() schema.RecordID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.editingID
}

// Settle applies a pending post-submit reset immediately.
func (e *Engine) Settle() {
	e.mu.Lock()
	settled := e.settleLocked()
	snap := e.snapshotLocked()
	e.mu.Unlock()
	if settled {
		e.notify(snap)
	}
}

// Close cancels the pending timer, if any.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelTimerLocked()
}

func (e *Engine) phaseLocked() Phase {
	switch {
	case e.form == nil:
		return PhaseIdle
	case e.editingID != "":
		return PhaseEditing
	default:
		return PhaseActive
	}
}

func (e *Engine) snapshotLocked() Snapshot {
	snap := Snapshot{
		Phase:        e.phaseLocked(),
		Values:       e.values.Clone(),
		Errors:       e.errors.Clone(),
		EditingID:    e.editingID,
		Message:      e.message,
		ResetPending: e.resetPending,
	}
	if e.form != nil {
		snap.ActiveType = e.form.TypeName
		snap.Progress = Progress(*e.form, e.values)
	}
	return snap
}

func (e *Engine) resetLocked() {
	e.form = nil
	e.values = schema.Values{}
	e.errors = schema.Errors{}
	e.editingID = ""
}

// scheduleLocked replaces the pending timer. When reset is set the form
// returns to Idle as the timer fires.
func (e *Engine) scheduleLocked(delay time.Duration, reset bool) {
	e.cancelTimerLocked()
	e.resetPending = reset
	gen := e.timerGen
	e.stopTimer = e.scheduler.AfterFunc(delay, func() { e.fire(gen) })
}

// cancelTimerLocked stops the pending timer and invalidates its callback in
// case it is already running.
func (e *Engine) cancelTimerLocked() {
	if e.stopTimer != nil {
		e.stopTimer()
		e.stopTimer = nil
	}
	e.timerGen++
	e.resetPending = false
}

// settleLocked applies a pending post-submit reset now. It reports whether
// anything changed.
func (e *Engine) settleLocked() bool {
	if !e.resetPending {
		return false
	}
	e.cancelTimerLocked()
	e.resetLocked()
	e.message = ""
	return true
}

func (e *Engine) fire(gen uint64) {
	e.mu.Lock()
	if gen != e.timerGen {
		e.mu.Unlock()
		return
	}
	e.stopTimer = nil
	if e.resetPending {
		e.resetPending = false
		e.resetLocked()
	}
	e.message = ""
	e.timerGen++
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.notify(snap)
}

func (e *Engine) notify(snap Snapshot) {
	if e.observer != nil {
		e.observer(snap)
	}
}
