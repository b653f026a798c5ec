package edit

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdesk/pkg/engine"
	"github.com/goliatone/go-formdesk/pkg/schema"
	"github.com/goliatone/go-formdesk/pkg/store"
	"github.com/goliatone/go-formdesk/pkg/testsupport"
)

type fixture struct {
	store       *store.Store
	engine      *engine.Engine
	coordinator *Coordinator
	scheduler   *testsupport.ManualScheduler
	observed    []engine.Snapshot
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:     store.MustNew(store.WithIDGenerator(store.NewSequence("rec"))),
		scheduler: testsupport.NewManualScheduler(),
	}
	eng, err := engine.New(testsupport.Registry(t), f.store,
		engine.WithScheduler(f.scheduler),
		engine.WithObserver(func(s engine.Snapshot) { f.observed = append(f.observed, s) }),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	f.engine = eng
	f.coordinator, err = New(f.store, eng)
	if err != nil {
		t.Fatalf("new coordinator: %v", err)
	}
	return f
}

func TestBeginEdit_LoadsRecordAtomically(t *testing.T) {
	f := newFixture(t)
	record, _ := f.store.Append(testsupport.UserInformation, schema.Values{"firstName": "Ann", "lastName": "Lee"})
	f.observed = nil

	if _, err := f.coordinator.BeginEdit(record.ID); err != nil {
		t.Fatalf("begin edit: %v", err)
	}

	if len(f.observed) != 1 {
		t.Fatalf("expected a single observable change, got %d", len(f.observed))
	}
	snap := f.observed[0]
	want := engine.Snapshot{
		Phase:      engine.PhaseEditing,
		ActiveType: testsupport.UserInformation,
		Values:     schema.Values{"firstName": "Ann", "lastName": "Lee"},
		Errors:     schema.Errors{},
		EditingID:  record.ID,
		Progress:   100,
	}
	if diff := cmp.Diff(want, snap); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestBeginEdit_ThenSubmitUpdatesInPlace(t *testing.T) {
	f := newFixture(t)
	_, _ = f.store.Append(testsupport.UserInformation, schema.Values{"firstName": "Zed", "lastName": "Z"})
	target, _ := f.store.Append(testsupport.UserInformation, schema.Values{"firstName": "Ann", "lastName": "Lee"})

	if _, err := f.coordinator.BeginEdit(target.ID); err != nil {
		t.Fatalf("begin edit: %v", err)
	}
	if err := f.engine.SetFieldValue("age", "41"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := f.engine.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	list := f.store.List()
	if len(list) != 2 {
		t.Fatalf("edit created a duplicate: %d records", len(list))
	}
	if list[1].ID != target.ID || list[1].Values["age"] != "41" {
		t.Fatalf("record not updated in place: %+v", list[1])
	}
}

func TestBeginEdit_UnknownRecord(t *testing.T) {
	f := newFixture(t)
	if _, err := f.coordinator.BeginEdit("missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected store.ErrNotFound, got %v", err)
	}
	if f.engine.Phase() != engine.PhaseIdle {
		t.Fatalf("failed edit changed engine phase")
	}
}

func TestBeginEdit_WhileEditingAnother(t *testing.T) {
	f := newFixture(t)
	a, _ := f.store.Append(testsupport.UserInformation, schema.Values{"firstName": "Ann"})
	b, _ := f.store.Append(testsupport.UserInformation, schema.Values{"firstName": "Bo"})
	_, _ = f.coordinator.BeginEdit(a.ID)

	if _, err := f.coordinator.BeginEdit(b.ID); !errors.Is(err, engine.ErrInvalidTransition) {
		t.Fatalf("expected engine.ErrInvalidTransition, got %v", err)
	}
	if f.engine.EditingID() != a.ID {
		t.Fatalf("editing id changed to %q", f.engine.EditingID())
	}
}

func TestDeleteRecord(t *testing.T) {
	f := newFixture(t)
	a, _ := f.store.Append(testsupport.UserInformation, schema.Values{"firstName": "Ann"})
	b, _ := f.store.Append(testsupport.UserInformation, schema.Values{"firstName": "Bo"})

	if err := f.coordinator.DeleteRecord(a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if f.store.Len() != 1 || f.store.List()[0].ID != b.ID {
		t.Fatalf("unexpected remaining records: %+v", f.store.List())
	}
	if got := f.engine.Snapshot().Message; got != MessageDeleted {
		t.Fatalf("message = %q", got)
	}
	if diff := cmp.Diff([]time.Duration{DefaultDeleteDelay}, f.scheduler.Delays()); diff != "" {
		t.Fatalf("delete timer mismatch (-want +got):\n%s", diff)
	}
	f.scheduler.Advance(DefaultDeleteDelay)
	if got := f.engine.Snapshot().Message; got != "" {
		t.Fatalf("message not cleared: %q", got)
	}

	if err := f.coordinator.DeleteRecord(a.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected store.ErrNotFound on repeat, got %v", err)
	}
	if f.store.Len() != 1 {
		t.Fatalf("repeat delete changed the store")
	}
}

func TestDeleteRecord_UnderEditCancelsEdit(t *testing.T) {
	f := newFixture(t)
	record, _ := f.store.Append(testsupport.UserInformation, schema.Values{"firstName": "Ann"})
	_, _ = f.coordinator.BeginEdit(record.ID)

	if err := f.coordinator.DeleteRecord(record.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	snap := f.engine.Snapshot()
	if snap.Phase != engine.PhaseIdle || snap.EditingID != "" {
		t.Fatalf("engine still editing a deleted record: %+v", snap)
	}
}

func TestDeleteRecord_DuringSubmitDisplaySettlesReset(t *testing.T) {
	f := newFixture(t)
	_ = f.engine.SelectType(testsupport.NoRequiredFields)
	record, err := f.engine.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := f.coordinator.DeleteRecord(record.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	snap := f.engine.Snapshot()
	if snap.Phase != engine.PhaseIdle || snap.Message != MessageDeleted {
		t.Fatalf("unexpected state after delete: %+v", snap)
	}
	if f.scheduler.Pending() != 1 {
		t.Fatalf("expected only the delete timer pending, got %d", f.scheduler.Pending())
	}
}

func TestDeleteRecord_AfterSavingEditRemovesRecord(t *testing.T) {
	f := newFixture(t)
	record, _ := f.store.Append(testsupport.UserInformation, schema.Values{"firstName": "Ann", "lastName": "Lee"})
	if _, err := f.coordinator.BeginEdit(record.ID); err != nil {
		t.Fatalf("begin edit: %v", err)
	}
	if err := f.engine.SetFieldValue("lastName", "Park"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := f.engine.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := f.coordinator.DeleteRecord(record.ID); err != nil {
		t.Fatalf("delete during update display: %v", err)
	}
	if f.store.Len() != 0 {
		t.Fatalf("record not removed: %+v", f.store.List())
	}
	snap := f.engine.Snapshot()
	if snap.Phase != engine.PhaseIdle || snap.EditingID != "" || snap.Message != MessageDeleted {
		t.Fatalf("unexpected state after delete: %+v", snap)
	}
	if diff := cmp.Diff([]time.Duration{DefaultDeleteDelay}, f.scheduler.Delays()); diff != "" {
		t.Fatalf("pending timers mismatch (-want +got):\n%s", diff)
	}
}

type cancelRaceEngine struct {
	*engine.Engine
	editing schema.RecordID
}

// EditingID reports a stale id, as if the reset timer fired right after.
func (e cancelRaceEngine) EditingID() schema.RecordID { return e.editing }

func TestDeleteRecord_EditEndedConcurrently(t *testing.T) {
	f := newFixture(t)
	record, _ := f.store.Append(testsupport.UserInformation, schema.Values{"firstName": "Ann"})
	coordinator, err := New(f.store, cancelRaceEngine{Engine: f.engine, editing: record.ID})
	if err != nil {
		t.Fatalf("new coordinator: %v", err)
	}

	if err := coordinator.DeleteRecord(record.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if f.store.Len() != 0 {
		t.Fatalf("record not removed")
	}
}

func TestNew_RequiresCollaborators(t *testing.T) {
	if _, err := New(nil, nil); err == nil {
		t.Fatalf("expected error")
	}
}
