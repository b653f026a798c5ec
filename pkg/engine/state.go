package engine

import "github.com/goliatone/go-formdesk/pkg/schema"

// Phase is the engine's coarse state.
type Phase int

const (
	// PhaseIdle has no active form type.
	PhaseIdle Phase = iota
	// PhaseActive has a form type selected for a new record.
	PhaseActive
	// PhaseEditing has a stored record loaded for update.
	PhaseEditing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// Display messages.
const (
	MessageSubmitted = "Form submitted successfully!"
	MessageUpdated   = "Changes saved successfully."
)

// Snapshot is a copy of the engine state at one instant. Progress is computed
// when the snapshot is taken.
type Snapshot struct {
	Phase      Phase
	ActiveType string
	Values     schema.Values
	Errors     schema.Errors
	EditingID  schema.RecordID
	Message    string
	Progress   float64
	// ResetPending is set between a successful submit and the reset that
	// follows the display delay.
	ResetPending bool
}

// Editing reports whether a stored record is loaded.
func (s Snapshot) Editing() bool {
	return s.EditingID != ""
}
