package render

import (
	"strings"

	"github.com/goliatone/go-formdesk/pkg/schema"
)

// ControlType names the element a field renders as.
type ControlType string

const (
	ControlInput  ControlType = "input"
	ControlSelect ControlType = "select"
)

// RequiredMarker is appended to the label of required fields.
const RequiredMarker = "*"

// Option is one entry of a dropdown. The placeholder entry has an empty value.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Placeholder bool   `json:"placeholder,omitempty"`
	Selected    bool   `json:"selected,omitempty"`
}

// FieldView describes how a single field should be presented.
type FieldView struct {
	Name        string           `json:"name"`
	Kind        schema.FieldKind `json:"kind"`
	Label       string           `json:"label"`
	Required    bool             `json:"required"`
	Marker      string           `json:"marker,omitempty"`
	Help        string           `json:"help,omitempty"`
	Control     ControlType      `json:"control"`
	InputType   string           `json:"inputType,omitempty"`
	InputMode   string           `json:"inputMode,omitempty"`
	Masked      bool             `json:"masked,omitempty"`
	Placeholder string           `json:"placeholder,omitempty"`
	Value       string           `json:"value"`
	Options     []Option         `json:"options,omitempty"`
	Error       string           `json:"error,omitempty"`
	Invalid     bool             `json:"invalid"`
}

// Render describes one field. It is a pure function of its arguments; the
// error state is set only from errMsg.
func Render(field schema.FieldDefinition, value, errMsg string) FieldView {
	view := FieldView{
		Name:     field.Name,
		Kind:     field.Kind,
		Label:    field.DisplayLabel(),
		Required: field.Required,
		Help:     field.Help,
	}
	if field.Required {
		view.Marker = RequiredMarker
	}
	ControlFor(field.Kind).View(field, value, &view)

	if msg := strings.TrimSpace(errMsg); msg != "" {
		view.Error = msg
		view.Invalid = true
	}
	return view
}

// RenderForm describes every field of form in schema order.
func RenderForm(form schema.FormTypeSchema, values schema.Values, errs schema.Errors) []FieldView {
	views := make([]FieldView, 0, len(form.Fields))
	for _, field := range form.Fields {
		views = append(views, Render(field, values.Get(field.Name), errs[field.Name]))
	}
	return views
}
