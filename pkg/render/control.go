package render

import (
	"strings"

	"github.com/goliatone/go-formdesk/pkg/schema"
)

// Control is the per-kind variant behind field dispatch: it knows how to
// describe its input and how to interpret raw input for storage.
type Control interface {
	Kind() schema.FieldKind
	// View fills the kind-specific parts of a field view.
	View(field schema.FieldDefinition, value string, view *FieldView)
	// Interpret maps raw input to the value kept in the engine.
	Interpret(field schema.FieldDefinition, raw string) string
}

var controls = map[schema.FieldKind]Control{
	schema.KindText:     inputControl{kind: schema.KindText, inputType: "text"},
	schema.KindNumber:   inputControl{kind: schema.KindNumber, inputType: "number", inputMode: "numeric", trim: true},
	schema.KindDate:     inputControl{kind: schema.KindDate, inputType: "date", trim: true},
	schema.KindPassword: inputControl{kind: schema.KindPassword, inputType: "password", masked: true},
	schema.KindDropdown: dropdownControl{},
}

// ControlFor returns the control for kind. Unknown kinds fall back to plain
// text input.
func ControlFor(kind schema.FieldKind) Control {
	if control, ok := controls[kind]; ok {
		return control
	}
	return controls[schema.KindText]
}

// Interpret is shorthand for ControlFor(field.Kind).Interpret(field, raw).
func Interpret(field schema.FieldDefinition, raw string) string {
	return ControlFor(field.Kind).Interpret(field, raw)
}

type inputControl struct {
	kind      schema.FieldKind
	inputType string
	inputMode string
	masked    bool
	trim      bool
}

func (c inputControl) Kind() schema.FieldKind { return c.kind }

func (c inputControl) View(field schema.FieldDefinition, value string, view *FieldView) {
	view.Control = ControlInput
	view.InputType = c.inputType
	view.InputMode = c.inputMode
	view.Masked = c.masked
	view.Placeholder = field.DisplayLabel()
	view.Value = value
}

func (c inputControl) Interpret(_ schema.FieldDefinition, raw string) string {
	if c.trim {
		return strings.TrimSpace(raw)
	}
	return raw
}

type dropdownControl struct{}

func (dropdownControl) Kind() schema.FieldKind { return schema.KindDropdown }

func (dropdownControl) View(field schema.FieldDefinition, value string, view *FieldView) {
	view.Control = ControlSelect
	view.Placeholder = "Select " + field.DisplayLabel()
	if !field.HasOption(value) {
		value = ""
	}
	view.Value = value

	view.Options = make([]Option, 0, len(field.Options)+1)
	view.Options = append(view.Options, Option{
		Label:       view.Placeholder,
		Placeholder: true,
		Selected:    value == "",
	})
	for _, option := range field.Options {
		view.Options = append(view.Options, Option{
			Value:    option,
			Label:    option,
			Selected: option == value,
		})
	}
}

// Interpret keeps known options and maps everything else, including the
// placeholder, to the empty value.
func (dropdownControl) Interpret(field schema.FieldDefinition, raw string) string {
	if field.HasOption(raw) {
		return raw
	}
	trimmed := strings.TrimSpace(raw)
	if field.HasOption(trimmed) {
		return trimmed
	}
	return ""
}
