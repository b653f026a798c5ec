package schema

import "strings"

// FieldKind tags the input variant used to present and interpret a field.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindNumber   FieldKind = "number"
	KindDate     FieldKind = "date"
	KindPassword FieldKind = "password"
	KindDropdown FieldKind = "dropdown"
)

// Kinds lists the supported field kinds in declaration order.
func Kinds() []FieldKind {
	return []FieldKind{KindText, KindNumber, KindDate, KindPassword, KindDropdown}
}

// Valid reports whether k is one of the supported kinds.
func (k FieldKind) Valid() bool {
	switch k {
	case KindText, KindNumber, KindDate, KindPassword, KindDropdown:
		return true
	default:
		return false
	}
}

// ParseKind normalises a raw kind string. Unknown values return false.
func ParseKind(raw string) (FieldKind, bool) {
	kind := FieldKind(strings.ToLower(strings.TrimSpace(raw)))
	if !kind.Valid() {
		return "", false
	}
	return kind, true
}

// FieldDefinition describes one input of a form type. Options is only
// meaningful for dropdown fields. Help may carry a small amount of inline
// HTML; renderers sanitise it before output.
type FieldDefinition struct {
	Name     string    `json:"name" yaml:"name"`
	Kind     FieldKind `json:"kind" yaml:"kind"`
	Label    string    `json:"label" yaml:"label"`
	Required bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Options  []string  `json:"options,omitempty" yaml:"options,omitempty"`
	Help     string    `json:"help,omitempty" yaml:"help,omitempty"`
}

// DisplayLabel returns the label, falling back to the field name.
func (f FieldDefinition) DisplayLabel() string {
	if label := strings.TrimSpace(f.Label); label != "" {
		return label
	}
	return f.Name
}

// HasOption reports whether value is one of the dropdown options.
func (f FieldDefinition) HasOption(value string) bool {
	for _, option := range f.Options {
		if option == value {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with f.
func (f FieldDefinition) Clone() FieldDefinition {
	out := f
	if f.Options != nil {
		out.Options = append([]string(nil), f.Options...)
	}
	return out
}
