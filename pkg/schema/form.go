package schema

import "strings"

// FormTypeSchema is a named, ordered list of field definitions.
type FormTypeSchema struct {
	TypeName string            `json:"type" yaml:"type"`
	Fields   []FieldDefinition `json:"fields" yaml:"fields"`
}

// Field returns the definition with the given name.
func (s FormTypeSchema) Field(name string) (FieldDefinition, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldDefinition{}, false
}

// RequiredFields returns the required definitions in schema order.
func (s FormTypeSchema) RequiredFields() []FieldDefinition {
	var out []FieldDefinition
	for _, field := range s.Fields {
		if field.Required {
			out = append(out, field)
		}
	}
	return out
}

// FieldNames returns the field names in schema order.
func (s FormTypeSchema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, field := range s.Fields {
		names = append(names, field.Name)
	}
	return names
}

// Clone returns a deep copy of the schema.
func (s FormTypeSchema) Clone() FormTypeSchema {
	out := FormTypeSchema{TypeName: s.TypeName}
	if s.Fields != nil {
		out.Fields = make([]FieldDefinition, len(s.Fields))
		for i, field := range s.Fields {
			out.Fields[i] = field.Clone()
		}
	}
	return out
}

// Values maps field names to raw string input. A missing key reads as "".
type Values map[string]string

// Get returns the value for name, or "" when absent.
func (v Values) Get(name string) string {
	if v == nil {
		return ""
	}
	return v[name]
}

// Filled reports whether the trimmed value for name is non-empty.
func (v Values) Filled(name string) bool {
	return strings.TrimSpace(v.Get(name)) != ""
}

// Clone returns a copy of v. A nil map clones to an empty one.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}

// Errors maps field names to a validation message.
type Errors map[string]string

// Clone returns a copy of e. A nil map clones to an empty one.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for key, value := range e {
		out[key] = value
	}
	return out
}
