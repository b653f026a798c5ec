package registry

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formdesk/pkg/schema"
)

// Registry stores form types in definition order. It has no mutating methods
// once constructed.
type Registry struct {
	order []string
	types map[string]schema.FormTypeSchema
}

// New validates the supplied schemas and builds a registry preserving their
// order.
func New(schemas ...schema.FormTypeSchema) (*Registry, error) {
	r := &Registry{
		order: make([]string, 0, len(schemas)),
		types: make(map[string]schema.FormTypeSchema, len(schemas)),
	}
	for _, form := range schemas {
		if err := r.add(form); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustNew panics when New fails. Useful for package-level fixtures.
func MustNew(schemas ...schema.FormTypeSchema) *Registry {
	r, err := New(schemas...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) add(form schema.FormTypeSchema) error {
	form = form.Clone()
	form.TypeName = strings.TrimSpace(form.TypeName)
	if form.TypeName == "" {
		return fmt.Errorf("%w: type name is required", ErrInvalidSchema)
	}
	if _, exists := r.types[form.TypeName]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateType, form.TypeName)
	}
	if err := checkFields(form); err != nil {
		return err
	}
	r.order = append(r.order, form.TypeName)
	r.types[form.TypeName] = form
	return nil
}

func checkFields(form schema.FormTypeSchema) error {
	seen := make(map[string]struct{}, len(form.Fields))
	for idx, field := range form.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return fmt.Errorf("%w: form %q field %d has no name", ErrInvalidSchema, form.TypeName, idx)
		}
		if name != field.Name {
			return fmt.Errorf("%w: form %q field %q has surrounding whitespace", ErrInvalidSchema, form.TypeName, field.Name)
		}
		if schema.ReservedKey(name) {
			return fmt.Errorf("%w: form %q field name %q is reserved", ErrInvalidSchema, form.TypeName, name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: form %q defines field %q twice", ErrInvalidSchema, form.TypeName, name)
		}
		seen[name] = struct{}{}

		if !field.Kind.Valid() {
			return fmt.Errorf("%w: form %q field %q has unknown kind %q", ErrInvalidSchema, form.TypeName, name, field.Kind)
		}
		switch {
		case field.Kind == schema.KindDropdown && len(field.Options) == 0:
			return fmt.Errorf("%w: form %q dropdown %q has no options", ErrInvalidSchema, form.TypeName, name)
		case field.Kind != schema.KindDropdown && len(field.Options) > 0:
			return fmt.Errorf("%w: form %q field %q declares options but is %s", ErrInvalidSchema, form.TypeName, name, field.Kind)
		}
		for _, option := range field.Options {
			if strings.TrimSpace(option) == "" {
				return fmt.Errorf("%w: form %q dropdown %q has an empty option", ErrInvalidSchema, form.TypeName, name)
			}
		}
	}
	return nil
}

// Lookup returns a copy of the schema registered under typeName.
func (r *Registry) Lookup(typeName string) (schema.FormTypeSchema, error) {
	if r == nil {
		return schema.FormTypeSchema{}, fmt.Errorf("%w: %q", ErrNotFound, typeName)
	}
	form, ok := r.types[typeName]
	if !ok {
		return schema.FormTypeSchema{}, fmt.Errorf("%w: %q", ErrNotFound, typeName)
	}
	return form.Clone(), nil
}

// MustLookup panics if the type is missing.
func (r *Registry) MustLookup(typeName string) schema.FormTypeSchema {
	form, err := r.Lookup(typeName)
	if err != nil {
		panic(err)
	}
	return form
}

// ListTypeNames returns the registered type names in definition order.
func (r *Registry) ListTypeNames() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.order...)
}

// Has reports whether a type is registered.
func (r *Registry) Has(typeName string) bool {
	if r == nil {
		return false
	}
	_, ok := r.types[typeName]
	return ok
}

// Len reports the number of registered types.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// Schemas returns copies of every registered schema in definition order.
func (r *Registry) Schemas() []schema.FormTypeSchema {
	if r == nil {
		return nil
	}
	out := make([]schema.FormTypeSchema, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.types[name].Clone())
	}
	return out
}

// Merge returns a new registry holding r's types followed by other's. Type
// names must stay unique across both.
func (r *Registry) Merge(other *Registry) (*Registry, error) {
	return New(append(r.Schemas(), other.Schemas()...)...)
}
