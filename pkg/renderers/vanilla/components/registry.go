package components

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-formdesk/pkg/render"
	rendertemplate "github.com/goliatone/go-formdesk/pkg/render/template"
)

// Renderer writes the HTML of one field control into buf.
type Renderer func(buf *bytes.Buffer, field render.FieldView, data ComponentData) error

// ComponentData carries what a component renderer may need besides the field.
type ComponentData struct {
	Template rendertemplate.TemplateRenderer
	// Partials maps theme partial keys to template paths.
	Partials map[string]string
	// Classes holds the resolved chrome classes, keyed like the theme tokens
	// without their "class." prefix.
	Classes map[string]string
}

// Descriptor binds a renderer to a component name.
type Descriptor struct {
	Name     string
	Renderer Renderer
}

// Registry maps component names to descriptors.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Descriptor
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{components: make(map[string]Descriptor)}
}

// NewDefaultRegistry returns a registry with the input and select components.
func NewDefaultRegistry() *Registry {
	registry := New()
	registry.MustRegister(NameInput, Descriptor{
		Renderer: TemplateRenderer(PartialInput, "templates/components/input.tmpl"),
	})
	registry.MustRegister(NameSelect, Descriptor{
		Renderer: TemplateRenderer(PartialSelect, "templates/components/select.tmpl"),
	})
	return registry
}

// Clone copies the registry so callers can override entries in isolation.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cloned := New()
	for name, descriptor := range r.components {
		cloned.components[name] = descriptor
	}
	return cloned
}

// Register adds or replaces a component.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("components: component name is required")
	}
	if descriptor.Renderer == nil {
		return fmt.Errorf("components: renderer for %q is nil", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	descriptor.Name = name
	r.components[name] = descriptor
	return nil
}

// MustRegister panics when Register fails.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor returns the component registered under name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.components[normalize(name)]
	return descriptor, ok
}

// Names lists registered components, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// TemplateRenderer renders a field with templateName unless the theme maps
// partialKey to another template.
func TemplateRenderer(partialKey, templateName string) Renderer {
	return func(buf *bytes.Buffer, field render.FieldView, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("components: template renderer not configured for %q", templateName)
		}
		name := templateName
		if candidate := strings.TrimSpace(data.Partials[partialKey]); candidate != "" {
			name = candidate
		}
		_, err := data.Template.RenderTemplate(name, map[string]any{
			"field":   field,
			"classes": data.Classes,
		}, buf)
		if err != nil {
			return fmt.Errorf("components: render %q: %w", field.Name, err)
		}
		return nil
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
