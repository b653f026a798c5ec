package render

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownRenderer is returned for names that were never registered.
var ErrUnknownRenderer = errors.New("render: unknown renderer")

// Output is one rendered page together with its MIME type.
type Output struct {
	ContentType string
	Body        []byte
}

// Registry holds the page renderers a session can be shown with, keyed by
// Renderer.Name.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Renderer
}

// NewRegistry registers each renderer in turn and stops at the first failure.
func NewRegistry(renderers ...Renderer) (*Registry, error) {
	reg := &Registry{byName: make(map[string]Renderer, len(renderers))}
	for _, renderer := range renderers {
		if err := reg.Register(renderer); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Register adds renderer. Blank or already registered names are rejected.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: nil renderer")
	}
	name := strings.TrimSpace(renderer.Name())
	if name == "" {
		return errors.New("render: renderer has no name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byName[name]; taken {
		return fmt.Errorf("render: renderer %q registered twice", name)
	}
	r.byName[name] = renderer
	return nil
}

// Get looks a renderer up by name. The error lists what is available.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if renderer, ok := r.byName[name]; ok {
		return renderer, nil
	}
	return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownRenderer, name, strings.Join(r.namesLocked(), ", "))
}

// Render renders page with the named renderer.
func (r *Registry) Render(ctx context.Context, name string, page Page) (Output, error) {
	renderer, err := r.Get(name)
	if err != nil {
		return Output{}, err
	}
	body, err := renderer.Render(ctx, page)
	if err != nil {
		return Output{}, fmt.Errorf("render: %s: %w", name, err)
	}
	return Output{ContentType: renderer.ContentType(), Body: body}, nil
}

// List returns the registered names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byName[name]
	return ok
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
