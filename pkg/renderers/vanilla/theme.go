package vanilla

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formdesk/pkg/renderers/vanilla/components"
)

// DefaultThemeName is the name of the manifest returned by DefaultManifest.
const DefaultThemeName = "formdesk"

// StylesheetAsset is the asset key that resolves to the page stylesheet.
const StylesheetAsset = "vanilla.stylesheet"

// ErrThemeNotFound is theme.ErrThemeNotFound, re-exported for callers that
// only import this package.
var ErrThemeNotFound = theme.ErrThemeNotFound

// ErrUnknownVariant is returned when a manifest has no variant of the
// requested name.
var ErrUnknownVariant = errors.New("vanilla: unknown theme variant")

// DefaultManifest describes the bundled look: brand colours as CSS variables
// and a dark variant.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":      "#2563eb",
			"error":      "#dc2626",
			"success":    "#047857",
			"success-bg": "#ecfdf5",
			"border":     "#d1d5db",
			"muted":      "#6b7280",
			"text":       "#111827",
			"highlight":  "#fef9c3",
		},
		Assets: theme.Assets{
			Prefix: "/assets/formdesk",
			Files: map[string]string{
				StylesheetAsset: StylesheetName,
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand":      "#60a5fa",
					"text":       "#f9fafb",
					"border":     "#374151",
					"success-bg": "#064e3b",
					"success":    "#a7f3d0",
					"highlight":  "#1f2937",
				},
			},
		},
	}
}

// Selector picks manifests registered in a go-theme registry. An empty name
// selects the first registered theme. Unknown names and variants are errors.
type Selector struct {
	registry *theme.MemoryRegistry

	mu       sync.RWMutex
	fallback string
}

var _ theme.ThemeSelector = (*Selector)(nil)

// NewSelector registers manifests in a fresh theme.MemoryRegistry.
func NewSelector(manifests ...*theme.Manifest) (*Selector, error) {
	s := &Selector{registry: theme.NewRegistry()}
	for _, manifest := range manifests {
		if err := s.Register(manifest); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Register validates and stores manifest. Registering a newer version of a
// name makes it the one selected.
func (s *Selector) Register(manifest *theme.Manifest) error {
	if err := s.registry.Register(manifest); err != nil {
		return fmt.Errorf("vanilla: register theme: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fallback == "" {
		s.fallback = manifest.Name
	}
	return nil
}

// Names lists registered themes, sorted.
func (s *Selector) Names() []string {
	var names []string
	for _, ref := range s.registry.Themes() {
		if n := len(names); n == 0 || names[n-1] != ref.Name {
			names = append(names, ref.Name)
		}
	}
	return names
}

// Select implements theme.ThemeSelector on top of theme.Selector, which
// would otherwise fall back to the default theme for unknown names and accept
// any variant.
func (s *Selector) Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error) {
	s.mu.RLock()
	selector := theme.Selector{Registry: s.registry, DefaultTheme: s.fallback}
	s.mu.RUnlock()

	name = strings.TrimSpace(name)
	selection, err := selector.Select(name, strings.TrimSpace(variant), opts...)
	if err != nil {
		return nil, fmt.Errorf("vanilla: %w", err)
	}
	if name != "" && selection.Manifest.Name != name {
		return nil, fmt.Errorf("vanilla: %w: %s", ErrThemeNotFound, name)
	}
	selection.Theme = selection.Manifest.Name
	if v := selection.Variant; v != "" {
		if _, ok := selection.Manifest.Variants[v]; !ok {
			return nil, fmt.Errorf("%w: %q has no variant %q", ErrUnknownVariant, selection.Theme, v)
		}
	}
	return selection, nil
}

// RendererConfig resolves a selection through Selection.RendererTheme. Only
// partials the components know are kept, and "class.*" tokens are not
// emitted as CSS variables.
func RendererConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	cfg := selection.RendererTheme(map[string]string{
		components.PartialInput:  "",
		components.PartialSelect: "",
	})
	for key, path := range cfg.Partials {
		if path == "" {
			delete(cfg.Partials, key)
		}
	}
	for key := range cfg.CSSVars {
		if strings.HasPrefix(key, "--"+ClassTokenPrefix) {
			delete(cfg.CSSVars, key)
		}
	}
	return &cfg
}

// classesFor overlays "class.*" tokens on the default chrome classes.
func classesFor(cfg *theme.RendererConfig) map[string]string {
	classes := DefaultClasses()
	if cfg == nil {
		return classes
	}
	for key, value := range cfg.Tokens {
		name, ok := strings.CutPrefix(key, ClassTokenPrefix)
		if !ok || name == "" {
			continue
		}
		if value = sanitizeClassList(value); value != "" {
			classes[name] = value
		}
	}
	return classes
}
