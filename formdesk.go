// Package formdesk is the convenience entry point: it loads form types from
// the usual sources, builds sessions and wires the bundled page renderers.
package formdesk

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formdesk/pkg/registry"
	"github.com/goliatone/go-formdesk/pkg/render"
	"github.com/goliatone/go-formdesk/pkg/renderers/text"
	"github.com/goliatone/go-formdesk/pkg/renderers/vanilla"
	"github.com/goliatone/go-formdesk/pkg/session"
)

// Page aliases render.Page for callers that only use the root package.
type Page = render.Page

// Session aliases session.Session.
type Session = session.Session

// Renderer names registered by NewRenderers.
const (
	RendererHTML = "vanilla"
	RendererText = "text"
)

// FormSources lists where form types come from. When every field is empty
// the bundled forms are used; otherwise only the given sources are.
type FormSources struct {
	// Dir is a directory of .yaml/.yml/.json form documents.
	Dir string
	// FS is read like Dir.
	FS fs.FS
	// OpenAPI is the path of an OpenAPI 3 document.
	OpenAPI string
	// Logger receives the properties the OpenAPI importer skips.
	Logger *slog.Logger
}

func (s FormSources) empty() bool {
	return strings.TrimSpace(s.Dir) == "" && s.FS == nil && strings.TrimSpace(s.OpenAPI) == ""
}

// LoadForms builds a registry from src. Type names must be unique across all
// sources.
func LoadForms(ctx context.Context, src FormSources) (*registry.Registry, error) {
	if src.empty() {
		return registry.Default()
	}

	var parts []*registry.Registry
	if dir := strings.TrimSpace(src.Dir); dir != "" {
		reg, err := registry.LoadFS(os.DirFS(dir))
		if err != nil {
			return nil, fmt.Errorf("formdesk: load forms from %s: %w", dir, err)
		}
		parts = append(parts, reg)
	}
	if src.FS != nil {
		reg, err := registry.LoadFS(src.FS)
		if err != nil {
			return nil, fmt.Errorf("formdesk: load forms: %w", err)
		}
		parts = append(parts, reg)
	}
	if path := strings.TrimSpace(src.OpenAPI); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("formdesk: read %s: %w", path, err)
		}
		reg, err := registry.LoadOpenAPI(ctx, data, registry.WithImportLogger(src.Logger))
		if err != nil {
			return nil, fmt.Errorf("formdesk: import %s: %w", path, err)
		}
		parts = append(parts, reg)
	}

	merged := parts[0]
	for _, next := range parts[1:] {
		var err error
		if merged, err = merged.Merge(next); err != nil {
			return nil, fmt.Errorf("formdesk: merge form sources: %w", err)
		}
	}
	return merged, nil
}

// NewSession is shorthand for session.New.
func NewSession(options ...session.Option) (*session.Session, error) {
	return session.New(options...)
}

// RenderOptions configures NewRenderers.
type RenderOptions struct {
	// Theme and Variant pick a manifest. Empty Theme with no Manifests keeps
	// the built-in classes and inline stylesheet.
	Theme   string
	Variant string
	// Manifests are added to the default manifest.
	Manifests []*theme.Manifest
	// InlineCSS embeds the stylesheet when the theme gives no asset URL.
	InlineCSS bool
}

// NewRenderers returns a registry holding the HTML and text renderers.
func NewRenderers(opts RenderOptions) (*render.Registry, error) {
	htmlOptions := []vanilla.Option{vanilla.WithInlineStylesheet(opts.InlineCSS)}
	if opts.Theme != "" || opts.Variant != "" || len(opts.Manifests) > 0 {
		manifests := append([]*theme.Manifest{vanilla.DefaultManifest()}, opts.Manifests...)
		selector, err := vanilla.NewSelector(manifests...)
		if err != nil {
			return nil, fmt.Errorf("formdesk: %w", err)
		}
		selection, err := selector.Select(opts.Theme, opts.Variant)
		if err != nil {
			return nil, fmt.Errorf("formdesk: select theme: %w", err)
		}
		htmlOptions = append(htmlOptions, vanilla.WithTheme(vanilla.RendererConfig(selection)))
	}

	html, err := vanilla.New(htmlOptions...)
	if err != nil {
		return nil, fmt.Errorf("formdesk: %w", err)
	}
	return render.NewRegistry(html, text.New())
}

// RenderPage renders page with the named renderer from renderers.
func RenderPage(ctx context.Context, renderers *render.Registry, name string, page render.Page) ([]byte, error) {
	out, err := renderers.Render(ctx, name, page)
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}
