package vanilla

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"slices"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formdesk/pkg/render"
	rendertemplate "github.com/goliatone/go-formdesk/pkg/render/template"
	"github.com/goliatone/go-formdesk/pkg/render/template/pongo"
	"github.com/goliatone/go-formdesk/pkg/renderers/vanilla/components"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	components       *components.Registry
	theme            *theme.RendererConfig
	inlineCSS        bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithComponents replaces the component registry.
func WithComponents(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.components = registry
		}
	}
}

// WithTheme applies a resolved theme. See RendererConfig.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithInlineStylesheet embeds the default stylesheet in the output when the
// theme provides no stylesheet URL.
func WithInlineStylesheet(enabled bool) Option {
	return func(cfg *config) {
		cfg.inlineCSS = enabled
	}
}

// Renderer produces an HTML fragment for a render.Page.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	components *components.Registry
	theme      *theme.RendererConfig
	classes    map[string]string
	inlineCSS  bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.components == nil {
		cfg.components = components.NewDefaultRegistry()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := pongo.New(pongo.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		templates = engine
	}

	return &Renderer{
		templates:  templates,
		components: cfg.components,
		theme:      cfg.theme,
		classes:    classesFor(cfg.theme),
		inlineCSS:  cfg.inlineCSS,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render renders the page fragment: message, type selector, active form and
// the submissions table.
func (r *Renderer) Render(ctx context.Context, page render.Page) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	page.Fields = slices.Clone(page.Fields)
	controls := make([]string, 0, len(page.Fields))
	for idx, field := range page.Fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		field.Help = sanitizeHelp(field.Help)
		page.Fields[idx] = field

		html, err := r.renderField(field)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: %w", err)
		}
		controls = append(controls, html)
	}

	data := map[string]any{
		"page":     page,
		"controls": controls,
		"classes":  r.classes,
		"theme":    r.themeContext(),
		"labels": map[string]string{
			"cancel": render.CancelLabel,
			"edit":   "Edit",
			"delete": "Delete",
		},
	}
	if url := r.stylesheetURL(); url != "" {
		data["stylesheetURL"] = url
	} else if r.inlineCSS {
		data["inlineCSS"] = defaultStylesheet()
	}

	result, err := r.templates.RenderTemplate(PageTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) renderField(field render.FieldView) (string, error) {
	descriptor, ok := r.components.Descriptor(string(field.Control))
	if !ok {
		return "", fmt.Errorf("component %q not registered for field %q", field.Control, field.Name)
	}
	var buf bytes.Buffer
	data := components.ComponentData{
		Template: r.templates,
		Classes:  r.classes,
	}
	if r.theme != nil {
		data.Partials = r.theme.Partials
	}
	if err := descriptor.Renderer(&buf, field, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type themeContext struct {
	Name         string `json:"name"`
	Variant      string `json:"variant,omitempty"`
	CSSVarsStyle string `json:"cssVarsStyle,omitempty"`
}

func (r *Renderer) themeContext() themeContext {
	if r.theme == nil {
		return themeContext{Name: DefaultThemeName}
	}
	return themeContext{
		Name:         r.theme.Theme,
		Variant:      r.theme.Variant,
		CSSVarsStyle: cssVarsStyle(r.theme.CSSVars),
	}
}

func (r *Renderer) stylesheetURL() string {
	if r.theme == nil || r.theme.AssetURL == nil {
		return ""
	}
	return r.theme.AssetURL(StylesheetAsset)
}
