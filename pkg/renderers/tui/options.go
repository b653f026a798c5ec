package tui

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-formdesk/pkg/render"
)

// Theme holds the prefixes the runner puts in front of informational and
// error lines.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// DefaultTheme is applied when WithTheme is not used.
var DefaultTheme = Theme{InfoPrefix: "", ErrorPrefix: "! "}

// Option configures the Runner.
type Option func(*Runner)

// WithPromptDriver overrides the prompt driver used by the runner.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutput sets where the default survey driver prints pages.
func WithOutput(out io.Writer) Option {
	return func(r *Runner) {
		r.out = out
	}
}

// WithPageRenderer replaces the renderer used to print the page between
// prompts. The text renderer is the default.
func WithPageRenderer(renderer render.Renderer) Option {
	return func(r *Runner) {
		if renderer != nil {
			r.pages = renderer
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Runner) {
		r.theme = theme
	}
}

// WithLogger sets the runner logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}
