// Package config loads the formdesk CLI configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formdesk/internal/logging"
	"github.com/goliatone/go-formdesk/pkg/edit"
	"github.com/goliatone/go-formdesk/pkg/engine"
)

// Config holds the CLI settings. Zero-valued sections keep their defaults
// when a file sets only part of them.
type Config struct {
	Forms   FormsConfig   `toml:"forms" json:"forms" yaml:"forms"`
	Engine  EngineConfig  `toml:"engine" json:"engine" yaml:"engine"`
	Store   StoreConfig   `toml:"store" json:"store" yaml:"store"`
	Render  RenderConfig  `toml:"render" json:"render" yaml:"render"`
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`
}

// FormsConfig selects where form types come from. With neither set the
// bundled forms are used.
type FormsConfig struct {
	// Dir holds .yaml/.yml/.json form documents.
	Dir string `toml:"dir" json:"dir" yaml:"dir"`
	// OpenAPI is an OpenAPI 3 document whose request bodies become form types.
	OpenAPI string `toml:"openapi" json:"openapi" yaml:"openapi"`
}

// EngineConfig holds message timings.
type EngineConfig struct {
	SubmitDelay Duration `toml:"submit_delay" json:"submit_delay" yaml:"submit_delay"`
	DeleteDelay Duration `toml:"delete_delay" json:"delete_delay" yaml:"delete_delay"`
}

// StoreConfig selects the record id scheme.
type StoreConfig struct {
	// IDPrefix switches from UUIDs to "<prefix>-<n>" ids.
	IDPrefix string `toml:"id_prefix" json:"id_prefix" yaml:"id_prefix"`
}

// RenderConfig holds page renderer settings.
type RenderConfig struct {
	Format    string `toml:"format" json:"format" yaml:"format"`
	Theme     string `toml:"theme" json:"theme" yaml:"theme"`
	Variant   string `toml:"variant" json:"variant" yaml:"variant"`
	InlineCSS bool   `toml:"inline_css" json:"inline_css" yaml:"inline_css"`
}

// LoggingConfig mirrors logging.Config for files.
type LoggingConfig struct {
	Level  string `toml:"level" json:"level" yaml:"level"`
	Format string `toml:"format" json:"format" yaml:"format"`
}

// Render formats.
const (
	FormatHTML = "html"
	FormatText = "text"
)

// Duration reads "1s"-style strings from every supported format.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			SubmitDelay: Duration{engine.DefaultSubmitDelay},
			DeleteDelay: Duration{edit.DefaultDeleteDelay},
		},
		Render: RenderConfig{
			Format:    FormatHTML,
			InlineCSS: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: string(logging.FormatText),
		},
	}
}

// Load reads path over DefaultConfig. An empty path or a missing file yields
// the defaults. The format follows the extension; unknown extensions are
// read as TOML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: decode JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: decode YAML: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("config: decode TOML: %w", err)
		}
	}
	return cfg, nil
}

// Validate checks delays, the render format and the logging settings.
func (c *Config) Validate() error {
	var errs []error
	if c.Engine.SubmitDelay.Duration < 0 {
		errs = append(errs, errors.New("engine.submit_delay must not be negative"))
	}
	if c.Engine.DeleteDelay.Duration < 0 {
		errs = append(errs, errors.New("engine.delete_delay must not be negative"))
	}
	switch c.Render.Format {
	case FormatHTML, FormatText:
	default:
		errs = append(errs, fmt.Errorf("render.format %q must be %q or %q", c.Render.Format, FormatHTML, FormatText))
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}
	switch logging.Format(c.Logging.Format) {
	case logging.FormatText, logging.FormatJSON, "":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q must be text or json", c.Logging.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// LoggerConfig converts the logging section.
func (c *Config) LoggerConfig() logging.Config {
	return logging.Config{
		Level:  c.Logging.Level,
		Format: logging.Format(c.Logging.Format),
	}
}
