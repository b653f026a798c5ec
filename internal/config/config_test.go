package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Engine.SubmitDelay.Duration != time.Second || cfg.Engine.DeleteDelay.Duration != 3*time.Second {
		t.Fatalf("unexpected delays %+v", cfg.Engine)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFormats(t *testing.T) {
	cases := map[string]string{
		"formdesk.toml": `
[forms]
dir = "forms"

[engine]
submit_delay = "250ms"

[store]
id_prefix = "rec"

[render]
format = "text"
`,
		"formdesk.json": `{"forms":{"dir":"forms"},"engine":{"submit_delay":"250ms"},"store":{"id_prefix":"rec"},"render":{"format":"text"}}`,
		"formdesk.yaml": `
forms:
  dir: forms
engine:
  submit_delay: 250ms
store:
  id_prefix: rec
render:
  format: text
`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, name, content))
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			want := DefaultConfig()
			want.Forms.Dir = "forms"
			want.Engine.SubmitDelay = Duration{250 * time.Millisecond}
			want.Store.IDPrefix = "rec"
			want.Render.Format = FormatText
			if diff := cmp.Diff(want, cfg); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	if _, err := Load(writeFile(t, "bad.toml", "[engine\nsubmit_delay = 1")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestLoadBadDuration(t *testing.T) {
	if _, err := Load(writeFile(t, "bad.yaml", "engine:\n  delete_delay: soon\n")); err == nil {
		t.Fatalf("expected duration error")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.SubmitDelay = Duration{-time.Second}
	cfg.Render.Format = "pdf"
	cfg.Logging.Level = "loud"
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, fragment := range []string{"submit_delay", "render.format", "unknown level"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Fatalf("error %q missing %q", err, fragment)
		}
	}
}
