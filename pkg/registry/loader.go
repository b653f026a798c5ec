package registry

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formdesk/pkg/schema"
	"github.com/goliatone/go-formdesk/pkg/validation"
)

type documentFile struct {
	Forms []formFile `json:"forms" yaml:"forms"`
}

type formFile struct {
	Type   string      `json:"type" yaml:"type"`
	Fields []fieldFile `json:"fields" yaml:"fields"`
}

type fieldFile struct {
	Name     string   `json:"name" yaml:"name"`
	Kind     string   `json:"kind" yaml:"kind"`
	Label    string   `json:"label" yaml:"label"`
	Required bool     `json:"required" yaml:"required"`
	Options  []string `json:"options" yaml:"options"`
	Help     string   `json:"help" yaml:"help"`
}

// LoadFS walks fsys in lexical order and builds a registry from every JSON or
// YAML document it finds. Types keep their order within a file; files are
// concatenated in walk order. A nil fsys yields an empty registry.
func LoadFS(fsys fs.FS) (*Registry, error) {
	if fsys == nil {
		return New()
	}

	var (
		forms   []schema.FormTypeSchema
		sources = make(map[string]string)
	)
	err := fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !IsDocument(name) {
			return nil
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("registry: read %s: %w", name, err)
		}
		parsed, err := ParseDocument(name, data)
		if err != nil {
			return err
		}
		for _, form := range parsed {
			if previous, exists := sources[form.TypeName]; exists {
				return fmt.Errorf("%w: %q in %s (first defined in %s)", ErrDuplicateType, form.TypeName, name, previous)
			}
			sources[form.TypeName] = name
		}
		forms = append(forms, parsed...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return New(forms...)
}

// IsDocument reports whether name has a form-document extension.
func IsDocument(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// ParseDocument validates and decodes a single document. source is used in
// error messages only.
func ParseDocument(source string, data []byte) ([]schema.FormTypeSchema, error) {
	if err := validation.ValidateDocument(source, data).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err != nil {
		if yamlErr := yaml.Unmarshal(data, &doc); yamlErr != nil {
			return nil, fmt.Errorf("registry: parse %s: invalid JSON or YAML", source)
		}
	}

	out := make([]schema.FormTypeSchema, 0, len(doc.Forms))
	for _, raw := range doc.Forms {
		form := schema.FormTypeSchema{
			TypeName: strings.TrimSpace(raw.Type),
			Fields:   make([]schema.FieldDefinition, 0, len(raw.Fields)),
		}
		for _, rawField := range raw.Fields {
			kind, ok := schema.ParseKind(rawField.Kind)
			if !ok {
				return nil, fmt.Errorf("%w: %s: form %q field %q has unknown kind %q", ErrInvalidSchema, source, form.TypeName, rawField.Name, rawField.Kind)
			}
			form.Fields = append(form.Fields, schema.FieldDefinition{
				Name:     strings.TrimSpace(rawField.Name),
				Kind:     kind,
				Label:    strings.TrimSpace(rawField.Label),
				Required: rawField.Required,
				Options:  append([]string(nil), rawField.Options...),
				Help:     strings.TrimSpace(rawField.Help),
			})
		}
		out = append(out, form)
	}
	return out, nil
}
