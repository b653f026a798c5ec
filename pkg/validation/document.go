// Package validation checks form documents against the bundled JSON Schema
// before the registry decodes them.
package validation

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schemas/forms.schema.json
var embeddedSchemas embed.FS

const documentSchemaURL = "https://goliatone.github.io/go-formdesk/forms.schema.json"

// SchemaIssue represents a validation error with optional location metadata.
type SchemaIssue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// String formats the issue for CLI output.
func (i SchemaIssue) String() string {
	if i.Field == "" {
		return i.Message
	}
	return i.Field + ": " + i.Message
}

// Result captures the outcome of validating one document.
type Result struct {
	Source string        `json:"source,omitempty"`
	Valid  bool          `json:"valid"`
	Issues []SchemaIssue `json:"issues,omitempty"`
}

// Err folds the issues into a single error, or nil when the document is valid.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	parts := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		parts = append(parts, issue.String())
	}
	return fmt.Errorf("validation: %s: %s", r.Source, strings.Join(parts, "; "))
}

var (
	compileOnce    sync.Once
	documentSchema *jsonschema.Schema
	compileErr     error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		data, err := embeddedSchemas.ReadFile("schemas/forms.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("validation: read document schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(documentSchemaURL, bytes.NewReader(data)); err != nil {
			compileErr = fmt.Errorf("validation: add document schema: %w", err)
			return
		}
		documentSchema, compileErr = compiler.Compile(documentSchemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("validation: compile document schema: %w", compileErr)
		}
	})
	return documentSchema, compileErr
}

// DocumentSchema returns the raw JSON Schema used for form documents.
func DocumentSchema() []byte {
	data, _ := embeddedSchemas.ReadFile("schemas/forms.schema.json")
	return data
}

// ValidateDocument checks a JSON or YAML form document. source names the
// document in issue messages.
func ValidateDocument(source string, raw []byte) Result {
	result := Result{Source: source, Valid: true}

	instance, err := decodeInstance(raw)
	if err != nil {
		result.Valid = false
		result.Issues = []SchemaIssue{{Message: err.Error()}}
		return result
	}

	compiled, err := compiledSchema()
	if err != nil {
		result.Valid = false
		result.Issues = []SchemaIssue{{Message: err.Error()}}
		return result
	}

	if err := compiled.Validate(instance); err != nil {
		result.Valid = false
		result.Issues = issuesFromError(err)
	}
	return result
}

// decodeInstance normalises YAML and JSON input into the generic JSON value
// model the validator expects.
func decodeInstance(raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errors.New("document is empty")
	}

	var instance any
	if err := json.Unmarshal(raw, &instance); err == nil {
		return instance, nil
	}

	var fromYAML any
	if err := yaml.Unmarshal(raw, &fromYAML); err != nil {
		return nil, errors.New("invalid JSON or YAML")
	}
	encoded, err := json.Marshal(fromYAML)
	if err != nil {
		return nil, fmt.Errorf("normalise YAML: %w", err)
	}
	if err := json.Unmarshal(encoded, &instance); err != nil {
		return nil, fmt.Errorf("normalise YAML: %w", err)
	}
	return instance, nil
}

func issuesFromError(err error) []SchemaIssue {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return []SchemaIssue{{Message: strings.TrimSpace(err.Error())}}
	}

	var issues []SchemaIssue
	collectLeaves(validationErr, &issues)
	if len(issues) == 0 {
		issues = append(issues, issueFromValidation(validationErr))
	}
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Path < issues[j].Path
	})
	return issues
}

func collectLeaves(err *jsonschema.ValidationError, dest *[]SchemaIssue) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		*dest = append(*dest, issueFromValidation(err))
		return
	}
	for _, cause := range err.Causes {
		collectLeaves(cause, dest)
	}
}

func issueFromValidation(err *jsonschema.ValidationError) SchemaIssue {
	return SchemaIssue{
		Path:    err.InstanceLocation,
		Field:   fieldPathFromPointer(err.InstanceLocation),
		Message: strings.TrimSpace(err.Message),
	}
}

func fieldPathFromPointer(pointer string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(pointer), "#")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return ""
	}
	parts := strings.Split(trimmed, "/")
	for i, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		parts[i] = strings.ReplaceAll(part, "~0", "~")
	}
	return strings.Join(parts, ".")
}
