package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formdesk/pkg/schema"
)

// OrderExtension positions a property within the imported form. Properties
// without it follow in name order.
const OrderExtension = "x-formdesk-order"

// OpenAPIOption configures FromOpenAPI.
type OpenAPIOption func(*openAPIConfig)

type openAPIConfig struct {
	allowExternalRefs bool
	validate          bool
	methods           map[string]bool
	logger            *slog.Logger
}

// BooleanOptions are the dropdown options a boolean property imports as.
var BooleanOptions = []string{"true", "false"}

// WithImportLogger receives a debug entry for every property or operation
// the importer skips.
func WithImportLogger(logger *slog.Logger) OpenAPIOption {
	return func(cfg *openAPIConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithExternalRefs allows the loader to resolve references outside the
// document.
func WithExternalRefs(enabled bool) OpenAPIOption {
	return func(cfg *openAPIConfig) {
		cfg.allowExternalRefs = enabled
	}
}

// WithDocumentValidation runs the kin-openapi validator before importing.
func WithDocumentValidation(enabled bool) OpenAPIOption {
	return func(cfg *openAPIConfig) {
		cfg.validate = enabled
	}
}

// WithMethods limits the import to the listed HTTP methods. Defaults to POST,
// PUT and PATCH.
func WithMethods(methods ...string) OpenAPIOption {
	return func(cfg *openAPIConfig) {
		if len(methods) == 0 {
			return
		}
		cfg.methods = make(map[string]bool, len(methods))
		for _, method := range methods {
			cfg.methods[strings.ToUpper(strings.TrimSpace(method))] = true
		}
	}
}

var requestMediaTypes = []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"}

// FromOpenAPI builds form schemas from the request bodies of an OpenAPI 3
// document. Each operation becomes one form type named by its summary, or its
// operationId when the summary is empty.
func FromOpenAPI(ctx context.Context, data []byte, options ...OpenAPIOption) ([]schema.FormTypeSchema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("registry: openapi document is empty")
	}

	cfg := openAPIConfig{
		methods: map[string]bool{"POST": true, "PUT": true, "PATCH": true},
		logger:  slog.Default(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: cfg.allowExternalRefs,
	}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("registry: load openapi document: %w", err)
	}
	if cfg.validate {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("registry: validate openapi document: %w", err)
		}
	}
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return nil, errors.New("registry: openapi document does not contain any paths")
	}

	paths := make([]string, 0, doc.Paths.Len())
	for path := range doc.Paths.Map() {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var forms []schema.FormTypeSchema
	for _, path := range paths {
		item := doc.Paths.Map()[path]
		if item == nil {
			continue
		}
		for _, entry := range []struct {
			method    string
			operation *openapi3.Operation
		}{
			{"POST", item.Post},
			{"PUT", item.Put},
			{"PATCH", item.Patch},
			{"GET", item.Get},
			{"DELETE", item.Delete},
		} {
			if entry.operation == nil || !cfg.methods[entry.method] {
				continue
			}
			if form, ok := cfg.formFromOperation(entry.method, path, entry.operation); ok {
				forms = append(forms, form)
			}
		}
	}
	if len(forms) == 0 {
		return nil, errors.New("registry: openapi document has no request bodies with form properties")
	}
	return forms, nil
}

// LoadOpenAPI is FromOpenAPI followed by New.
func LoadOpenAPI(ctx context.Context, data []byte, options ...OpenAPIOption) (*Registry, error) {
	forms, err := FromOpenAPI(ctx, data, options...)
	if err != nil {
		return nil, err
	}
	return New(forms...)
}

// formFromOperation maps the scalar properties of the request body. Nested
// objects and arrays have no form control and are skipped, as is an
// operation left without fields.
func (cfg openAPIConfig) formFromOperation(method, path string, operation *openapi3.Operation) (schema.FormTypeSchema, bool) {
	body := requestBodySchema(operation.RequestBody)
	if body == nil || len(body.Properties) == 0 {
		return schema.FormTypeSchema{}, false
	}

	typeName := strings.TrimSpace(operation.Summary)
	if typeName == "" {
		typeName = strings.TrimSpace(operation.OperationID)
	}
	if typeName == "" {
		typeName = strings.ToLower(method) + " " + path
	}

	required := make(map[string]bool, len(body.Required))
	for _, name := range body.Required {
		required[name] = true
	}

	type ordered struct {
		field schema.FieldDefinition
		order int
		set   bool
	}
	props := make([]ordered, 0, len(body.Properties))
	for name, ref := range body.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		if schema.ReservedKey(name) {
			cfg.logger.Debug("openapi property skipped", "operation", typeName, "property", name, "reason", "reserved name")
			continue
		}
		field, ok := fieldFromProperty(name, ref.Value)
		if !ok {
			cfg.logger.Debug("openapi property skipped", "operation", typeName, "property", name, "type", firstSchemaType(ref.Value.Type))
			continue
		}
		field.Required = required[name]
		order, set := extensionInt(ref.Value.Extensions, OrderExtension)
		props = append(props, ordered{field: field, order: order, set: set})
	}
	sort.SliceStable(props, func(i, j int) bool {
		a, b := props[i], props[j]
		switch {
		case a.set && b.set && a.order != b.order:
			return a.order < b.order
		case a.set != b.set:
			return a.set
		default:
			return a.field.Name < b.field.Name
		}
	})

	if len(props) == 0 {
		cfg.logger.Debug("openapi operation skipped", "operation", typeName, "reason", "no scalar properties")
		return schema.FormTypeSchema{}, false
	}

	form := schema.FormTypeSchema{TypeName: typeName}
	for _, prop := range props {
		form.Fields = append(form.Fields, prop.field)
	}
	return form, true
}

func requestBodySchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range requestMediaTypes {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func fieldFromProperty(name string, prop *openapi3.Schema) (schema.FieldDefinition, bool) {
	field := schema.FieldDefinition{
		Name:  name,
		Label: strings.TrimSpace(prop.Title),
		Help:  strings.TrimSpace(prop.Description),
	}
	if field.Label == "" {
		field.Label = Humanize(name)
	}

	if len(prop.Enum) > 0 {
		field.Kind = schema.KindDropdown
		for _, value := range prop.Enum {
			field.Options = append(field.Options, fmt.Sprint(value))
		}
		return field, true
	}

	switch firstSchemaType(prop.Type) {
	case "boolean":
		field.Kind = schema.KindDropdown
		field.Options = append([]string(nil), BooleanOptions...)
	case "number", "integer":
		field.Kind = schema.KindNumber
	case "string", "":
		switch strings.ToLower(prop.Format) {
		case "date":
			field.Kind = schema.KindDate
		case "password":
			field.Kind = schema.KindPassword
		default:
			field.Kind = schema.KindText
		}
	default:
		return schema.FieldDefinition{}, false
	}
	return field, true
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func extensionInt(extensions map[string]any, key string) (int, bool) {
	raw, ok := extensions[key]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	case json.RawMessage:
		n, err := strconv.Atoi(strings.TrimSpace(string(v)))
		return n, err == nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	default:
		return 0, false
	}
}

// Humanize turns a camelCase or snake_case identifier into a title-cased
// label: "cardholderName" becomes "Cardholder Name".
func Humanize(name string) string {
	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}
	runes := []rune(strings.TrimSpace(name))
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r) && i > 0 && !unicode.IsUpper(runes[i-1]):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()

	for i, word := range words {
		rs := []rune(word)
		rs[0] = unicode.ToUpper(rs[0])
		words[i] = string(rs)
	}
	return strings.Join(words, " ")
}
