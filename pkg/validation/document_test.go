package validation

import (
	"strings"
	"testing"
)

func TestValidateDocument_AcceptsYAML(t *testing.T) {
	doc := []byte(`
forms:
  - type: User Information
    fields:
      - name: firstName
        kind: text
        label: First Name
        required: true
      - name: state
        kind: dropdown
        label: State
        options: [Delhi, Karnataka]
`)
	result := ValidateDocument("user.yaml", doc)
	if !result.Valid {
		t.Fatalf("expected valid document, got issues %+v", result.Issues)
	}
	if err := result.Err(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidateDocument_AcceptsJSON(t *testing.T) {
	doc := []byte(`{"forms":[{"type":"T","fields":[{"name":"a","kind":"date","label":"A"}]}]}`)
	if result := ValidateDocument("t.json", doc); !result.Valid {
		t.Fatalf("expected valid document, got %+v", result.Issues)
	}
}

func TestValidateDocument_ReportsUnknownKind(t *testing.T) {
	doc := []byte(`{"forms":[{"type":"T","fields":[{"name":"a","kind":"checkbox","label":"A"}]}]}`)
	result := ValidateDocument("t.json", doc)
	if result.Valid {
		t.Fatalf("expected invalid document")
	}
	found := false
	for _, issue := range result.Issues {
		if issue.Field == "forms.0.fields.0.kind" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected issue for forms.0.fields.0.kind, got %+v", result.Issues)
	}
	if err := result.Err(); err == nil || !strings.Contains(err.Error(), "t.json") {
		t.Fatalf("expected error naming the source, got %v", err)
	}
}

func TestValidateDocument_DropdownNeedsOptions(t *testing.T) {
	doc := []byte(`{"forms":[{"type":"T","fields":[{"name":"s","kind":"dropdown","label":"S"}]}]}`)
	if result := ValidateDocument("t.json", doc); result.Valid {
		t.Fatalf("expected dropdown without options to be rejected")
	}
}

func TestValidateDocument_RejectsReservedFieldNames(t *testing.T) {
	for _, name := range []string{"id", "type"} {
		doc := []byte(`{"forms":[{"type":"T","fields":[{"name":"` + name + `","kind":"text","label":"X"}]}]}`)
		if result := ValidateDocument("t.json", doc); result.Valid {
			t.Fatalf("expected field name %q to be rejected", name)
		}
	}
}

func TestValidateDocument_RejectsEmptyAndGarbage(t *testing.T) {
	if result := ValidateDocument("empty.yaml", nil); result.Valid {
		t.Fatalf("expected empty document to be invalid")
	}
	if result := ValidateDocument("bad.yaml", []byte("forms: [")); result.Valid {
		t.Fatalf("expected malformed document to be invalid")
	}
}

func TestDocumentSchema_IsEmbedded(t *testing.T) {
	if !strings.Contains(string(DocumentSchema()), documentSchemaURL) {
		t.Fatalf("embedded schema missing $id")
	}
}
