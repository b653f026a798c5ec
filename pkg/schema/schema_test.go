package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseKind(t *testing.T) {
	cases := map[string]struct {
		want FieldKind
		ok   bool
	}{
		"text":       {KindText, true},
		" Dropdown ": {KindDropdown, true},
		"PASSWORD":   {KindPassword, true},
		"checkbox":   {"", false},
		"":           {"", false},
	}
	for raw, tc := range cases {
		got, ok := ParseKind(raw)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseKind(%q) = %q, %v; want %q, %v", raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFormTypeSchema_CloneIsIndependent(t *testing.T) {
	original := FormTypeSchema{
		TypeName: "Address Information",
		Fields: []FieldDefinition{
			{Name: "state", Kind: KindDropdown, Label: "State", Required: true, Options: []string{"Delhi", "Karnataka"}},
		},
	}
	clone := original.Clone()
	clone.Fields[0].Options[0] = "Goa"
	clone.Fields[0].Label = "Region"

	if original.Fields[0].Options[0] != "Delhi" || original.Fields[0].Label != "State" {
		t.Fatalf("clone shares storage with original: %+v", original.Fields[0])
	}
}

func TestFormTypeSchema_RequiredFields(t *testing.T) {
	form := FormTypeSchema{
		TypeName: "User Information",
		Fields: []FieldDefinition{
			{Name: "firstName", Kind: KindText, Label: "First Name", Required: true},
			{Name: "age", Kind: KindNumber, Label: "Age"},
			{Name: "lastName", Kind: KindText, Label: "Last Name", Required: true},
		},
	}

	var got []string
	for _, field := range form.RequiredFields() {
		got = append(got, field.Name)
	}
	if diff := cmp.Diff([]string{"firstName", "lastName"}, got); diff != "" {
		t.Fatalf("required fields mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"firstName", "age", "lastName"}, form.FieldNames()); diff != "" {
		t.Fatalf("field names mismatch (-want +got):\n%s", diff)
	}
}

func TestValues_Filled(t *testing.T) {
	values := Values{"a": "  ", "b": " x "}
	if values.Filled("a") {
		t.Fatalf("whitespace-only value reported as filled")
	}
	if !values.Filled("b") {
		t.Fatalf("expected b to be filled")
	}
	if values.Filled("missing") {
		t.Fatalf("missing key reported as filled")
	}
	var empty Values
	if empty.Get("a") != "" {
		t.Fatalf("nil values should read empty")
	}
}

func TestFieldDefinition_DisplayLabel(t *testing.T) {
	if got := (FieldDefinition{Name: "zipCode"}).DisplayLabel(); got != "zipCode" {
		t.Fatalf("fallback label = %q", got)
	}
	if got := (FieldDefinition{Name: "zipCode", Label: "Zip Code"}).DisplayLabel(); got != "Zip Code" {
		t.Fatalf("label = %q", got)
	}
}
