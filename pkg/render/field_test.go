package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdesk/pkg/schema"
)

var stateField = schema.FieldDefinition{
	Name:     "state",
	Kind:     schema.KindDropdown,
	Label:    "State",
	Required: true,
	Options:  []string{"Delhi", "Karnataka", "Gujrat"},
}

func TestRender_DropdownListsPlaceholderFirst(t *testing.T) {
	view := Render(stateField, "Karnataka", "")

	want := []Option{
		{Label: "Select State", Placeholder: true},
		{Value: "Delhi", Label: "Delhi"},
		{Value: "Karnataka", Label: "Karnataka", Selected: true},
		{Value: "Gujrat", Label: "Gujrat"},
	}
	if diff := cmp.Diff(want, view.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if view.Control != ControlSelect {
		t.Fatalf("expected select control, got %q", view.Control)
	}
	if view.Invalid {
		t.Fatalf("no error supplied but view is invalid")
	}
}

func TestRender_DropdownUnknownValueSelectsPlaceholder(t *testing.T) {
	view := Render(stateField, "Goa", "State is required")
	if !view.Options[0].Selected {
		t.Fatalf("placeholder should be selected for unknown value")
	}
	if view.Value != "" {
		t.Fatalf("expected empty value, got %q", view.Value)
	}
	if !view.Invalid || view.Error != "State is required" {
		t.Fatalf("error state not reflected: %+v", view)
	}
}

func TestRender_InputKinds(t *testing.T) {
	cases := []struct {
		kind      schema.FieldKind
		inputType string
		inputMode string
		masked    bool
	}{
		{schema.KindText, "text", "", false},
		{schema.KindNumber, "number", "numeric", false},
		{schema.KindDate, "date", "", false},
		{schema.KindPassword, "password", "", true},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			field := schema.FieldDefinition{Name: "f", Kind: tc.kind, Label: "Field"}
			view := Render(field, "v", "")
			if view.Control != ControlInput {
				t.Fatalf("expected input control, got %q", view.Control)
			}
			if view.InputType != tc.inputType || view.InputMode != tc.inputMode || view.Masked != tc.masked {
				t.Fatalf("unexpected input hints: %+v", view)
			}
			if view.Placeholder != "Field" {
				t.Fatalf("placeholder = %q", view.Placeholder)
			}
			if view.Marker != "" {
				t.Fatalf("optional field should not carry a marker")
			}
		})
	}
}

func TestRender_ErrorOnlyFromArgument(t *testing.T) {
	field := schema.FieldDefinition{Name: "firstName", Kind: schema.KindText, Label: "First Name", Required: true}

	clean := Render(field, "", "")
	if clean.Invalid {
		t.Fatalf("empty required field without error must not be invalid")
	}
	if clean.Marker != RequiredMarker {
		t.Fatalf("required marker missing")
	}

	flagged := Render(field, "Ann", "First Name is required")
	if !flagged.Invalid {
		t.Fatalf("error argument must drive invalid state")
	}
}

func TestInterpret(t *testing.T) {
	cases := []struct {
		name  string
		field schema.FieldDefinition
		raw   string
		want  string
	}{
		{"text keeps spaces", schema.FieldDefinition{Kind: schema.KindText}, " Ann ", " Ann "},
		{"password keeps spaces", schema.FieldDefinition{Kind: schema.KindPassword}, " 123", " 123"},
		{"number trims", schema.FieldDefinition{Kind: schema.KindNumber}, " 42 ", "42"},
		{"date trims", schema.FieldDefinition{Kind: schema.KindDate}, "2030-01-01 ", "2030-01-01"},
		{"dropdown option", stateField, "Delhi", "Delhi"},
		{"dropdown trimmed option", stateField, " Delhi", "Delhi"},
		{"dropdown placeholder", stateField, "Select State", ""},
		{"dropdown unknown", stateField, "Goa", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Interpret(tc.field, tc.raw); got != tc.want {
				t.Fatalf("Interpret(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestControlFor_UnknownKindFallsBackToText(t *testing.T) {
	if got := ControlFor("slider").Kind(); got != schema.KindText {
		t.Fatalf("expected text fallback, got %q", got)
	}
}

func TestRenderForm_FollowsSchemaOrder(t *testing.T) {
	form := schema.FormTypeSchema{
		TypeName: "User Information",
		Fields: []schema.FieldDefinition{
			{Name: "firstName", Kind: schema.KindText, Label: "First Name", Required: true},
			{Name: "age", Kind: schema.KindNumber, Label: "Age"},
		},
	}
	views := RenderForm(form, schema.Values{"age": "30"}, schema.Errors{"firstName": "First Name is required"})

	var names []string
	for _, view := range views {
		names = append(names, view.Name)
	}
	if diff := cmp.Diff([]string{"firstName", "age"}, names); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if !views[0].Invalid || views[1].Invalid {
		t.Fatalf("error flags mismatch: %+v", views)
	}
	if views[1].Value != "30" {
		t.Fatalf("value not carried: %+v", views[1])
	}
}
