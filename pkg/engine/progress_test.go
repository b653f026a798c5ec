package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdesk/pkg/schema"
)

func TestProgress(t *testing.T) {
	form := schema.FormTypeSchema{
		TypeName: "Address Information",
		Fields: []schema.FieldDefinition{
			{Name: "street", Label: "Street", Required: true},
			{Name: "city", Label: "City", Required: true},
			{Name: "state", Label: "State", Required: true},
			{Name: "zipCode", Label: "Zip Code"},
		},
	}
	cases := []struct {
		name   string
		values schema.Values
		want   float64
	}{
		{"empty", nil, 0},
		{"one of three", schema.Values{"street": "Main"}, 100.0 / 3},
		{"optional ignored", schema.Values{"zipCode": "560001"}, 0},
		{"all", schema.Values{"street": "Main", "city": "Pune", "state": "Delhi"}, 100},
		{"blank is empty", schema.Values{"street": " ", "city": "\t"}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Progress(form, tc.values); got != tc.want {
				t.Fatalf("Progress = %v, want %v", got, tc.want)
			}
		})
	}

	if got := Progress(schema.FormTypeSchema{}, nil); got != 100 {
		t.Fatalf("no required fields: %v", got)
	}
}

func TestValidate_OnlyRequiredEmptyFields(t *testing.T) {
	form := schema.FormTypeSchema{
		Fields: []schema.FieldDefinition{
			{Name: "firstName", Label: "First Name", Required: true},
			{Name: "lastName", Label: "Last Name", Required: true},
			{Name: "age", Label: "Age"},
		},
	}
	got := Validate(form, schema.Values{"lastName": "Lee"})
	if diff := cmp.Diff(schema.Errors{"firstName": "First Name is required"}, got); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}
