// Package testsupport holds fixtures shared by package tests: the contact
// form schemas and a manual scheduler.
package testsupport

import (
	"testing"

	"github.com/goliatone/go-formdesk/pkg/registry"
	"github.com/goliatone/go-formdesk/pkg/schema"
)

// Form type names used across tests.
const (
	UserInformation    = "User Information"
	AddressInformation = "Address Information"
	PaymentInformation = "Payment Information"
	NoRequiredFields   = "Feedback"
)

// ContactForms returns the three contact schemas plus a form without required
// fields.
func ContactForms() []schema.FormTypeSchema {
	return []schema.FormTypeSchema{
		{
			TypeName: UserInformation,
			Fields: []schema.FieldDefinition{
				{Name: "firstName", Kind: schema.KindText, Label: "First Name", Required: true},
				{Name: "lastName", Kind: schema.KindText, Label: "Last Name", Required: true},
				{Name: "age", Kind: schema.KindNumber, Label: "Age"},
			},
		},
		{
			TypeName: AddressInformation,
			Fields: []schema.FieldDefinition{
				{Name: "street", Kind: schema.KindText, Label: "Street", Required: true},
				{Name: "city", Kind: schema.KindText, Label: "City", Required: true},
				{Name: "state", Kind: schema.KindDropdown, Label: "State", Required: true, Options: []string{"Delhi", "Karnataka", "Gujrat"}},
				{Name: "zipCode", Kind: schema.KindNumber, Label: "Zip Code"},
			},
		},
		{
			TypeName: PaymentInformation,
			Fields: []schema.FieldDefinition{
				{Name: "cardNumber", Kind: schema.KindNumber, Label: "Card Number", Required: true},
				{Name: "expiryDate", Kind: schema.KindDate, Label: "Expiry Date", Required: true},
				{Name: "cvv", Kind: schema.KindPassword, Label: "CVV", Required: true},
				{Name: "cardholderName", Kind: schema.KindText, Label: "Cardholder Name", Required: true},
			},
		},
		{
			TypeName: NoRequiredFields,
			Fields: []schema.FieldDefinition{
				{Name: "comment", Kind: schema.KindText, Label: "Comment"},
			},
		},
	}
}

// Registry builds a registry of ContactForms, failing the test on error.
func Registry(t testing.TB) *registry.Registry {
	t.Helper()
	reg, err := registry.New(ContactForms()...)
	if err != nil {
		t.Fatalf("testsupport: build registry: %v", err)
	}
	return reg
}
