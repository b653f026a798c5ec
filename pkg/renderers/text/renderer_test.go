package text

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-formdesk/pkg/render"
	"github.com/goliatone/go-formdesk/pkg/schema"
	"github.com/goliatone/go-formdesk/pkg/testsupport"
)

func renderString(t *testing.T, r *Renderer, page render.Page) string {
	t.Helper()
	out, err := r.Render(context.Background(), page)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestProgressBar(t *testing.T) {
	cases := map[float64]string{
		0:       "[░░░░░░░░░░] 0% Complete",
		50:      "[█████░░░░░] 50% Complete",
		66.6667: "[██████░░░░] 67% Complete",
		100:     "[██████████] 100% Complete",
	}
	for progress, want := range cases {
		if got := ProgressBar(progress, 10); got != want {
			t.Fatalf("ProgressBar(%v) = %q, want %q", progress, got, want)
		}
	}
}

func TestRender_IdleListsTypes(t *testing.T) {
	reg := testsupport.Registry(t)
	page := render.NewPage(render.PageInput{TypeNames: reg.ListTypeNames()})
	got := renderString(t, New(), page)
	if !strings.Contains(got, "User Information | Address Information | Payment Information") {
		t.Fatalf("type list missing:\n%s", got)
	}
}

func TestRender_FormAndTable(t *testing.T) {
	reg := testsupport.Registry(t)
	form, _ := reg.Lookup(testsupport.PaymentInformation)
	record := schema.Record{ID: "rec-1", TypeName: testsupport.PaymentInformation, Values: schema.Values{"cardNumber": "4111", "cvv": "123"}}
	page := render.NewPage(render.PageInput{
		TypeNames: reg.ListTypeNames(),
		Form:      &form,
		Values:    record.Values,
		Errors:    schema.Errors{"expiryDate": "Expiry Date is required"},
		EditingID: record.ID,
		Progress:  50,
		Message:   "Changes saved successfully.",
		Records:   []schema.Record{record},
		Lookup:    reg.Lookup,
	})

	got := renderString(t, New(WithBarWidth(10)), page)
	for _, fragment := range []string{
		"Changes saved successfully.",
		"Payment Information (editing rec-1)",
		"[█████░░░░░] 50% Complete",
		"Card Number *: 4111",
		"CVV *: " + MaskedValue,
		"! Expiry Date is required",
		"[Update] [Cancel]",
		EditingMarker + "4111",
		"Card Number",
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, got)
		}
	}
	if strings.Contains(got, "CVV *: 123") {
		t.Fatalf("password value shown in clear")
	}
	for _, hidden := range []string{"ID", "Type"} {
		if strings.Contains(got, hidden) {
			t.Fatalf("record metadata %q shown in table:\n%s", hidden, got)
		}
	}
}

func TestRender_DropdownPlaceholder(t *testing.T) {
	reg := testsupport.Registry(t)
	form, _ := reg.Lookup(testsupport.AddressInformation)
	page := render.NewPage(render.PageInput{Form: &form, Values: schema.Values{}})
	got := renderString(t, New(), page)
	if !strings.Contains(got, "State *: Select State") || !strings.Contains(got, "options: Delhi, Karnataka, Gujrat") {
		t.Fatalf("dropdown not rendered:\n%s", got)
	}
}

func TestRender_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Render(ctx, render.Page{}); err == nil {
		t.Fatalf("expected context error")
	}
}
