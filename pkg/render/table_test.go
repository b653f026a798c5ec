package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdesk/pkg/schema"
)

func TestNewTable_ColumnsFollowSchemaAndSkipReserved(t *testing.T) {
	records := []schema.Record{
		{ID: "1", TypeName: "User Information", Values: schema.Values{"lastName": "Lee", "firstName": "Ann"}},
		{ID: "2", TypeName: "Unknown", Values: schema.Values{"zeta": "z", "alpha": "a", "id": "spoof", "type": "spoof"}},
		{ID: "3", TypeName: "User Information", Values: schema.Values{"firstName": "Bo", "age": "40"}},
	}

	table := NewTable(records, lookupUser, "")

	wantColumns := []Column{
		{Name: "firstName", Label: "First Name"},
		{Name: "lastName", Label: "Last Name"},
		{Name: "alpha", Label: "alpha"},
		{Name: "zeta", Label: "zeta"},
		{Name: "age", Label: "Age"},
	}
	if diff := cmp.Diff(wantColumns, table.Columns); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}

	wantRows := []Row{
		{ID: "1", TypeName: "User Information", Cells: []string{"Ann", "Lee", "", "", ""}},
		{ID: "2", TypeName: "Unknown", Cells: []string{"", "", "a", "z", ""}},
		{ID: "3", TypeName: "User Information", Cells: []string{"Bo", "", "", "", "40"}},
	}
	if diff := cmp.Diff(wantRows, table.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestNewTable_Empty(t *testing.T) {
	table := NewTable(nil, nil, "")
	if !table.Empty() {
		t.Fatalf("expected empty table")
	}
}
