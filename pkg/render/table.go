package render

import (
	"maps"
	"slices"

	"github.com/goliatone/go-formdesk/pkg/schema"
)

// Column is one value column of the submissions table.
type Column struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Row is one submitted record. Cells line up with Table.Columns; a record
// without a value for a column gets an empty cell.
type Row struct {
	ID       schema.RecordID `json:"id"`
	TypeName string          `json:"type"`
	Cells    []string        `json:"cells"`
	Editing  bool            `json:"editing,omitempty"`
}

// Table is the submissions list view.
type Table struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Empty reports whether there are no records to show.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// NewTable builds the submissions table. Columns are the union of value keys
// in order of first appearance: schema order when lookup knows the record's
// type, sorted key order otherwise. Rows keep the order of records.
func NewTable(records []schema.Record, lookup func(string) (schema.FormTypeSchema, error), editing schema.RecordID) Table {
	table := Table{Rows: make([]Row, 0, len(records))}
	index := make(map[string]int)

	addColumn := func(name, label string) {
		if schema.ReservedKey(name) {
			return
		}
		if _, exists := index[name]; exists {
			return
		}
		index[name] = len(table.Columns)
		table.Columns = append(table.Columns, Column{Name: name, Label: label})
	}

	for _, record := range records {
		var form *schema.FormTypeSchema
		if lookup != nil {
			if found, err := lookup(record.TypeName); err == nil {
				form = &found
			}
		}
		if form != nil {
			for _, field := range form.Fields {
				if _, ok := record.Values[field.Name]; ok {
					addColumn(field.Name, field.DisplayLabel())
				}
			}
		}
		for _, key := range slices.Sorted(maps.Keys(record.Values)) {
			addColumn(key, key)
		}
	}

	for _, record := range records {
		row := Row{
			ID:       record.ID,
			TypeName: record.TypeName,
			Cells:    make([]string, len(table.Columns)),
			Editing:  editing != "" && record.ID == editing,
		}
		for key, value := range record.Values {
			if pos, ok := index[key]; ok {
				row.Cells[pos] = value
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
