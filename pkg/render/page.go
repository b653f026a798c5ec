package render

import (
	"fmt"
	"math"

	"github.com/goliatone/go-formdesk/pkg/schema"
)

const (
	SubmitLabel = "Submit"
	UpdateLabel = "Update"
	CancelLabel = "Cancel"
)

// TypeOption is one entry of the form-type selector.
type TypeOption struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected,omitempty"`
}

// PageInput gathers the state a page is built from. Form is nil when no form
// type is active.
type PageInput struct {
	TypeNames []string
	Form      *schema.FormTypeSchema
	Values    schema.Values
	Errors    schema.Errors
	EditingID schema.RecordID
	Progress  float64
	Message   string
	Records   []schema.Record
	// Lookup resolves record types for table labels; optional.
	Lookup func(typeName string) (schema.FormTypeSchema, error)
}

// Page is the complete view model of one screen: selector, active form,
// progress, message and the submissions table.
type Page struct {
	Types            []TypeOption    `json:"types"`
	ShowTypeSelector bool            `json:"showTypeSelector"`
	ActiveType       string          `json:"activeType,omitempty"`
	HasForm          bool            `json:"hasForm"`
	Editing          bool            `json:"editing"`
	EditingID        schema.RecordID `json:"editingId,omitempty"`
	Fields           []FieldView     `json:"fields,omitempty"`
	Progress         float64         `json:"progress"`
	ProgressPercent  int             `json:"progressPercent"`
	ProgressLabel    string          `json:"progressLabel,omitempty"`
	Message          string          `json:"message,omitempty"`
	SubmitLabel      string          `json:"submitLabel,omitempty"`
	ShowCancel       bool            `json:"showCancel"`
	Table            Table           `json:"table"`
}

// NewPage assembles a Page. The type selector is hidden while a record is
// being edited, and the submit button reads "Update" in that case.
func NewPage(in PageInput) Page {
	editing := in.EditingID != ""
	page := Page{
		ShowTypeSelector: !editing,
		Editing:          editing,
		EditingID:        in.EditingID,
		Message:          in.Message,
		Table:            NewTable(in.Records, in.Lookup, in.EditingID),
	}

	active := ""
	if in.Form != nil {
		active = in.Form.TypeName
	}
	page.Types = make([]TypeOption, 0, len(in.TypeNames))
	for _, name := range in.TypeNames {
		page.Types = append(page.Types, TypeOption{Name: name, Selected: name == active})
	}

	if in.Form == nil {
		return page
	}

	page.ActiveType = active
	page.HasForm = true
	page.Fields = RenderForm(*in.Form, in.Values, in.Errors)
	page.Progress = in.Progress
	page.ProgressPercent = RoundPercent(in.Progress)
	page.ProgressLabel = ProgressLabel(in.Progress)
	page.SubmitLabel = SubmitLabel
	if editing {
		page.SubmitLabel = UpdateLabel
		page.ShowCancel = true
	}
	return page
}

// RoundPercent rounds progress to a whole percentage clamped to [0, 100].
func RoundPercent(progress float64) int {
	switch {
	case math.IsNaN(progress) || progress <= 0:
		return 0
	case progress >= 100:
		return 100
	default:
		return int(math.Round(progress))
	}
}

// ProgressLabel formats progress the way the form header shows it, for
// example "67% Complete".
func ProgressLabel(progress float64) string {
	return fmt.Sprintf("%d%% Complete", RoundPercent(progress))
}
