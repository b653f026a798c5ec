package components

// Component names of the default registry. They match render.FieldView.Control.
const (
	NameInput  = "input"
	NameSelect = "select"
)

// Theme partial keys that may replace a default component template.
const (
	PartialInput  = "forms.input"
	PartialSelect = "forms.select"
)
