package engine

import "github.com/goliatone/go-formdesk/pkg/schema"

// Progress returns the percentage of required fields in form whose trimmed
// value is non-empty. A form with no required fields is complete.
func Progress(form schema.FormTypeSchema, values schema.Values) float64 {
	total, filled := 0, 0
	for _, field := range form.Fields {
		if !field.Required {
			continue
		}
		total++
		if values.Filled(field.Name) {
			filled++
		}
	}
	if total == 0 {
		return 100
	}
	return 100 * float64(filled) / float64(total)
}

// Validate returns one "<label> is required" message per empty required
// field of form.
func Validate(form schema.FormTypeSchema, values schema.Values) schema.Errors {
	errs := make(schema.Errors)
	for _, field := range form.Fields {
		if field.Required && !values.Filled(field.Name) {
			errs[field.Name] = field.DisplayLabel() + " is required"
		}
	}
	return errs
}
