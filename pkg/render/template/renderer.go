package template

import "io"

// FilterFunc is an engine-neutral template filter.
type FilterFunc func(input any, param any) (any, error)

// TemplateRenderer renders named templates or inline template strings with a
// data value. Results are returned and also copied to every writer in out.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(content string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn FilterFunc) error
	GlobalContext(data any) error
}
