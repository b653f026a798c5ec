// Package text renders a render.Page as styled terminal text.
package text

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/goliatone/go-formdesk/pkg/render"
)

// DefaultBarWidth is the number of cells in the progress bar.
const DefaultBarWidth = 20

// MaskedValue replaces password values in the output.
const MaskedValue = "••••"

// EditingMarker prefixes the first cell of the row being edited.
const EditingMarker = "> "

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	styleLabel   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	styleValue   = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleMarker  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleOK      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	styleBar     = lipgloss.NewStyle().Foreground(lipgloss.Color("57"))
	styleButton  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	styleBorder  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleSection = lipgloss.NewStyle().MarginTop(1)
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithBarWidth sets the progress bar width in cells.
func WithBarWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.barWidth = width
		}
	}
}

// WithMaskedValues controls whether password values are hidden. Enabled by
// default.
func WithMaskedValues(enabled bool) Option {
	return func(r *Renderer) {
		r.mask = enabled
	}
}

// Renderer writes the page for terminals.
type Renderer struct {
	barWidth int
	mask     bool
}

var _ render.Renderer = (*Renderer)(nil)

// New builds a Renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{barWidth: DefaultBarWidth, mask: true}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string { return "text" }

func (r *Renderer) ContentType() string { return "text/plain; charset=utf-8" }

// Render lays out the message, the form header with progress, every field and
// the submissions table.
func (r *Renderer) Render(ctx context.Context, page render.Page) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var sections []string

	if page.Message != "" {
		sections = append(sections, styleOK.Render(page.Message))
	}

	if page.ShowTypeSelector && !page.HasForm {
		names := make([]string, 0, len(page.Types))
		for _, option := range page.Types {
			names = append(names, option.Name)
		}
		sections = append(sections, styleLabel.Render("Form types: ")+strings.Join(names, " | "))
	}

	if page.HasForm {
		sections = append(sections, r.form(page))
	}

	if !page.Table.Empty() {
		sections = append(sections, r.table(page.Table))
	}

	if len(sections) == 0 {
		return []byte{}, nil
	}
	out := sections[0]
	for _, section := range sections[1:] {
		out = lipgloss.JoinVertical(lipgloss.Left, out, styleSection.Render(section))
	}
	return []byte(out + "\n"), nil
}

// ProgressBar draws progress as filled and empty cells followed by the label.
func ProgressBar(progress float64, width int) string {
	if width <= 0 {
		width = DefaultBarWidth
	}
	percent := render.RoundPercent(progress)
	filled := percent * width / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "] " + render.ProgressLabel(progress)
}

func (r *Renderer) form(page render.Page) string {
	title := page.ActiveType
	if page.Editing {
		title = fmt.Sprintf("%s (editing %s)", title, page.EditingID)
	}
	lines := []string{
		styleTitle.Render(title),
		styleBar.Render(ProgressBar(page.Progress, r.barWidth)),
	}
	for _, field := range page.Fields {
		lines = append(lines, r.field(field)...)
	}

	actions := styleButton.Render("[" + page.SubmitLabel + "]")
	if page.ShowCancel {
		actions += " " + styleButton.Render("["+render.CancelLabel+"]")
	}
	lines = append(lines, actions)
	return strings.Join(lines, "\n")
}

func (r *Renderer) field(field render.FieldView) []string {
	label := styleLabel.Render(field.Label)
	if field.Marker != "" {
		label += " " + styleMarker.Render(field.Marker)
	}

	value := field.Value
	switch {
	case value == "" && field.Control == render.ControlSelect:
		value = styleMuted.Render(field.Placeholder)
	case value == "":
		value = styleMuted.Render("-")
	case field.Masked && r.mask:
		value = styleValue.Render(MaskedValue)
	default:
		value = styleValue.Render(value)
	}

	lines := []string{label + ": " + value}
	if field.Control == render.ControlSelect {
		choices := make([]string, 0, len(field.Options))
		for _, option := range field.Options {
			if !option.Placeholder {
				choices = append(choices, option.Label)
			}
		}
		lines = append(lines, styleMuted.Render("  options: "+strings.Join(choices, ", ")))
	}
	if field.Invalid {
		lines = append(lines, styleErr.Render("  ! "+field.Error))
	}
	return lines
}

// table lists schema columns only; record ids and type names stay out of
// the grid. The editing row is marked on its first cell.
func (r *Renderer) table(t render.Table) string {
	headers := make([]string, 0, len(t.Columns))
	for _, column := range t.Columns {
		headers = append(headers, column.Label)
	}

	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := slices.Clone(row.Cells)
		if row.Editing && len(cells) > 0 {
			cells[0] = EditingMarker + cells[0]
		}
		rows = append(rows, cells)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		Rows(rows...).
		Render()
}
