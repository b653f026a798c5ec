// Package tui drives a form session from an interactive terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formdesk/pkg/engine"
	"github.com/goliatone/go-formdesk/pkg/render"
	"github.com/goliatone/go-formdesk/pkg/renderers/text"
	"github.com/goliatone/go-formdesk/pkg/schema"
)

// Menu entries.
const (
	ActionNew    = "New form"
	ActionEdit   = "Edit entry"
	ActionDelete = "Delete entry"
	ActionQuit   = "Quit"
)

// Session is the part of session.Session the runner drives.
type Session interface {
	TypeNames() []string
	Records() []schema.Record
	Page() render.Page
	FieldViews() []render.FieldView
	SelectType(typeName string) error
	SetFieldValue(name, value string) error
	Submit() (schema.Record, error)
	CancelEdit() error
	BeginEdit(id schema.RecordID) (schema.Record, error)
	DeleteRecord(id schema.RecordID) error
	Settle()
}

// Runner loops over a menu until the user quits, printing the page between
// steps.
type Runner struct {
	session Session
	driver  PromptDriver
	pages   render.Renderer
	out     io.Writer
	theme   Theme
	logger  *slog.Logger
}

// New builds a Runner. Without WithPromptDriver it prompts through survey.
func New(session Session, options ...Option) (*Runner, error) {
	if session == nil {
		return nil, ErrNoSession
	}
	r := &Runner{
		session: session,
		theme:   DefaultTheme,
		logger:  slog.Default(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(r.out)
	}
	if r.pages == nil {
		r.pages = text.New()
	}
	return r, nil
}

// Run shows the menu until Quit is chosen. It returns ErrAborted when the user
// interrupts a prompt.
func (r *Runner) Run(ctx context.Context) error {
	for {
		if err := r.showPage(ctx); err != nil {
			return err
		}
		actions := r.actions()
		idx, err := r.driver.Select(ctx, SelectConfig{Message: "What next?", Options: actions})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(actions) {
			return fmt.Errorf("tui: menu choice %d out of range", idx)
		}

		switch actions[idx] {
		case ActionQuit:
			return nil
		case ActionNew:
			err = r.newForm(ctx)
		case ActionEdit:
			err = r.editEntry(ctx)
		case ActionDelete:
			err = r.deleteEntry(ctx)
		}
		if err != nil {
			return err
		}
	}
}

func (r *Runner) actions() []string {
	actions := []string{ActionNew}
	if len(r.session.Records()) > 0 {
		actions = append(actions, ActionEdit, ActionDelete)
	}
	return append(actions, ActionQuit)
}

func (r *Runner) newForm(ctx context.Context) error {
	names := r.session.TypeNames()
	if len(names) == 0 {
		return r.info(ctx, r.theme.ErrorPrefix+"no form types configured")
	}
	idx, err := r.driver.Select(ctx, SelectConfig{Message: "Form type", Options: names})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(names) {
		return fmt.Errorf("tui: form type choice %d out of range", idx)
	}
	if err := r.session.SelectType(names[idx]); err != nil {
		return err
	}
	return r.fill(ctx, false)
}

func (r *Runner) editEntry(ctx context.Context) error {
	record, ok, err := r.pickRecord(ctx, "Entry to edit")
	if err != nil || !ok {
		return err
	}
	if _, err := r.session.BeginEdit(record.ID); err != nil {
		return r.info(ctx, r.theme.ErrorPrefix+err.Error())
	}
	return r.fill(ctx, true)
}

func (r *Runner) deleteEntry(ctx context.Context) error {
	record, ok, err := r.pickRecord(ctx, "Entry to delete")
	if err != nil || !ok {
		return err
	}
	confirmed, err := r.driver.Confirm(ctx, ConfirmConfig{Message: fmt.Sprintf("Delete %s?", recordLabel(record))})
	if err != nil || !confirmed {
		return err
	}
	if err := r.session.DeleteRecord(record.ID); err != nil {
		return r.info(ctx, r.theme.ErrorPrefix+err.Error())
	}
	return nil
}

func (r *Runner) pickRecord(ctx context.Context, message string) (schema.Record, bool, error) {
	records := r.session.Records()
	if len(records) == 0 {
		return schema.Record{}, false, nil
	}
	labels := make([]string, 0, len(records))
	for _, record := range records {
		labels = append(labels, recordLabel(record))
	}
	idx, err := r.driver.Select(ctx, SelectConfig{Message: message, Options: labels})
	if err != nil {
		return schema.Record{}, false, err
	}
	if idx < 0 || idx >= len(records) {
		return schema.Record{}, false, fmt.Errorf("tui: record choice %d out of range", idx)
	}
	return records[idx], true, nil
}

// fill prompts every field, then submits. On validation failure only the
// invalid fields are asked again. When editing, the user may cancel instead
// of saving.
func (r *Runner) fill(ctx context.Context, editing bool) error {
	views := r.session.FieldViews()
	for {
		for _, view := range views {
			if err := r.promptField(ctx, view); err != nil {
				return err
			}
		}

		if editing {
			save, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Save changes?", Default: true})
			if err != nil {
				return err
			}
			if !save {
				return r.session.CancelEdit()
			}
		}

		record, err := r.session.Submit()
		if errors.Is(err, engine.ErrValidationFailed) {
			views = invalidFields(r.session.FieldViews())
			for _, view := range views {
				if err := r.info(ctx, r.theme.ErrorPrefix+view.Error); err != nil {
					return err
				}
			}
			continue
		}
		if err != nil {
			return err
		}

		r.logger.Debug("entry saved from terminal", "id", record.ID, "type", record.TypeName)
		if err := r.showPage(ctx); err != nil {
			return err
		}
		r.session.Settle()
		return nil
	}
}

func (r *Runner) promptField(ctx context.Context, view render.FieldView) error {
	message := view.Label
	if view.Marker != "" {
		message += " " + view.Marker
	}

	var (
		value string
		err   error
	)
	switch {
	case view.Control == render.ControlSelect:
		labels := make([]string, 0, len(view.Options))
		selected := 0
		for i, option := range view.Options {
			labels = append(labels, option.Label)
			if option.Selected {
				selected = i
			}
		}
		var idx int
		idx, err = r.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      labels,
			DefaultIndex: selected,
			Help:         plainHelp(view.Help),
		})
		if err == nil && idx >= 0 && idx < len(view.Options) {
			value = view.Options[idx].Value
		}
	case view.Masked:
		value, err = r.driver.Password(ctx, InputConfig{Message: message, Help: plainHelp(view.Help)})
		if err == nil && value == "" {
			value = view.Value
		}
	default:
		value, err = r.driver.Input(ctx, InputConfig{
			Message: message,
			Default: view.Value,
			Help:    plainHelp(view.Help),
		})
	}
	if err != nil {
		return err
	}
	return r.session.SetFieldValue(view.Name, value)
}

func (r *Runner) showPage(ctx context.Context) error {
	out, err := r.pages.Render(ctx, r.session.Page())
	if err != nil {
		return fmt.Errorf("tui: render page: %w", err)
	}
	if len(out) == 0 {
		return nil
	}
	return r.info(ctx, strings.TrimRight(string(out), "\n"))
}

func (r *Runner) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

func invalidFields(views []render.FieldView) []render.FieldView {
	out := make([]render.FieldView, 0, len(views))
	for _, view := range views {
		if view.Invalid {
			out = append(out, view)
		}
	}
	return out
}

func recordLabel(record schema.Record) string {
	return fmt.Sprintf("%s (%s)", record.ID, record.TypeName)
}

var strictPolicy = bluemonday.StrictPolicy()

// plainHelp strips markup from help text for terminal prompts.
func plainHelp(help string) string {
	if help == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(help)))
}
