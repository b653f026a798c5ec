package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	formdesk "github.com/goliatone/go-formdesk"
	"github.com/goliatone/go-formdesk/internal/config"
	"github.com/goliatone/go-formdesk/pkg/engine"
)

type renderFlags struct {
	typeName   string
	sets       []string
	editSample bool
	submit     bool
	format     string
	out        string
	theme      string
	variant    string
}

func newRenderCmd(a *app) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one page snapshot as HTML or text",
		Long: "Render one page snapshot as HTML or text.\n\n" +
			"With --type the form is selected and --set values are entered. " +
			"--submit submits the form; --edit-sample submits it and loads the new entry back for editing.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, a, f)
		},
	}
	cmd.Flags().StringVar(&f.typeName, "type", "", "form type to select")
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, "field value as name=value (repeatable)")
	cmd.Flags().BoolVar(&f.submit, "submit", false, "submit the form after entering values")
	cmd.Flags().BoolVar(&f.editSample, "edit-sample", false, "submit, then load the entry for editing")
	cmd.Flags().StringVar(&f.format, "format", "", "output format: html or text (default from config)")
	cmd.Flags().StringVar(&f.out, "out", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&f.theme, "theme", "", "theme name for HTML output")
	cmd.Flags().StringVar(&f.variant, "variant", "", "theme variant for HTML output")
	return cmd
}

func runRender(cmd *cobra.Command, a *app, f *renderFlags) error {
	ctx := cmd.Context()
	reg, err := a.registry(ctx)
	if err != nil {
		return err
	}
	s, err := a.session(reg, heldScheduler{})
	if err != nil {
		return err
	}
	defer s.Close()

	if f.typeName != "" {
		if err := s.SelectType(f.typeName); err != nil {
			return err
		}
		for _, pair := range f.sets {
			name, value, ok := strings.Cut(pair, "=")
			if !ok {
				return fmt.Errorf("--set %q: expected name=value", pair)
			}
			if err := s.SetFieldValue(strings.TrimSpace(name), value); err != nil {
				return err
			}
		}
		if f.submit || f.editSample {
			record, err := s.Submit()
			switch {
			case err == nil && f.editSample:
				s.Settle()
				if _, err := s.BeginEdit(record.ID); err != nil {
					return err
				}
			case err == nil:
			case f.editSample || !errors.Is(err, engine.ErrValidationFailed):
				return err
			}
			// A rejected --submit renders the page with its field errors.
		}
	} else if len(f.sets) > 0 || f.submit || f.editSample {
		return fmt.Errorf("--set, --submit and --edit-sample need --type")
	}

	theme := f.theme
	if theme == "" {
		theme = a.cfg.Render.Theme
	}
	variant := f.variant
	if variant == "" {
		variant = a.cfg.Render.Variant
	}
	renderers, err := formdesk.NewRenderers(formdesk.RenderOptions{
		Theme:     theme,
		Variant:   variant,
		InlineCSS: a.cfg.Render.InlineCSS,
	})
	if err != nil {
		return err
	}

	format := f.format
	if format == "" {
		format = a.cfg.Render.Format
	}
	name := formdesk.RendererHTML
	switch format {
	case config.FormatHTML:
	case config.FormatText:
		name = formdesk.RendererText
	default:
		return fmt.Errorf("--format %q: expected html or text", format)
	}

	output, err := formdesk.RenderPage(ctx, renderers, name, s.Page())
	if err != nil {
		return err
	}
	if f.out == "" {
		_, err = cmd.OutOrStdout().Write(output)
		return err
	}
	if err := os.WriteFile(f.out, output, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.out, err)
	}
	printf(cmd.ErrOrStderr(), "%s %s\n", styleOK.Render("Page written to"), f.out)
	return nil
}

// heldScheduler never fires, so a one-shot render keeps the submit message
// and the submitted values on the page.
type heldScheduler struct{}

func (heldScheduler) AfterFunc(time.Duration, func()) func() bool {
	return func() bool { return true }
}
