package main

import (
	"errors"

	"github.com/spf13/cobra"

	formdesk "github.com/goliatone/go-formdesk"
	"github.com/goliatone/go-formdesk/pkg/renderers/tui"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Fill in, edit and delete entries interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.registry(cmd.Context())
			if err != nil {
				return err
			}
			s, err := a.session(reg, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			renderers, err := formdesk.NewRenderers(formdesk.RenderOptions{})
			if err != nil {
				return err
			}
			pages, err := renderers.Get(formdesk.RendererText)
			if err != nil {
				return err
			}

			runner, err := tui.New(s,
				tui.WithOutput(cmd.OutOrStdout()),
				tui.WithPageRenderer(pages),
				tui.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			if err := runner.Run(cmd.Context()); err != nil && !errors.Is(err, tui.ErrAborted) {
				return err
			}
			a.logger.Info("session closed", "entries", len(s.Records()))
			return nil
		},
	}
}
