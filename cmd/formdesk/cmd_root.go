package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	formdesk "github.com/goliatone/go-formdesk"
	"github.com/goliatone/go-formdesk/internal/config"
	"github.com/goliatone/go-formdesk/internal/logging"
	"github.com/goliatone/go-formdesk/pkg/engine"
	"github.com/goliatone/go-formdesk/pkg/registry"
	"github.com/goliatone/go-formdesk/pkg/session"
	"github.com/goliatone/go-formdesk/pkg/store"
)

const appName = "formdesk"

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	styleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleErr   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

// app carries what subcommands share once the root pre-run has loaded the
// configuration.
type app struct {
	configPath  string
	formsDir    string
	openapiPath string
	logLevel    string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           appName,
		Short:         "Schema-driven forms with progress, validation and an editable entry list",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "configuration file (.toml, .json, .yaml)")
	flags.StringVar(&a.formsDir, "forms", "", "directory of form documents (default: bundled forms)")
	flags.StringVar(&a.openapiPath, "openapi", "", "OpenAPI 3 document to import form types from")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newTypesCmd(a),
		newRenderCmd(a),
		newRunCmd(a),
		newLintCmd(a),
	)
	return root
}

// setup loads the config file, lets flags override it and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.formsDir != "" {
		cfg.Forms.Dir = a.formsDir
	}
	if a.openapiPath != "" {
		cfg.Forms.OpenAPI = a.openapiPath
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	loggerConfig := cfg.LoggerConfig()
	loggerConfig.Output = cmd.ErrOrStderr()
	logger, err := logging.New(loggerConfig)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) registry(ctx context.Context) (*registry.Registry, error) {
	return formdesk.LoadForms(ctx, formdesk.FormSources{
		Dir:     a.cfg.Forms.Dir,
		OpenAPI: a.cfg.Forms.OpenAPI,
		Logger:  a.logger,
	})
}

// session builds a session from the configuration. scheduler may be nil for
// system timers.
func (a *app) session(reg *registry.Registry, scheduler engine.Scheduler) (*session.Session, error) {
	options := []session.Option{
		session.WithRegistry(reg),
		session.WithLogger(a.logger),
		session.WithSubmitDelay(a.cfg.Engine.SubmitDelay.Duration),
		session.WithDeleteDelay(a.cfg.Engine.DeleteDelay.Duration),
		session.WithScheduler(scheduler),
	}
	if prefix := a.cfg.Store.IDPrefix; prefix != "" {
		options = append(options, session.WithIDGenerator(store.NewSequence(prefix)))
	}
	return session.New(options...)
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
