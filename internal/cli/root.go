// Package cli wires the roster terminal client: an interactive session by
// default, plus one-shot commands for scripts.
package cli

import (
	"activityBoard/internal/client"
	"activityBoard/internal/config"
	"activityBoard/internal/controller"
	"activityBoard/internal/lib/logger"
	"activityBoard/internal/lib/logger/handlers/slogdiscard"
	"activityBoard/internal/terminal"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var ErrRejected = errors.New("request rejected")

type App struct {
	ServerURL string
	Format    string
	Verbose   bool

	cfg *config.Client
	log *slog.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "roster",
		Short:        "Mergington High School activity roster",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive session
  roster

  # Scriptable commands
  roster activities --format=json
  roster signup "Chess Club" new@mergington.edu
  roster search --sort=updated "signup form"
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.init(cmd)
	}

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", "", "Activity API base URL (default $ROSTER_SERVER_URL or http://localhost:8000)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", defaultFormat(), "Output format for listings (text|json)")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Log requests to stderr")

	cmd.AddCommand(newActivitiesCmd(app))
	cmd.AddCommand(newSignUpCmd(app))
	cmd.AddCommand(newUnregisterCmd(app))
	cmd.AddCommand(newSearchCmd(app))

	return cmd
}

func defaultFormat() string {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatText
	}

	return FormatJSON
}

func (app *App) init(cmd *cobra.Command) error {
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}
	app.cfg = cfg

	if app.ServerURL == "" {
		app.ServerURL = cfg.ServerURL
	}

	switch app.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid --format value %q", app.Format)
	}

	if app.Verbose {
		app.log = logger.New(cfg.Env, cmd.ErrOrStderr())
	} else {
		app.log = slogdiscard.NewDiscardLogger()
	}

	return nil
}

func (app *App) client() *client.Client {
	return client.New(app.ServerURL, nil)
}

func (app *App) controller() (*controller.Controller, error) {
	loc, err := app.cfg.Location()
	if err != nil {
		return nil, err
	}

	return controller.New(app.log, app.client(),
		controller.WithStatusTTL(app.cfg.StatusTTL),
		controller.WithLocation(loc),
	), nil
}

func runSession(cmd *cobra.Command, app *App) error {
	ctrl, err := app.controller()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	in := cmd.InOrStdin()

	prompt := false
	if f, ok := in.(*os.File); ok {
		prompt = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	session := terminal.NewSession(app.log, ctrl, in, cmd.OutOrStdout(), prompt)

	return session.Run(cmd.Context())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
