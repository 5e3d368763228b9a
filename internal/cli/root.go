package cli

import (
	"io"
	"log/slog"
	"strings"

	"todocards/internal/config"
	"todocards/internal/format"
	"todocards/internal/logging"
	"todocards/internal/store"
	"todocards/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Config config.Config
	Logger *slog.Logger

	// Dump prints the final list when the TUI exits.
	Dump bool

	logCloser io.Closer
}

func NewRootCmd() *cobra.Command {
	app := &App{Logger: logging.Discard()}

	cmd := &cobra.Command{
		Use:          "todocards",
		Short:        "In-memory todo cards in your terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the interactive TUI (two example cards, nothing is saved)
  todocards

  # Print what was left on the list when you quit
  todocards --dump --format edn

  # Same UI in a browser tab
  todocards webtui --addr 127.0.0.1:3335
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}
		app.Config = cfg
		logger, closer, err := logging.New(cfg.DebugLog)
		if err != nil {
			return err
		}
		app.Logger, app.logCloser = logger, closer
		app.Logger.Debug("config.loaded", "file", cfg.File, "theme", cfg.Theme, "format", cfg.Format)
		return nil
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.logCloser == nil {
			return nil
		}
		return app.logCloser.Close()
	}

	config.RegisterFlags(cmd.PersistentFlags())
	cmd.Flags().BoolVar(&app.Dump, "dump", false, "Print the final list on exit (see --format)")

	cmd.AddCommand(newSeedCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newWebTUICmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	st := store.NewSeeded()
	if err := tui.Run(tui.Options{Store: st, Logger: app.Logger, Theme: app.Config.Theme}); err != nil {
		return err
	}
	if !app.Dump {
		return nil
	}
	return writeOut(cmd, app, map[string]any{"data": st.Tasks()})
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Config.Format, app.Config.Pretty)
}
