package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"todocards/internal/config"
	"todocards/internal/webtui"

	"github.com/spf13/cobra"
)

func newWebTUICmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "webtui",
		Short: "Serve the TUI in a browser (PTY + WebSocket)",
		Long: strings.TrimSpace(`
Serve the todo cards UI to a browser through a server-side PTY and a browser
terminal emulator.

Every browser tab starts its own TUI process with its own in-memory list;
reloading the tab starts over from the two example cards. There is no auth:
bind to localhost.
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(addr) == "" {
				addr = app.Config.WebTUIAddr
			}
			srv, err := webtui.NewServer(webtui.ServerConfig{
				Addr:   addr,
				Args:   sessionArgs(app.Config),
				Logger: app.Logger,
			})
			if err != nil {
				return err
			}

			_ = writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"addr":      srv.Addr(),
					"startedAt": time.Now().UTC().Format(time.RFC3339),
				},
				"_hints": []string{"open http://" + srv.Addr()},
			})
			fmt.Fprintf(cmd.ErrOrStderr(), "todocards webtui running at http://%s\n", srv.Addr())

			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Bind address (host:port or :port; default from config, 127.0.0.1:3335)")
	return cmd
}

// sessionArgs are the flags one browser session's TUI is started with: the
// server's resolved theme and config file. The debug log is forced off so
// sessions never rotate one file concurrently.
func sessionArgs(cfg config.Config) []string {
	theme := cfg.Theme
	if theme == "" {
		theme = "auto"
	}
	args := []string{"--theme", theme, "--debug-log="}
	if cfg.File != "" {
		args = append(args, "--config", cfg.File)
	}
	return args
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
