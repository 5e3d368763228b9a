package cli

import (
	"fmt"
	"os"
	"strings"

	"todocards/internal/docs"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw bool
	var width int

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in help topics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, map[string]any{"data": docs.Topics()})
			}
			md, ok := docs.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown topic %q (available: %s)", args[0], strings.Join(docs.Topics(), ", "))
			}
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), docs.Render(md, width, docsStyle(cmd, app.Config.Theme)))
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print markdown source")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width")
	return cmd
}

// docsStyle renders plain text when stdout is not a color terminal.
func docsStyle(cmd *cobra.Command, theme string) string {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return "notty"
	}
	out := termenv.NewOutput(cmd.OutOrStdout())
	if out.Profile == termenv.Ascii {
		return "notty"
	}
	switch theme {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	if out.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
