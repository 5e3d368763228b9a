package cli

import (
	"todocards/internal/store"

	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print the cards every session starts with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, map[string]any{
				"data": store.NewSeeded().Tasks(),
				"_hints": []string{
					"ids are generated per session",
					"run `todocards` to edit these interactively",
				},
			})
		},
	}
}
