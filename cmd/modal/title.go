package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/justinpbarnett/modal/internal/dialog"
	"github.com/justinpbarnett/modal/internal/title"
)

// pixelRowStep spaces title buttons in pixel metrics.
const pixelRowStep = 40

var titleCmd = &cobra.Command{
	Use:   "title",
	Short: "Show the title screen and print the chosen button id",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd.Context(), func(_ context.Context, e *dialog.Engine) ([]string, error) {
			var opts []title.Option
			if cfg.UI.Metrics == "pixel" {
				opts = append(opts, title.WithRowStep(pixelRowStep))
			}
			if headless {
				opts = append(opts, title.WithPacer(dialog.Unpaced{}))
			}
			return []string{title.New(e, cfg.Title, opts...).Show()}, nil
		})
	},
}

func init() {
	rootCmd.AddCommand(titleCmd)
}
