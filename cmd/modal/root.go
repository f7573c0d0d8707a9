package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/justinpbarnett/modal/internal/config"
	"github.com/justinpbarnett/modal/internal/logging"
)

var (
	configDir string
	language  string
	cfg       *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "modal",
	Short: "Modal dialogs for the terminal",
	Long: `modal shows a blocking dialog in the terminal and prints its result.

Each command draws one kind of dialog: a message, a confirmation, a list to
pick from, a text entry or a set of options. The result code is printed on
stdout: a button index or list selection, -1 for cancel and -3 when escape
closes a message.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) { logging.Shutdown() },
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory to look for modal.yaml in")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "string table language (overrides config)")
	addSessionFlags(rootCmd)
}

func setup(*cobra.Command, []string) error {
	var err error
	if configDir != "" {
		cfg, err = config.LoadFrom(configDir)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	if language != "" {
		cfg.Lang.Language = language
	}

	logging.Init(logging.Config{
		Dir:    cfg.Log.Dir,
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Debug:  cfg.Log.Debug,
		Output: os.Stderr,
	})
	logging.Logger().Debug("config loaded", "style", cfg.UI.Style, "metrics", cfg.UI.Metrics, "lang", cfg.Lang.Language)
	return nil
}
