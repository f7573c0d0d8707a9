package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justinpbarnett/modal/internal/update"
)

var (
	checkUpdate bool
	applyUpdate bool
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and check for updates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("modal version %s\n", version)

		if applyUpdate {
			rel, err := update.Apply(cmd.Context(), version, update.DefaultRepo)
			if err != nil {
				return err
			}
			fmt.Printf("Updated to %s.\n", rel.Version)
			return nil
		}
		if !checkUpdate {
			return nil
		}

		rel, err := update.CheckForUpdate(cmd.Context(), version, update.DefaultRepo)
		if err != nil {
			fmt.Printf("Update check failed: %v\n", err)
			return nil
		}
		fmt.Println(update.Summary(version, rel))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&checkUpdate, "check", false, "check GitHub for a newer release")
	versionCmd.Flags().BoolVar(&applyUpdate, "update", false, "install the latest release")
}
