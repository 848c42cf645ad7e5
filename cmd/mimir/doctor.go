package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/mimir/internal/config"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Validate the mimir.yaml configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		output.PrintHeader("mimir doctor")

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		output.PrintSuccess("configuration is valid")
		output.PrintFile(configPath)

		missing := 0
		for _, setup := range cfg.Setup {
			if _, err := os.Stat(setup); err != nil {
				output.PrintWarning("setup file missing: %s", setup)
				missing++
				continue
			}
			output.PrintSuccess("setup file found: %s", setup)
		}

		if missing > 0 {
			return fmt.Errorf("%d setup file(s) missing", missing)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
