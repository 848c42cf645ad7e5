package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/mimir/internal/cli"
)

var output = cli.NewOutput()

var rootCmd = &cobra.Command{
	Use:   "mimir",
	Short: "Render and preview mimir example components",
	Long:  `mimir renders declarative components into a simulated document. This command previews the example components and validates tooling configuration.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "mimir.yaml", "Path to the tooling configuration file")
}
