package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/mimir"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mimir",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mimir version %s\n", mimir.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
