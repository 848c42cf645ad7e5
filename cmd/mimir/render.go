package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/mimir"
)

var renderName string

var renderCmd = &cobra.Command{
	Use:   "render <component>",
	Short: "Render an example component to HTML on stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := registry(renderName)

		component, ok := reg[args[0]]
		if !ok {
			names := make([]string, 0, len(reg))
			for n := range reg {
				names = append(names, n)
			}
			sort.Strings(names)
			return fmt.Errorf("unknown component %q (available: %s)", args[0], strings.Join(names, ", "))
		}

		result, err := mimir.Render(component())
		if err != nil {
			return err
		}
		defer result.Unmount()

		fmt.Println(result.HTML())
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderName, "name", "World", "Subject name for the personal greeting")
	rootCmd.AddCommand(renderCmd)
}
