package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/throwspec/throwspec/packages/expect"
)

var matchersCmd = &cobra.Command{
	Use:   "matchers",
	Short: "List the registered matcher names",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range expect.NewRegistry().Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}
