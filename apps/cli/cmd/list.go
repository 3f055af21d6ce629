package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/throwspec/throwspec/packages/suite"
)

var listCmd = &cobra.Command{
	Use:   "list <file|directory>",
	Short: "List all cases in suite files",
	Long: `List all cases defined in .suite.yaml files.

Examples:
  throwspec list auth.suite.yaml
  throwspec list ./suites/`,
	Args: cobra.MinimumNArgs(1),
	RunE: listCommand,
}

func listCommand(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .suite.yaml files found")
	}

	for _, file := range files {
		s, err := suite.Load(file)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStderr(), "Error parsing %s: %v\n", file, err)
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%s:\n", file)
		for _, c := range s.Cases {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", c.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "    handler: %s, matcher: %s", c.Handler, c.Matcher)
			if c.Negated {
				fmt.Fprint(cmd.OutOrStdout(), " (negated)")
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}
	}

	return nil
}
