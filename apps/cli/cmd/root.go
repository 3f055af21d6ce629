package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "throwspec",
	Short: "Matchers for thrown redirect and HTTP error signals.",
	Long: `throwspec runs matcher suites against route handlers that throw
redirect and HTTP error signals, and reports whether each thrown value
matched the expected status, location or message.`,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(matchersCmd)
	rootCmd.AddCommand(versionCmd)
}
