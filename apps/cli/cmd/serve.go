package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/throwspec/throwspec/packages/routes"
)

var servePortFlag int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the example route handlers over HTTP",
	Long: `Serve the example handlers the matcher suites run against, with
thrown signals rendered as real HTTP responses.

Examples:
  throwspec serve
  throwspec serve --port 8080`,
	RunE: serveCommand,
}

func init() {
	serveCmd.Flags().IntVarP(&servePortFlag, "port", "p", 3000, "Port to listen on")
}

func serveCommand(cmd *cobra.Command, args []string) error {
	router := routes.NewRouter()

	log.Printf("Example server starting on http://localhost:%d", servePortFlag)
	for _, name := range routes.Names() {
		log.Printf("  handler: %s", name)
	}

	return http.ListenAndServe(fmt.Sprintf(":%d", servePortFlag), router)
}
