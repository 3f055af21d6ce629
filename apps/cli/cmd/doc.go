// Package cmd implements the throwspec CLI commands using Cobra.
//
// Available commands:
//   - run: Execute matcher suites from YAML files
//   - list: Display the cases defined in suite files
//   - serve: Serve the example route handlers over HTTP
//   - matchers: List the registered matcher names
//   - version: Show throwspec version information
package cmd
