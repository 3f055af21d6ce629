// Package output provides formatters for displaying suite results.
//
// Console renders human-readable colored terminal output; JSON emits a
// machine-readable report for CI.
package output
