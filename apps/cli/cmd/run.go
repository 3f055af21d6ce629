package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/throwspec/throwspec/packages/output"
	"github.com/throwspec/throwspec/packages/suite"
)

var runCmd = &cobra.Command{
	Use:   "run <file|directory>",
	Short: "Run matcher suites from YAML files",
	Long: `Run matcher suites defined in .suite.yaml files.

Examples:
  throwspec run auth.suite.yaml
  throwspec run ./suites/ --bail
  throwspec run auth.suite.yaml --output json
  throwspec run ./suites/ --watch`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCommand,
}

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var (
	verboseFlag bool
	noColorFlag bool
	bailFlag    bool
	outputFlag  string
	watchFlag   bool
)

func init() {
	runCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output")
	runCmd.Flags().BoolVar(&noColorFlag, "no-color", getEnvBool("THROWSPEC_NO_COLOR", false), "Disable colored output (env: THROWSPEC_NO_COLOR)")
	runCmd.Flags().BoolVar(&bailFlag, "bail", getEnvBool("THROWSPEC_BAIL", false), "Stop on first failure (env: THROWSPEC_BAIL)")
	runCmd.Flags().StringVarP(&outputFlag, "output", "o", getEnvString("THROWSPEC_OUTPUT", "console"), "Output format: console, json (env: THROWSPEC_OUTPUT)")
	runCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch files for changes and re-run suites")
}

func runCommand(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .suite.yaml files found")
	}

	if watchFlag {
		return watchAndRun(files)
	}

	failed, err := runFiles(files)
	if err != nil {
		return err
	}
	if failed > 0 {
		os.Exit(ExitCaseFailure)
	}
	return nil
}

func runFiles(files []string) (failed int, err error) {
	runner := suite.NewRunner(suite.WithBail(bailFlag))

	for _, file := range files {
		result, err := runner.RunFile(file)
		if err != nil {
			return failed, err
		}

		switch outputFlag {
		case "json":
			if err := output.NewJSONFormatter(os.Stdout).FormatResult(result); err != nil {
				return failed, err
			}
		default:
			f := output.NewConsoleFormatter(
				output.WithVerbose(verboseFlag),
				output.WithNoColor(noColorFlag),
			)
			f.FormatResult(result)
		}

		failed += result.Failed
		if bailFlag && failed > 0 {
			break
		}
	}
	return failed, nil
}

func watchAndRun(files []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dirs := make(map[string]bool)
	for _, file := range files {
		dirs[filepath.Dir(file)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	if _, err := runFiles(files); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	fmt.Println("\nWatching for changes... (ctrl-c to stop)")

	var debounce *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !isSuiteFile(event.Name) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(WatchDebounceDelay, func() {
				if _, err := runFiles(files); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

func isSuiteFile(path string) bool {
	return strings.HasSuffix(path, ".suite.yaml") || strings.HasSuffix(path, ".suite.yml")
}

func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isSuiteFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return defaultVal
}
