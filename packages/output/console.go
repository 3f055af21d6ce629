package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/throwspec/throwspec/packages/suite"
)

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) FormatResult(result *suite.RunResult) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	title := result.File
	if result.Suite != "" {
		title = fmt.Sprintf("%s (%s)", result.Suite, result.File)
	}
	fmt.Fprintf(f.writer, "\n%s\n\n", bold("Running: "+title))

	for _, r := range result.Results {
		symbol := green("✓")
		if !r.Passed {
			symbol = red("✗")
		}

		fmt.Fprintf(f.writer, "  %s %s %s\n", symbol, r.Name, cyan(fmt.Sprintf("(%dms)", r.Duration.Milliseconds())))

		if !r.Passed {
			fmt.Fprintf(f.writer, "    %s %s\n", red("→"), r.Message)
			if r.HasDiff {
				fmt.Fprintf(f.writer, "      Expected: %v\n", r.Expected)
				fmt.Fprintf(f.writer, "      Actual:   %v\n", r.Actual)
			}
		} else if f.verbose && r.Message != "" {
			fmt.Fprintf(f.writer, "    %s\n", r.Message)
		}
	}

	fmt.Fprintf(f.writer, "\n  %d passed, %d failed (%dms)\n",
		result.Passed, result.Failed, result.Duration.Milliseconds())
}
