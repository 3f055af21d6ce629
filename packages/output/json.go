package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/throwspec/throwspec/packages/suite"
)

type JSONFormatter struct {
	writer io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	if w == nil {
		w = os.Stdout
	}
	return &JSONFormatter{writer: w}
}

type jsonReport struct {
	File       string     `json:"file"`
	Suite      string     `json:"suite,omitempty"`
	Passed     int        `json:"passed"`
	Failed     int        `json:"failed"`
	DurationMs int64      `json:"durationMs"`
	Cases      []jsonCase `json:"cases"`
}

type jsonCase struct {
	Name       string `json:"name"`
	Passed     bool   `json:"passed"`
	Message    string `json:"message,omitempty"`
	Field      string `json:"field,omitempty"`
	Expected   any    `json:"expected,omitempty"`
	Actual     any    `json:"actual,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

func (f *JSONFormatter) FormatResult(result *suite.RunResult) error {
	report := jsonReport{
		File:       result.File,
		Suite:      result.Suite,
		Passed:     result.Passed,
		Failed:     result.Failed,
		DurationMs: result.Duration.Milliseconds(),
	}

	for _, r := range result.Results {
		c := jsonCase{
			Name:       r.Name,
			Passed:     r.Passed,
			DurationMs: r.Duration.Milliseconds(),
		}
		if !r.Passed {
			c.Message = r.Message
		}
		if r.HasDiff {
			c.Field = r.Field
			c.Expected = r.Expected
			c.Actual = r.Actual
		}
		report.Cases = append(report.Cases, c)
	}

	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
