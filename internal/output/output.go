// Package output provides output formatting for the tstamp CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Format represents the output format mode.
type Format string

const (
	FormatDefault Format = "default"
	FormatJSON    Format = "json"
)

// ParseFormat maps a flag value to a Format. Unknown values fall back to
// the default format.
func ParseFormat(s string) Format {
	switch s {
	case "json":
		return FormatJSON
	default:
		return FormatDefault
	}
}

// Result is the outcome of normalizing one input string.
type Result struct {
	Input        string `json:"input"`
	Success      bool   `json:"success"`
	UTC          string `json:"utc,omitempty"`
	EpochSeconds int64  `json:"epoch_seconds,omitempty"`
	EpochMillis  int64  `json:"epoch_millis,omitempty"`
	Error        string `json:"error,omitempty"`
}

// Render writes the results to w in the requested format.
func Render(w io.Writer, format Format, results []Result) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	for _, r := range results {
		if r.Success {
			fmt.Fprintf(w, "%s %s -> %s\n", green("OK"), r.Input, r.UTC)
		} else {
			fmt.Fprintf(w, "%s %s: %s\n", red("X"), r.Input, r.Error)
		}
	}
	return nil
}
