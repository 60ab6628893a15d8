package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daylog-io/daylog/pkg/parser"
)

// InspectOptions holds command-line options for the inspect command.
type InspectOptions struct {
	Output string
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <log-file>",
		Short: "Show how each log line will be parsed",
		Long: `Report, line by line, how the offline parser interprets a log.

For every non-blank line the report shows which extraction stage
produced the time field (range, single, none), the normalized time,
the cleaned activity, and any bracketed note. Useful for checking a
log before formatting it, since the AM/PM inference and range
detection are heuristic.

Example:
  daylog inspect today.md
  daylog inspect -o json today.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, opts *InspectOptions) error {
	logFile := args[0]

	if _, err := os.Stat(logFile); os.IsNotExist(err) {
		return fmt.Errorf("log file not found: %s", logFile)
	}

	data, err := os.ReadFile(logFile) // #nosec G304 -- user-provided log paths are expected
	if err != nil {
		return fmt.Errorf("reading log file: %w", err)
	}

	reports := parser.New().Inspect(string(data))

	switch opts.Output {
	case "json":
		return outputInspectJSON(cmd, logFile, reports)
	case "text":
		return outputInspectText(cmd, logFile, reports)
	default:
		return fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}

func outputInspectText(cmd *cobra.Command, logFile string, reports []parser.LineReport) error {
	w := cmd.OutOrStdout()

	fmt.Fprintln(w, "=== Activity Log Inspection ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "File: %s\n", logFile)

	withTimes := 0
	for _, r := range reports {
		if r.Kind != parser.RowKindNone {
			withTimes++
		}
	}
	fmt.Fprintf(w, "Lines: %d (%d with times)\n", len(reports), withTimes)
	fmt.Fprintln(w)

	if len(reports) == 0 {
		fmt.Fprintln(w, "No non-blank lines found.")
		return nil
	}

	for _, r := range reports {
		fmt.Fprintf(w, "%3d. [%-6s] %s | %s", r.LineNum, r.Kind, r.Row.Time, r.Row.Activity)
		if r.Row.Notes != "" {
			fmt.Fprintf(w, "  (notes: %s)", r.Row.Notes)
		}
		fmt.Fprintln(w)
	}

	return nil
}

// JSONLine represents one inspected line in JSON output.
type JSONLine struct {
	Line     int    `json:"line"`
	Raw      string `json:"raw"`
	Kind     string `json:"kind"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Notes    string `json:"notes,omitempty"`
}

// JSONInspection represents the full JSON output.
type JSONInspection struct {
	File  string     `json:"file"`
	Lines []JSONLine `json:"lines"`
}

func outputInspectJSON(cmd *cobra.Command, logFile string, reports []parser.LineReport) error {
	out := JSONInspection{
		File:  logFile,
		Lines: make([]JSONLine, 0, len(reports)),
	}

	for _, r := range reports {
		out.Lines = append(out.Lines, JSONLine{
			Line:     r.LineNum,
			Raw:      r.Raw,
			Kind:     string(r.Kind),
			Time:     r.Row.Time,
			Activity: r.Row.Activity,
			Notes:    r.Row.Notes,
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
