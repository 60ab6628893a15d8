package output

import (
	"context"

	"github.com/daylog-io/daylog/pkg/parser"
)

// LocalFormatter renders tables with the offline heuristic parser.
// It is pure: any input produces a well-formed table and a nil error.
type LocalFormatter struct {
	parser *parser.Parser
}

// NewLocalFormatter creates a local formatter.
func NewLocalFormatter() *LocalFormatter {
	return &LocalFormatter{parser: parser.New()}
}

// Name returns the formatter name.
func (f *LocalFormatter) Name() string {
	return "local"
}

// Format converts the log text into a Markdown table.
func (f *LocalFormatter) Format(_ context.Context, logText string) (string, error) {
	return RenderTable(f.parser.Parse(logText)), nil
}
