// Package output renders activity logs as Markdown tables, either locally
// or through the remote formatter.
package output

import "context"

// Formatter produces a Markdown table from raw activity log text.
type Formatter interface {
	// Format converts the log text into table text. The local
	// implementation never returns an error; the remote one can.
	Format(ctx context.Context, logText string) (string, error)

	// Name returns the formatter name (local, remote).
	Name() string
}
