package output

import (
	"context"

	"github.com/daylog-io/daylog/pkg/gemini"
)

// RemoteFormatter delegates table generation to the Gemini API.
type RemoteFormatter struct {
	client *gemini.Client
}

// NewRemoteFormatter creates a formatter backed by the given client.
func NewRemoteFormatter(client *gemini.Client) *RemoteFormatter {
	return &RemoteFormatter{client: client}
}

// Name returns the formatter name.
func (f *RemoteFormatter) Name() string {
	return "remote"
}

// Format asks the API for a table. Retries for busy servers happen inside
// the client; any surfaced error means no table was produced.
func (f *RemoteFormatter) Format(ctx context.Context, logText string) (string, error) {
	return f.client.Summarize(ctx, logText)
}
