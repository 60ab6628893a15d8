package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daylog-io/daylog/pkg/config"
	"github.com/daylog-io/daylog/pkg/gemini"
	"github.com/daylog-io/daylog/pkg/output"
	"github.com/daylog-io/daylog/pkg/parser"
)

// SummaryHeading precedes an appended table when add_header is enabled.
const SummaryHeading = "## Daily Summary"

// FormatOptions holds command-line options for the format command.
type FormatOptions struct {
	Config   string
	Provider string
	Append   bool
	Header   bool
}

// NewFormatCommand creates the format command.
func NewFormatCommand() *cobra.Command {
	opts := &FormatOptions{}

	cmd := &cobra.Command{
		Use:   "format <log-file ...>",
		Short: "Format activity logs as Markdown tables",
		Long: `Convert freeform daily activity logs into three-column Markdown tables.

Each non-blank line of the log becomes one table row. Time expressions
are normalized to a 12-hour clock, "till"/"to" lines become ranges, and
bracketed fragments like [2hrs] move into the Notes column.

Reads each named file (glob patterns are expanded) and prints the table
to stdout, or appends it to the source document with --append. Use "-"
to read from stdin.

The formatter is chosen by the provider setting: "local" runs the
offline parser, "remote" asks the Gemini API. The document is only
modified after a table was successfully produced.

Exit codes:
  0 - Tables produced
  2 - Configuration or runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file (defaults apply when omitted)")
	cmd.Flags().StringVar(&opts.Provider, "provider", "", "Formatter to use (local|remote), overrides config")
	cmd.Flags().BoolVarP(&opts.Append, "append", "a", false, "Append the table to the source document")
	cmd.Flags().BoolVar(&opts.Header, "header", false, "Precede an appended table with a heading line")

	return cmd
}

func runFormat(cmd *cobra.Command, args []string, opts *FormatOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadOrDefault(ctx, opts.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if opts.Provider != "" {
		cfg.Provider = config.Provider(opts.Provider)
		if err := config.Validate(cfg); err != nil {
			return err
		}
	}

	addHeader := cfg.AddHeader
	if cmd.Flags().Changed("header") {
		addHeader = opts.Header
	}

	formatter, err := createFormatter(cfg)
	if err != nil {
		return err
	}

	// Stdin mode: format once, print only
	if len(args) == 1 && args[0] == "-" {
		if opts.Append {
			return fmt.Errorf("cannot append when reading from stdin")
		}
		text, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		table, err := formatter.Format(ctx, string(text))
		if err != nil {
			return fmt.Errorf("formatting with %s provider: %w", formatter.Name(), err)
		}
		fmt.Fprint(cmd.OutOrStdout(), table)
		return nil
	}

	files, err := parser.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding log files: %w", err)
	}

	for _, file := range files {
		data, err := os.ReadFile(file) // #nosec G304 -- user-provided log paths are expected
		if err != nil {
			return fmt.Errorf("reading log file: %w", err)
		}

		table, err := formatter.Format(ctx, string(data))
		if err != nil {
			return fmt.Errorf("formatting %s with %s provider: %w", file, formatter.Name(), err)
		}

		if opts.Append {
			if err := appendToDocument(file, table, addHeader); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Appended table to %s\n", file)
			continue
		}

		if len(files) > 1 {
			fmt.Fprintf(cmd.OutOrStdout(), "=== %s ===\n", file)
		}
		fmt.Fprint(cmd.OutOrStdout(), table)
	}

	return nil
}

// createFormatter picks the formatter implementation for the configured
// provider.
func createFormatter(cfg *config.Config) (output.Formatter, error) {
	switch cfg.Provider {
	case config.ProviderLocal:
		return output.NewLocalFormatter(), nil
	case config.ProviderRemote:
		client := gemini.NewClient(gemini.Options{
			APIKey:      cfg.Remote.APIKey,
			Model:       cfg.Remote.Model,
			BaseURL:     cfg.Remote.BaseURL,
			Timeout:     cfg.Remote.Timeout,
			MaxAttempts: cfg.Remote.MaxAttempts,
		})
		return output.NewRemoteFormatter(client), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (use local or remote)", cfg.Provider)
	}
}

// appendToDocument writes the table to the end of the document. The
// document is opened only after the table exists, so a formatter failure
// never touches it.
func appendToDocument(path, table string, addHeader bool) error {
	var block strings.Builder
	block.WriteString("\n")
	if addHeader {
		block.WriteString(SummaryHeading + "\n\n")
	}
	block.WriteString(table)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0) // #nosec G304 -- user-provided log paths are expected
	if err != nil {
		return fmt.Errorf("opening %s for append: %w", path, err)
	}

	_, writeErr := f.WriteString(block.String())
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("appending to %s: %w", path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing %s: %w", path, closeErr)
	}

	return nil
}
