package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daylog-io/daylog/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a daylog configuration file without formatting anything.

Checks:
  - YAML syntax
  - Provider value (local or remote)
  - Remote endpoint URL, timeout, and retry settings
  - API key presence for the remote provider (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(w, "\nConfiguration valid!\n")
	fmt.Fprintf(w, "  Provider:   %s\n", cfg.Provider)
	fmt.Fprintf(w, "  Add header: %v\n", cfg.AddHeader)

	if cfg.Provider == config.ProviderRemote {
		fmt.Fprintf(w, "\nRemote formatter:\n")
		fmt.Fprintf(w, "  Model:        %s\n", cfg.Remote.Model)
		if cfg.Remote.BaseURL != "" {
			fmt.Fprintf(w, "  Base URL:     %s\n", cfg.Remote.BaseURL)
		}
		fmt.Fprintf(w, "  Timeout:      %s\n", cfg.Remote.Timeout)
		fmt.Fprintf(w, "  Max attempts: %d\n", cfg.Remote.MaxAttempts)

		if cfg.Remote.APIKey == "" {
			fmt.Fprintf(w, "\nWarning: no API key configured (set remote.api_key or %s)\n", config.EnvAPIKey)
		}
	}

	return nil
}
