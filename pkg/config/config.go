package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/daylog-io/daylog/pkg/gemini"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads the config at path, or returns the defaults (with
// environment overrides applied) when path is empty.
func LoadOrDefault(ctx context.Context, path string) (*Config, error) {
	if path == "" {
		cfg := DefaultConfig()
		cfg.applyEnvironmentOverrides()
		if err := Validate(cfg); err != nil {
			return nil, fmt.Errorf("validating config: %w", err)
		}
		return cfg, nil
	}
	return Load(ctx, path)
}

// Validate checks a configuration for errors and fills in defaults.
func Validate(cfg *Config) error {
	switch cfg.Provider {
	case "":
		cfg.Provider = ProviderLocal
	case ProviderLocal, ProviderRemote:
		// Valid
	default:
		return fmt.Errorf("provider: invalid value %q (must be local or remote)", cfg.Provider)
	}

	if err := validateRemote(&cfg.Remote); err != nil {
		return fmt.Errorf("remote: %w", err)
	}

	return nil
}

func validateRemote(rc *RemoteConfig) error {
	// Expand environment variables in the credential
	rc.APIKey = expandEnvVar(rc.APIKey)

	if rc.Model == "" {
		rc.Model = gemini.DefaultModel
	}

	if rc.BaseURL != "" {
		u, err := url.Parse(rc.BaseURL)
		if err != nil {
			return fmt.Errorf("invalid base_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("base_url scheme must be http or https, got %q", u.Scheme)
		}
		if u.Host == "" {
			return fmt.Errorf("base_url must have a host")
		}
	}

	if rc.Timeout <= 0 {
		rc.Timeout = gemini.DefaultTimeout
	}

	if rc.MaxAttempts <= 0 {
		rc.MaxAttempts = gemini.DefaultMaxAttempts
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	// Handle ${VAR} format
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		varName := s[2 : len(s)-1]
		return os.Getenv(varName)
	}

	// Handle $VAR format (no braces)
	if strings.HasPrefix(s, "$") && !strings.HasPrefix(s, "${") {
		varName := s[1:]
		return os.Getenv(varName)
	}

	return s
}
