package config

import (
	"os"

	"github.com/daylog-io/daylog/pkg/gemini"
)

// Environment variable names.
const (
	EnvProvider = "DAYLOG_PROVIDER"
	EnvAPIKey   = "GEMINI_API_KEY"
)

// DefaultConfig returns a configuration with sensible defaults: the local
// formatter, no appended heading, and the client defaults for remote.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderLocal,
		Remote: RemoteConfig{
			Model:       gemini.DefaultModel,
			Timeout:     gemini.DefaultTimeout,
			MaxAttempts: gemini.DefaultMaxAttempts,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides.
func (c *Config) applyEnvironmentOverrides() {
	if provider := os.Getenv(EnvProvider); provider != "" {
		c.Provider = Provider(provider)
	}
	if c.Remote.APIKey == "" {
		c.Remote.APIKey = os.Getenv(EnvAPIKey)
	}
}
