// Package config provides configuration loading and validation for daylog.
package config

import "time"

// Provider selects which formatter turns a log into a table.
type Provider string

const (
	// ProviderLocal uses the offline heuristic parser (default).
	ProviderLocal Provider = "local"
	// ProviderRemote uses the Gemini API.
	ProviderRemote Provider = "remote"
)

// Config is the root configuration structure loaded from YAML.
// None of these settings change how the local parser interprets a line.
type Config struct {
	// Provider picks the formatter: local or remote.
	Provider Provider `yaml:"provider"`

	// AddHeader prepends a heading line when appending a table to a
	// document.
	AddHeader bool `yaml:"add_header"`

	// Remote configures the Gemini-backed formatter. Ignored when
	// Provider is local.
	Remote RemoteConfig `yaml:"remote,omitempty"`
}

// RemoteConfig holds the settings of the remote formatter.
type RemoteConfig struct {
	// APIKey is the credential. Supports ${VAR} / $VAR expansion; falls
	// back to GEMINI_API_KEY when empty.
	APIKey string `yaml:"api_key,omitempty"`

	// Model is the generation model name.
	Model string `yaml:"model,omitempty"`

	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string `yaml:"base_url,omitempty"`

	// Timeout bounds each HTTP request.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// MaxAttempts caps the total tries for busy-server retries.
	MaxAttempts int `yaml:"max_attempts,omitempty"`
}
