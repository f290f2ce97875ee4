// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero leaves the transport default
	// in place, which is no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "moment-search/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// BackendConfig locates the search backend.
type BackendConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// URL is the full address of the search endpoint
	// (default "http://localhost:8080/search").
	URL string `json:"url" yaml:"url" mapstructure:"url"`
}

// EmbedConfig holds settings for building player locators.
type EmbedConfig struct {
	// Host is the embedding provider's host name (default "www.youtube.com").
	Host string `json:"host" yaml:"host" mapstructure:"host"`
}

// UIConfig holds settings for the web UI.
type UIConfig struct {
	// Addr is the listen address of the web UI server (default ":5173").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// Title is shown as the page heading and document title.
	Title string `json:"title" yaml:"title" mapstructure:"title"`

	// Placeholder is the hint text shown in the empty search input.
	Placeholder string `json:"placeholder" yaml:"placeholder" mapstructure:"placeholder"`

	// DropStaleResponses enables the request generation guard: when
	// searches overlap, only the most recently issued one may update state.
	DropStaleResponses bool `json:"drop_stale_responses" yaml:"drop_stale_responses" mapstructure:"drop_stale_responses"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error, fatal, panic.
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// AppConfig groups all component configurations.
type AppConfig struct {
	Backend BackendConfig `json:"backend" yaml:"backend" mapstructure:"backend"`
	Embed   EmbedConfig   `json:"embed" yaml:"embed" mapstructure:"embed"`
	UI      UIConfig      `json:"ui" yaml:"ui" mapstructure:"ui"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}
