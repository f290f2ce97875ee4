// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config layers defaults, a YAML config file, a .env file, and
// MOMENT_SEARCH_* environment variables into one types.AppConfig.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pdiddy/moment-search/internal/logger"
	"github.com/pdiddy/moment-search/internal/moment"
	"github.com/pdiddy/moment-search/internal/search"
	"github.com/pdiddy/moment-search/pkg/types"
)

// Name is the config file base name and the env prefix source.
const Name = "moment-search"

// EnvPrefix prefixes every environment override, e.g. MOMENT_SEARCH_BACKEND_URL.
const EnvPrefix = "MOMENT_SEARCH"

// Defaults registers the default value of every key on v.
func Defaults(v *viper.Viper, version string) {
	v.SetDefault("backend.url", search.DefaultEndpoint)
	v.SetDefault("backend.timeout", "0s")
	v.SetDefault("backend.user_agent", Name+"/"+version)
	v.SetDefault("embed.host", moment.DefaultEmbedHost)
	v.SetDefault("ui.addr", ":5173")
	v.SetDefault("ui.title", "Video Moment Search")
	v.SetDefault("ui.placeholder", "Search Query for Video Moment...")
	v.SetDefault("ui.drop_stale_responses", true)
	v.SetDefault("log.level", "info")
}

// Setup points v at the config file and the environment. An explicit file
// wins; otherwise moment-search.yaml is looked up in the working directory
// and in ~/.config/moment-search/.
func Setup(v *viper.Viper, file string) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", Name))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// LoadDotEnv reads KEY=VALUE pairs from path into the process environment.
// Variables already set are left alone. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", path, err)
}

// Read reads the config file if one is found and returns its path. No file
// at all is not an error unless one was named explicitly; a file that exists
// but does not parse is.
func Read(v *viper.Viper) (string, error) {
	if explicit := v.ConfigFileUsed(); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("reading config: %w", err)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("reading config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load decodes v into an AppConfig and validates it.
func Load(v *viper.Viper) (types.AppConfig, error) {
	var cfg types.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail much later.
func Validate(cfg types.AppConfig) error {
	u, err := url.Parse(cfg.Backend.URL)
	if err != nil {
		return fmt.Errorf("backend.url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("backend.url: %q is not an absolute http(s) URL", cfg.Backend.URL)
	}
	if cfg.Backend.Timeout < 0 {
		return fmt.Errorf("backend.timeout: must not be negative, got %s", cfg.Backend.Timeout)
	}
	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
