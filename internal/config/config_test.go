// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/moment-search/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newViper(t *testing.T, file string) *viper.Viper {
	t.Helper()
	v := viper.New()
	Defaults(v, "test")
	Setup(v, file)
	return v
}

func TestLoadDefaults(t *testing.T) {
	v := newViper(t, "")

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/search", cfg.Backend.URL)
	assert.Zero(t, cfg.Backend.Timeout)
	assert.Equal(t, "moment-search/test", cfg.Backend.UserAgent)
	assert.Equal(t, "www.youtube.com", cfg.Embed.Host)
	assert.Equal(t, ":5173", cfg.UI.Addr)
	assert.Equal(t, "Video Moment Search", cfg.UI.Title)
	assert.Equal(t, "Search Query for Video Moment...", cfg.UI.Placeholder)
	assert.True(t, cfg.UI.DropStaleResponses)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", `
backend:
  url: https://search.example.com/api/search
  timeout: 15s
embed:
  host: www.youtube-nocookie.com
ui:
  addr: 127.0.0.1:9000
  drop_stale_responses: false
log:
  level: debug
`)
	v := newViper(t, path)

	used, err := Read(v)
	require.NoError(t, err)
	assert.Equal(t, path, used)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "https://search.example.com/api/search", cfg.Backend.URL)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "www.youtube-nocookie.com", cfg.Embed.Host)
	assert.Equal(t, "127.0.0.1:9000", cfg.UI.Addr)
	assert.False(t, cfg.UI.DropStaleResponses)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "Video Moment Search", cfg.UI.Title, "unset keys keep defaults")
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", "backend:\n  url: http://file.example/search\n")
	t.Setenv("MOMENT_SEARCH_BACKEND_URL", "http://env.example/search")
	t.Setenv("MOMENT_SEARCH_UI_TITLE", "From Env")

	v := newViper(t, path)
	_, err := Read(v)
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "http://env.example/search", cfg.Backend.URL)
	assert.Equal(t, "From Env", cfg.UI.Title)
}

func TestReadMissingExplicitFile(t *testing.T) {
	v := newViper(t, filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Read(v)
	assert.Error(t, err)
}

func TestReadMalformedFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "backend: [unclosed\n")
	v := newViper(t, path)
	_, err := Read(v)
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "MOMENT_SEARCH_EMBED_HOST=dotenv.example\nMOMENT_SEARCH_LOG_LEVEL=warn\n")
	t.Setenv("MOMENT_SEARCH_LOG_LEVEL", "error")

	require.NoError(t, LoadDotEnv(path))
	t.Cleanup(func() { os.Unsetenv("MOMENT_SEARCH_EMBED_HOST") })

	cfg, err := Load(newViper(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "dotenv.example", cfg.Embed.Host)
	assert.Equal(t, "error", cfg.Log.Level, "variables already set win over .env")
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestValidate(t *testing.T) {
	valid := func() types.AppConfig {
		return types.AppConfig{
			Backend: types.BackendConfig{URL: "http://localhost:8080/search"},
			Log:     types.LogConfig{Level: "info"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*types.AppConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(*types.AppConfig) {}},
		{name: "https backend", mutate: func(c *types.AppConfig) { c.Backend.URL = "https://x.example/search" }},
		{name: "relative backend", mutate: func(c *types.AppConfig) { c.Backend.URL = "/search" }, wantErr: "backend.url"},
		{name: "ftp backend", mutate: func(c *types.AppConfig) { c.Backend.URL = "ftp://x.example/search" }, wantErr: "backend.url"},
		{name: "unparseable backend", mutate: func(c *types.AppConfig) { c.Backend.URL = "http://[::1" }, wantErr: "backend.url"},
		{name: "negative timeout", mutate: func(c *types.AppConfig) { c.Backend.Timeout = -time.Second }, wantErr: "backend.timeout"},
		{name: "bad log level", mutate: func(c *types.AppConfig) { c.Log.Level = "loud" }, wantErr: "log.level"},
		{name: "upper-case log level", mutate: func(c *types.AppConfig) { c.Log.Level = "DEBUG" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
