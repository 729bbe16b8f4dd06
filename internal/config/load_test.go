// internal/config/load_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalTOML = `
[tmdb]
api_key = "test-key"

[links]
default_url = "https://streamwish.to/e/fallback"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath
}

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalTOML+`
[server]
port = 8080
`))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "test-key", cfg.TMDB.APIKey)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalTOML))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8484, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "./data/streamgen.db", cfg.Database.Path)
	assert.Equal(t, "es-MX", cfg.TMDB.Language)
	assert.Equal(t, 24*time.Hour, cfg.TMDB.CacheTTL)
	assert.Equal(t, []string{"hlswish.com", "streamwish.to", "cdnplaypro.com"}, cfg.Links.Domains)
	assert.Equal(t, []string{"e", "d"}, cfg.Links.Modes)
	assert.Equal(t, 6, cfg.Links.MinTokenLength)
	assert.Equal(t, 3, cfg.Links.MovieOptions)
	assert.Equal(t, 2*time.Hour, cfg.Drafts.IdleTimeout)
}

func TestLoad_CustomLinks(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[tmdb]
api_key = "k"

[links]
domains = ["player.example"]
modes = ["v"]
min_token_length = 4
default_url = "https://player.example/v/none"

[drafts]
idle_timeout = "15m"
`))
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.Drafts.IdleTimeout)

	rules, err := cfg.Links.Rules()
	require.NoError(t, err)
	assert.True(t, rules.IsValid("https://player.example/v/abcd"))
	assert.False(t, rules.IsValid("https://streamwish.to/e/abc123"))
}

func TestLoad_MissingEnvVar(t *testing.T) {
	os.Unsetenv("STREAMGEN_MISSING_KEY")
	_, err := Load(writeConfig(t, `
[tmdb]
api_key = "${STREAMGEN_MISSING_KEY}"

[links]
default_url = "https://streamwish.to/e/fallback"
`))
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, cfgErr.Missing, "STREAMGEN_MISSING_KEY")
}

func TestLoad_ValidationError(t *testing.T) {
	_, err := Load(writeConfig(t, minimalTOML+`
[server]
port = 99999
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}

func TestLoad_ParseError(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\nport = "))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoadWithoutValidation(t *testing.T) {
	cfg, err := LoadWithoutValidation(writeConfig(t, `
[server]
port = 99999
`))
	require.NoError(t, err)
	assert.Equal(t, 99999, cfg.Server.Port)
	assert.Equal(t, []string{"e", "d"}, cfg.Links.Modes, "defaults still applied")
}

func TestLoad_EnvVarDefault(t *testing.T) {
	os.Unsetenv("STREAMGEN_OPTIONAL_HOST")
	cfg, err := Load(writeConfig(t, minimalTOML+`
[server]
host = "${STREAMGEN_OPTIONAL_HOST:-localhost}"
`))
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Server.Host)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 8484, cfg.Server.Port)
	_, err := cfg.Links.Rules()
	assert.NoError(t, err)
}
