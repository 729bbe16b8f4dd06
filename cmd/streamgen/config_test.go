package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommand_WritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streamgen", "config.toml")
	old := configPath
	configPath = path
	t.Cleanup(func() { configPath = old })

	out, err := runCLI(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[links]")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	path := writeTestConfig(t)

	_, err := runCLI(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = runCLI(t, "init", "--force")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "movie_options")
}

func TestInitCommand_WrittenConfigPassesTest(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "test-key")
	t.Setenv("STREAMGEN_DEFAULT_URL", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	old := configPath
	configPath = path
	t.Cleanup(func() { configPath = old })

	_, err := runCLI(t, "init")
	require.NoError(t, err)

	out, err := runCLI(t, "config", "test", path)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Configuration valid!")
}

func TestConfigTestCommand(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "test-key")
	path := writeTestConfig(t)
	cfg := `
[tmdb]
api_key = "${TMDB_API_KEY}"
` + testConfig
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	out, err := runCLI(t, "config", "test", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Domains:    streamwish.to, hlswish.com")
	assert.Contains(t, out, "Configuration valid!")
}

func TestConfigTestCommand_Invalid(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	path := writeTestConfig(t)

	out, err := runCLI(t, "config", "test", path)
	require.Error(t, err)
	assert.Contains(t, out, "[tmdb]\n  - tmdb.api_key: required")
}

func TestConfigTestCommand_GroupsBySection(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "key")
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := `
[server]
port = 70000

[tmdb]
api_key = "${TMDB_API_KEY}"

[links]
domains = ["StreamWish.to"]
`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	out, err := runCLI(t, "config", "test", path)
	require.Error(t, err)
	links := strings.Index(out, "[links]")
	server := strings.Index(out, "[server]")
	require.NotEqual(t, -1, links)
	require.NotEqual(t, -1, server)
	assert.Less(t, links, server)
	assert.Contains(t, out, `links.domains: "StreamWish.to" must be lower case`)
	assert.NotContains(t, out, "[tmdb]")
}
