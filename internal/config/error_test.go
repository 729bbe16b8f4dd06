package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigError_Empty(t *testing.T) {
	e := &ConfigError{Path: "config.toml"}
	assert.False(t, e.HasErrors())
	assert.Empty(t, e.Error())
	assert.Empty(t, e.Sections())
}

func TestConfigError_LinkRuleErrors(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	path := writeConfig(t, `
[tmdb]
api_key = "${TMDB_API_KEY:?tmdb key required}"

[server]
port = 70000

[links]
domains = ["StreamWish.to"]
default_url = "streamwish.to/e/none00"
movie_options = 50
`)

	_, err := Load(path)
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr), "expected *ConfigError, got %v", err)

	assert.Equal(t, []string{"TMDB_API_KEY: tmdb key required"}, cfgErr.Missing)
	assert.Equal(t, []string{"links", "server"}, cfgErr.Sections())

	links := cfgErr.Section("links")
	require.Len(t, links, 3)
	assert.Contains(t, links[0], `links.domains: "StreamWish.to" must be lower case`)
	assert.Contains(t, links[1], "links.default_url: must be an absolute http(s) URL")
	assert.Contains(t, links[2], "links.movie_options: must be between 1 and 20, got 50")

	msg := cfgErr.Error()
	assert.Contains(t, msg, "config "+path+": 5 problem(s)")
	assert.Contains(t, msg, "missing environment variables: TMDB_API_KEY: tmdb key required")
	assert.Less(t, strings.Index(msg, "links.domains"), strings.Index(msg, "server.port"))
}

func TestSectionOf(t *testing.T) {
	assert.Equal(t, "links", sectionOf("links.domains: bad"))
	assert.Equal(t, "links", sectionOf("links: at least one domain is required"))
	assert.Equal(t, "tmdb", sectionOf("tmdb.api_key: required"))
	assert.Equal(t, "odd", sectionOf("odd"))
}
