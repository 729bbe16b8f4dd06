package main

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/streamgen/internal/config"
	"github.com/vmunix/streamgen/internal/library"
	"github.com/vmunix/streamgen/pkg/streamlink"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("bogus"))
}

func TestLogRequests(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	h := logRequests(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
	}), log)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	assert.Contains(t, buf.String(), "path=/api/v1/status")
	assert.Contains(t, buf.String(), "status=418")
}

func TestOpenDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "streamgen.db")
	db, err := openDatabase(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	store := library.NewStore(db)
	title := &library.Title{TMDBID: 1, Type: streamlink.ModeMovie, Title: "Dune"}
	require.NoError(t, store.UpsertTitle(title))

	// migrations are idempotent
	db2, err := openDatabase(path)
	require.NoError(t, err)
	_ = db2.Close()
}

func TestNewTMDBClient(t *testing.T) {
	cfg := config.Default().TMDB
	cfg.APIKey = "k"
	cfg.CacheTTL = time.Minute
	c := newTMDBClient(cfg)
	assert.Equal(t, "es-MX", c.Language())
}

func TestResolveConfigPath_Explicit(t *testing.T) {
	path, err := resolveConfigPath("/etc/streamgen/config.toml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/streamgen/config.toml", path)
}
