package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	v1 "github.com/vmunix/streamgen/internal/api/v1"
	"github.com/vmunix/streamgen/internal/config"
	"github.com/vmunix/streamgen/internal/library"
	"github.com/vmunix/streamgen/internal/migrations"
	"github.com/vmunix/streamgen/internal/server"
	"github.com/vmunix/streamgen/internal/tmdb"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 200 { // Only capture first WriteHeader call
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: 200}
		next.ServeHTTP(wrapped, r)
		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func resolveConfigPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return config.Discover()
}

// openDatabase opens the SQLite file and applies the embedded schema.
func openDatabase(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// one writer at a time keeps SQLITE_BUSY out of request paths
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func newTMDBClient(cfg config.TMDBConfig) *tmdb.Client {
	opts := []tmdb.Option{
		tmdb.WithLanguage(cfg.Language),
		tmdb.WithCacheTTL(cfg.CacheTTL),
		tmdb.WithRateLimit(cfg.RequestsPerSecond, cfg.Burst),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, tmdb.WithBaseURL(cfg.BaseURL))
	}
	return tmdb.NewClient(cfg.APIKey, opts...)
}

func runServer(configPath string) error {
	path, err := resolveConfigPath(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Load config
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))
	slog.SetDefault(logger)

	rules, err := cfg.Links.Rules()
	if err != nil {
		return fmt.Errorf("links: %w", err)
	}

	db, err := openDatabase(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	// === Stores and clients ===
	libraryStore := library.NewStore(db)
	tmdbClient := newTMDBClient(cfg.TMDB)

	// === HTTP Setup ===
	apiV1, err := v1.NewWithDeps(v1.ServerDeps{
		Metadata: tmdbClient,
		Rules:    rules,
		Library:  libraryStore,
		Logger:   logger,
	}, v1.Config{
		DefaultURL:   cfg.Links.DefaultURL,
		MovieOptions: cfg.Links.MovieOptions,
		Version:      version,
	})
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}

	mux := http.NewServeMux()
	apiV1.RegisterRoutes(mux)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting",
		"addr", addr,
		"config", path,
		"database", cfg.Database.Path,
		"language", tmdbClient.Language(),
		"domains", strings.Join(rules.Domains(), ","),
		"log_level", cfg.Server.LogLevel,
	)

	runner := server.NewRunner(logRequests(mux, logger), apiV1.Drafts(), tmdbClient, server.Config{
		Addr:            addr,
		IdleTimeout:     cfg.Drafts.IdleTimeout,
		ShutdownTimeout: 30 * time.Second,
	}, logger.With("component", "runner"))

	// Stop on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
