// Package server runs the HTTP API and its background housekeeping.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// Config for the runner.
type Config struct {
	Addr            string
	IdleTimeout     time.Duration // drafts untouched this long are dropped; 0 keeps them
	ReapInterval    time.Duration
	ShutdownTimeout time.Duration
}

// Reaper drops idle drafts.
type Reaper interface {
	Reap(idle time.Duration) int
}

// CachePruner drops expired metadata cache entries.
type CachePruner interface {
	PruneCache() int
}

// Runner manages the server lifecycle.
type Runner struct {
	handler http.Handler
	drafts  Reaper
	cache   CachePruner
	config  Config
	logger  *slog.Logger
}

// NewRunner creates a new runner. cache may be nil.
func NewRunner(handler http.Handler, drafts Reaper, cache CachePruner, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ReapInterval <= 0 {
		cfg.ReapInterval = time.Minute
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	return &Runner{
		handler: handler,
		drafts:  drafts,
		cache:   cache,
		config:  cfg,
		logger:  logger,
	}
}

// Run listens on the configured address and serves until ctx is canceled.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", r.config.Addr, err)
	}
	return r.Serve(ctx, ln)
}

// Serve runs the HTTP server on ln together with the housekeeping loop.
// It blocks until ctx is canceled or a component fails.
func (r *Runner) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           r.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.ShutdownTimeout)
		defer cancel()
		r.logger.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		r.housekeep(ctx)
		return nil
	})

	return g.Wait()
}

func (r *Runner) housekeep(ctx context.Context) {
	ticker := time.NewTicker(r.config.ReapInterval)
	defer ticker.Stop()

	log := r.logger.With("component", "reaper")
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if r.drafts != nil {
				if n := r.drafts.Reap(r.config.IdleTimeout); n > 0 {
					log.Info("idle drafts dropped", "count", n)
				}
			}
			if r.cache != nil {
				if n := r.cache.PruneCache(); n > 0 {
					log.Debug("metadata cache pruned", "count", n)
				}
			}
		}
	}
}
