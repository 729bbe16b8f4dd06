package v1

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vmunix/streamgen/internal/library"
	"github.com/vmunix/streamgen/internal/tmdb"
	"github.com/vmunix/streamgen/pkg/streamlink"
)

//go:generate mockgen -source=deps.go -destination=mocks/mock_deps.go -package=mocks

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// MetadataProvider looks up titles in TMDB.
type MetadataProvider interface {
	SearchMovies(ctx context.Context, query string) ([]tmdb.SearchResult, error)
	SearchSeries(ctx context.Context, query string) ([]tmdb.SearchResult, error)
	GetMovie(ctx context.Context, tmdbID int64) (*tmdb.Movie, error)
	GetSeries(ctx context.Context, tmdbID int64) (*tmdb.Series, error)
	GetSeasons(ctx context.Context, tmdbID int64, numbers []int) ([]*tmdb.Season, error)
}

// LinkStore persists generated link sets.
type LinkStore interface {
	GetTitle(id int64) (*library.Title, error)
	GetTitleByTMDB(tmdbID int64, mode streamlink.Mode) (*library.Title, error)
	ListTitles(f library.TitleFilter) ([]*library.Title, int, error)
	ListLinks(titleID int64) ([]*library.Link, error)
	SaveGeneration(t *library.Title, links map[streamlink.PositionKey]string) error
	DeleteTitle(id int64) error
	Ping() error
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional dependencies may be nil.
type ServerDeps struct {
	// Required dependencies
	Metadata MetadataProvider
	Rules    *streamlink.Rules

	// Optional dependencies (nil if not configured)
	Library LinkStore    // nil disables saving and preloading links
	Logger  *slog.Logger // nil falls back to slog.Default()
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Metadata == nil {
		return errors.New("metadata provider is required")
	}
	if d.Rules == nil {
		return errors.New("link rules are required")
	}
	return nil
}
