// Package v1 implements the JSON API used by the editor UI.
package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vmunix/streamgen/internal/draft"
)

// Config holds API server configuration.
type Config struct {
	DefaultURL   string // replaces invalid and empty entries on confirm
	MovieOptions int    // number of player options per movie
	Version      string
}

// Server is the v1 API server.
type Server struct {
	deps   ServerDeps
	cfg    Config
	drafts *draft.Registry
	log    *slog.Logger
}

// NewWithDeps creates a v1 API server.
func NewWithDeps(deps ServerDeps, cfg Config) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingDependency, err)
	}
	if cfg.MovieOptions <= 0 {
		cfg.MovieOptions = 3
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		deps: deps,
		cfg:  cfg,
		log:  log.With("component", "api"),
	}
	s.drafts = draft.NewRegistry(deps.Rules, draft.GeneratorFunc(s.generate), cfg.DefaultURL)
	return s, nil
}

// Drafts returns the registry of open drafts.
func (s *Server) Drafts() *draft.Registry {
	return s.drafts
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Metadata
	mux.HandleFunc("GET /api/v1/search", s.search)

	// Drafts
	mux.HandleFunc("POST /api/v1/drafts", s.createDraft)
	mux.HandleFunc("GET /api/v1/drafts/{id}", s.withDraft(s.getDraft))
	mux.HandleFunc("PUT /api/v1/drafts/{id}/entries", s.withDraft(s.setEntry))
	mux.HandleFunc("POST /api/v1/drafts/{id}/generate", s.withDraft(s.generateDraft))
	mux.HandleFunc("POST /api/v1/drafts/{id}/confirm", s.withDraft(s.confirmDraft))
	mux.HandleFunc("POST /api/v1/drafts/{id}/cancel", s.withDraft(s.cancelDraft))
	mux.HandleFunc("DELETE /api/v1/drafts/{id}", s.deleteDraft)

	// Stateless validation
	mux.HandleFunc("POST /api/v1/check", s.check)

	// Library
	mux.HandleFunc("GET /api/v1/library", s.requireLibrary(s.listLibrary))
	mux.HandleFunc("GET /api/v1/library/{id}", s.requireLibrary(s.getLibraryTitle))
	mux.HandleFunc("DELETE /api/v1/library/{id}", s.requireLibrary(s.deleteLibraryTitle))

	// System
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// pathID extracts an integer ID from the URL path.
func pathID(r *http.Request, name string) (int64, error) {
	idStr := r.PathValue(name)
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	return strconv.ParseInt(idStr, 10, 64)
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

// queryString extracts an optional string from query string.
func queryString(r *http.Request, name string) *string {
	val := r.URL.Query().Get(name)
	if val == "" {
		return nil
	}
	return &val
}

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
