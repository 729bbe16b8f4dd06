package v1

import (
	"net/http"

	"github.com/vmunix/streamgen/internal/draft"
)

// requireLibrary wraps a handler and returns 503 if the library is not configured.
func (s *Server) requireLibrary(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.deps.Library == nil {
			writeError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Library not configured")
			return
		}
		next(w, r)
	}
}

// withDraft resolves the {id} path value to an open draft.
func (s *Server) withDraft(next func(http.ResponseWriter, *http.Request, *draft.Draft)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := s.drafts.Get(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "DRAFT_NOT_FOUND", "Draft not found")
			return
		}
		next(w, r, d)
	}
}
