package v1

import (
	"time"

	"github.com/vmunix/streamgen/internal/draft"
	"github.com/vmunix/streamgen/pkg/streamlink"
	"github.com/vmunix/streamgen/pkg/titlematch"
)

// searchResultResponse is one ranked TMDB hit.
type searchResultResponse struct {
	TMDBID     int64                 `json:"tmdb_id"`
	Title      string                `json:"title"`
	Year       int                   `json:"year,omitempty"`
	Overview   string                `json:"overview,omitempty"`
	PosterURL  string                `json:"poster_url,omitempty"`
	Score      float64               `json:"score"`
	Confidence titlematch.Confidence `json:"confidence"`
}

// searchResponse is the response for GET /search.
type searchResponse struct {
	Query   string                 `json:"query"`
	Type    streamlink.Mode        `json:"type"`
	Results []searchResultResponse `json:"results"`
	// Best is the TMDB id of the closest match, omitted when no candidate
	// is a plausible match for the query.
	Best int64 `json:"best,omitempty"`
}

// createDraftRequest is the request body for POST /drafts.
type createDraftRequest struct {
	TMDBID int64  `json:"tmdb_id"`
	Type   string `json:"type"`
}

// setEntryRequest is the request body for PUT /drafts/{id}/entries.
type setEntryRequest struct {
	Position streamlink.PositionKey `json:"position"`
	URL      string                 `json:"url"`
}

// reportResponse wraps a validation report with its counts.
type reportResponse struct {
	*streamlink.Report
	Summary streamlink.Summary `json:"summary"`
}

func newReportResponse(rep *streamlink.Report) *reportResponse {
	if rep == nil {
		return nil
	}
	return &reportResponse{Report: rep, Summary: rep.Summary()}
}

// draftResponse is the API representation of a draft.
type draftResponse struct {
	ID      string             `json:"id"`
	State   draft.State        `json:"state"`
	Title   *draft.Title       `json:"title,omitempty"`
	Entries []draft.LiveStatus `json:"entries"`
	Report  *reportResponse    `json:"report,omitempty"`
}

// generateResponse is the response for generate and confirm.
type generateResponse struct {
	HTML   string          `json:"html,omitempty"`
	Report *reportResponse `json:"report,omitempty"`
}

// checkRequest is the request body for POST /check.
type checkRequest struct {
	URLs []string `json:"urls"`
	Mode string   `json:"mode,omitempty"`
}

// checkResult is the verdict for one submitted URL.
type checkResult struct {
	Position streamlink.PositionKey `json:"position"`
	Input    string                 `json:"input"`
	URL      string                 `json:"url"`
	Verdict  streamlink.Verdict     `json:"verdict"`

	Duplicates []streamlink.PositionKey `json:"duplicates,omitempty"`
}

// checkResponse is the response for POST /check.
type checkResponse struct {
	Results []checkResult   `json:"results"`
	Report  *reportResponse `json:"report"`
}

// titleResponse is the API representation of a saved title.
type titleResponse struct {
	ID        int64           `json:"id"`
	TMDBID    int64           `json:"tmdb_id"`
	Type      streamlink.Mode `json:"type"`
	Title     string          `json:"title"`
	Year      int             `json:"year,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// linkResponse is one saved link.
type linkResponse struct {
	Position streamlink.PositionKey `json:"position"`
	URL      string                 `json:"url"`
}

// libraryTitleResponse is the response for GET /library/{id}.
type libraryTitleResponse struct {
	titleResponse
	Links []linkResponse `json:"links"`
}

// listTitlesResponse is the response for GET /library.
type listTitlesResponse struct {
	Items  []titleResponse `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// statusResponse is the response for GET /status.
type statusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Drafts  int    `json:"drafts"`
	Library string `json:"library"`
}
