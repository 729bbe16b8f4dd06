package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/vmunix/streamgen/internal/draft"
	"github.com/vmunix/streamgen/internal/library"
	"github.com/vmunix/streamgen/internal/snippet"
	"github.com/vmunix/streamgen/internal/tmdb"
	"github.com/vmunix/streamgen/pkg/streamlink"
	"github.com/vmunix/streamgen/pkg/titlematch"
)

// minQueryLen is the shortest query sent to TMDB.
const minQueryLen = 3

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	query := titlematch.NormalizeQuery(r.URL.Query().Get("q"))

	mode := streamlink.ModeMovie
	if t := queryString(r, "type"); t != nil {
		m, err := streamlink.ParseMode(*t)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_TYPE", err.Error())
			return
		}
		mode = m
	}

	resp := searchResponse{Query: query, Type: mode, Results: []searchResultResponse{}}
	if utf8.RuneCountInString(query) < minQueryLen {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	var (
		hits []tmdb.SearchResult
		err  error
	)
	if mode == streamlink.ModeSeries {
		hits, err = s.deps.Metadata.SearchSeries(r.Context(), query)
	} else {
		hits, err = s.deps.Metadata.SearchMovies(r.Context(), query)
	}
	if err != nil {
		s.log.Warn("tmdb search failed", "query", query, "type", mode, "error", err)
		writeError(w, http.StatusBadGateway, "TMDB_ERROR", err.Error())
		return
	}

	titles := make([]string, len(hits))
	for i, h := range hits {
		titles[i] = h.DisplayTitle()
	}
	if best := titlematch.Best(query, titles); best.Index >= 0 {
		resp.Best = hits[best.Index].ID
	}
	for _, m := range titlematch.Rank(query, titles) {
		h := hits[m.Index]
		resp.Results = append(resp.Results, searchResultResponse{
			TMDBID:     h.ID,
			Title:      m.Title,
			Year:       h.Year(),
			Overview:   h.Overview,
			PosterURL:  h.PosterURL("w500"),
			Score:      m.Score,
			Confidence: m.Confidence,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) createDraft(w http.ResponseWriter, r *http.Request) {
	var req createDraftRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if req.TMDBID <= 0 {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "tmdb_id is required")
		return
	}
	mode, err := streamlink.ParseMode(req.Type)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_TYPE", err.Error())
		return
	}

	title, err := s.lookupTitle(r.Context(), req.TMDBID, mode)
	if err != nil {
		if errors.Is(err, tmdb.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Title not found in TMDB")
			return
		}
		s.log.Warn("tmdb lookup failed", "tmdb_id", req.TMDBID, "type", mode, "error", err)
		writeError(w, http.StatusBadGateway, "TMDB_ERROR", err.Error())
		return
	}

	d := s.drafts.Create()
	d.Select(title, title.Layout(s.cfg.MovieOptions))
	s.preload(d, title)

	s.log.Info("draft created", "draft", d.ID(), "tmdb_id", title.TMDBID, "type", title.Mode, "title", title.Name)
	writeJSON(w, http.StatusCreated, draftToResponse(d))
}

// lookupTitle fetches a title and, for series, every regular season.
func (s *Server) lookupTitle(ctx context.Context, id int64, mode streamlink.Mode) (draft.Title, error) {
	if mode == streamlink.ModeMovie {
		m, err := s.deps.Metadata.GetMovie(ctx, id)
		if err != nil {
			return draft.Title{}, err
		}
		t := draft.Title{
			TMDBID:     m.ID,
			Mode:       mode,
			Name:       m.Title,
			Year:       m.Year(),
			Overview:   m.Overview,
			PosterPath: m.PosterPath,
			Runtime:    m.Runtime,
		}
		for _, g := range m.Genres {
			t.Genres = append(t.Genres, g.Name)
		}
		return t, nil
	}

	series, err := s.deps.Metadata.GetSeries(ctx, id)
	if err != nil {
		return draft.Title{}, err
	}
	t := draft.Title{
		TMDBID:     series.ID,
		Mode:       mode,
		Name:       series.Name,
		Year:       series.Year(),
		Overview:   series.Overview,
		PosterPath: series.PosterPath,
	}
	for _, g := range series.Genres {
		t.Genres = append(t.Genres, g.Name)
	}

	regular := series.RegularSeasons()
	numbers := make([]int, len(regular))
	for i, rs := range regular {
		numbers[i] = rs.SeasonNumber
	}
	seasons, err := s.deps.Metadata.GetSeasons(ctx, id, numbers)
	if err != nil {
		return draft.Title{}, fmt.Errorf("seasons of %d: %w", id, err)
	}
	for _, season := range seasons {
		ds := draft.Season{Number: season.SeasonNumber, Name: season.Name}
		for _, ep := range season.Episodes {
			ds.Episodes = append(ds.Episodes, draft.Episode{Number: ep.EpisodeNumber, Name: ep.Name})
		}
		t.Seasons = append(t.Seasons, ds)
	}
	return t, nil
}

// preload fills a fresh draft with the links saved on its last generation.
func (s *Server) preload(d *draft.Draft, title draft.Title) {
	if s.deps.Library == nil {
		return
	}
	saved, err := s.deps.Library.GetTitleByTMDB(title.TMDBID, title.Mode)
	if err != nil {
		if !errors.Is(err, library.ErrNotFound) {
			s.log.Warn("load saved title failed", "tmdb_id", title.TMDBID, "error", err)
		}
		return
	}
	links, err := s.deps.Library.ListLinks(saved.ID)
	if err != nil {
		s.log.Warn("load saved links failed", "title_id", saved.ID, "error", err)
		return
	}
	d.Preload(library.LinkMap(links))
	s.log.Debug("draft preloaded", "draft", d.ID(), "links", len(links))
}

func (s *Server) getDraft(w http.ResponseWriter, _ *http.Request, d *draft.Draft) {
	writeJSON(w, http.StatusOK, draftToResponse(d))
}

func draftToResponse(d *draft.Draft) draftResponse {
	resp := draftResponse{
		ID:      d.ID(),
		State:   d.State(),
		Entries: d.Statuses(),
		Report:  newReportResponse(d.Report()),
	}
	if t, ok := d.Title(); ok {
		resp.Title = &t
	}
	return resp
}

func (s *Server) setEntry(w http.ResponseWriter, r *http.Request, d *draft.Draft) {
	var req setEntryRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	st, err := d.Set(req.Position, req.URL)
	if err != nil {
		writeDraftError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) generateDraft(w http.ResponseWriter, r *http.Request, d *draft.Draft) {
	res, err := d.Generate(r.Context())
	if err != nil {
		s.log.Error("generate failed", "draft", d.ID(), "error", err)
		writeDraftError(w, err)
		return
	}
	if res.Blocked() {
		s.log.Info("generation blocked", "draft", d.ID(), "summary", res.Report.Summary())
		writeJSON(w, http.StatusConflict, generateResponse{Report: newReportResponse(res.Report)})
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{HTML: res.HTML})
}

func (s *Server) confirmDraft(w http.ResponseWriter, r *http.Request, d *draft.Draft) {
	res, err := d.Confirm(r.Context())
	if err != nil {
		writeDraftError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{HTML: res.HTML})
}

func (s *Server) cancelDraft(w http.ResponseWriter, _ *http.Request, d *draft.Draft) {
	if err := d.Cancel(); err != nil {
		writeDraftError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draftToResponse(d))
}

func (s *Server) deleteDraft(w http.ResponseWriter, r *http.Request) {
	if err := s.drafts.Delete(r.PathValue("id")); err != nil {
		writeError(w, http.StatusNotFound, "DRAFT_NOT_FOUND", "Draft not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeDraftError maps draft sentinels to status codes.
func writeDraftError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, draft.ErrUnknownPosition):
		writeError(w, http.StatusBadRequest, "UNKNOWN_POSITION", err.Error())
	case errors.Is(err, draft.ErrNoSelection):
		writeError(w, http.StatusConflict, "NO_SELECTION", err.Error())
	case errors.Is(err, draft.ErrNotBlocked):
		writeError(w, http.StatusConflict, "NOT_BLOCKED", err.Error())
	case errors.Is(err, draft.ErrBusy):
		writeError(w, http.StatusConflict, "BUSY", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "GENERATE_FAILED", err.Error())
	}
}

// generate renders the snippet and saves the link set. A failed save is
// logged; the snippet is still returned.
func (s *Server) generate(_ context.Context, title draft.Title, links map[streamlink.PositionKey]string) (string, error) {
	html, err := snippet.Render(snippet.Build(title, links))
	if err != nil {
		return "", err
	}

	if s.deps.Library != nil {
		saved := &library.Title{TMDBID: title.TMDBID, Type: title.Mode, Title: title.Name, Year: title.Year}
		if err := s.deps.Library.SaveGeneration(saved, links); err != nil {
			s.log.Warn("save generation failed", "tmdb_id", title.TMDBID, "error", err)
		}
	}
	s.log.Info("snippet generated", "tmdb_id", title.TMDBID, "type", title.Mode, "links", len(links))
	return html, nil
}

func (s *Server) check(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	mode := streamlink.ModeMovie
	if req.Mode != "" {
		m, err := streamlink.ParseMode(req.Mode)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_TYPE", err.Error())
			return
		}
		mode = m
	}

	entries := make([]streamlink.Entry, len(req.URLs))
	resp := checkResponse{Results: make([]checkResult, len(req.URLs))}
	for i, raw := range req.URLs {
		pos := streamlink.OptionKey(i + 1)
		if mode == streamlink.ModeSeries {
			pos = streamlink.EpisodeKey(1, i+1)
		}
		entries[i] = streamlink.Entry{Raw: raw, Position: pos}
	}
	for i, e := range entries {
		verdict, url := s.deps.Rules.Classify(e.Raw)
		res := checkResult{Position: e.Position, Input: e.Raw, URL: url, Verdict: verdict}
		if verdict == streamlink.Valid {
			res.Duplicates = s.deps.Rules.FindDuplicates(e.Position, url, entries)
		}
		resp.Results[i] = res
	}
	resp.Report = newReportResponse(s.deps.Rules.BuildReport(entries, mode))
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) listLibrary(w http.ResponseWriter, r *http.Request) {
	filter := library.TitleFilter{
		Query:  queryString(r, "q"),
		Limit:  queryInt(r, "limit", 50),
		Offset: queryInt(r, "offset", 0),
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		writeError(w, http.StatusBadRequest, "INVALID_PAGINATION", "limit and offset must be non-negative")
		return
	}
	if t := queryString(r, "type"); t != nil {
		mode, err := streamlink.ParseMode(*t)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_TYPE", err.Error())
			return
		}
		filter.Type = &mode
	}

	items, total, err := s.deps.Library.ListTitles(filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	resp := listTitlesResponse{
		Items:  make([]titleResponse, len(items)),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	for i, t := range items {
		resp.Items[i] = newTitleResponse(t)
	}
	writeJSON(w, http.StatusOK, resp)
}

func newTitleResponse(t *library.Title) titleResponse {
	return titleResponse{
		ID:        t.ID,
		TMDBID:    t.TMDBID,
		Type:      t.Type,
		Title:     t.Title,
		Year:      t.Year,
		UpdatedAt: t.UpdatedAt,
	}
}

func (s *Server) getLibraryTitle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	t, err := s.deps.Library.GetTitle(id)
	if errors.Is(err, library.ErrNotFound) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "title not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	links, err := s.deps.Library.ListLinks(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	resp := libraryTitleResponse{titleResponse: newTitleResponse(t), Links: make([]linkResponse, len(links))}
	for i, l := range links {
		resp.Links[i] = linkResponse{Position: l.Position, URL: l.URL}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) deleteLibraryTitle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	if err := s.deps.Library.DeleteTitle(id); err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getStatus(w http.ResponseWriter, _ *http.Request) {
	resp := statusResponse{
		Status:  "ok",
		Version: s.cfg.Version,
		Drafts:  s.drafts.Len(),
		Library: "disabled",
	}
	if s.deps.Library != nil {
		resp.Library = "ok"
		if err := s.deps.Library.Ping(); err != nil {
			resp.Status = "degraded"
			resp.Library = err.Error()
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
