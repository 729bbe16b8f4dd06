package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/streamgen/pkg/streamlink"
	"github.com/vmunix/streamgen/pkg/titlematch"
)

func TestClientStatus_Success(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/status").
		ExpectGET().
		RespondJSON(StatusResponse{Status: "ok", Version: "1.0.0", Drafts: 2, Library: "ok"}).
		Build()
	defer srv.Close()

	status, err := NewClient(srv.URL).Status()
	require.NoError(t, err)
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "1.0.0", status.Version)
	assert.Equal(t, 2, status.Drafts)
}

func TestClientStatus_ServerError(t *testing.T) {
	srv := newMockServer(t).
		RespondError(http.StatusInternalServerError, "internal server error").
		Build()
	defer srv.Close()

	_, err := NewClient(srv.URL).Status()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "internal server error")
}

func TestClientStatus_ConnectionError(t *testing.T) {
	srv := newMockServer(t).Build()
	srv.Close()

	_, err := NewClient(srv.URL).Status()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestClientSearch(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/search").
		ExpectGET().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "la casa de papel", r.URL.Query().Get("q"))
			assert.Equal(t, "series", r.URL.Query().Get("type"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"query":"la casa de papel","type":"series","results":[
				{"tmdb_id":71446,"title":"La casa de papel","year":2017,"score":1,"confidence":"high"}]}`))
		}).
		Build()
	defer srv.Close()

	resp, err := NewClient(srv.URL).Search("la casa de papel", streamlink.ModeSeries)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, int64(71446), resp.Results[0].TMDBID)
	assert.Equal(t, titlematch.ConfidenceHigh, resp.Results[0].Confidence)
	assert.Equal(t, streamlink.ModeSeries, resp.Type)
}

func TestClientCheck(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/check").
		ExpectPOST().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, []any{"streamwish.to/e/abc123"}, body["urls"])
			assert.Equal(t, "movie", body["mode"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"results":[{"position":{"option":1},"input":"streamwish.to/e/abc123",
				"url":"https://streamwish.to/e/abc123","verdict":"valid"}],
				"report":{"mode":"movie","invalid":[],"empty":[],"duplicates":[],"total":1,
				"summary":{"total":1,"valid":1,"invalid":0,"empty":0,"duplicates":0}}}`))
		}).
		Build()
	defer srv.Close()

	resp, err := NewClient(srv.URL).Check([]string{"streamwish.to/e/abc123"}, streamlink.ModeMovie)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, streamlink.Valid, resp.Results[0].Verdict)
	assert.Equal(t, streamlink.OptionKey(1), resp.Results[0].Position)
	require.NotNil(t, resp.Report)
	assert.Equal(t, 1, resp.Report.Summary.Valid)
}

func TestStatusCommand(t *testing.T) {
	srv := newMockServer(t).
		RespondJSON(StatusResponse{Status: "degraded", Version: "0.3.0", Library: "disabled"}).
		Build()
	defer srv.Close()
	defer withServerURL(srv.URL)()

	out, err := runCLI(t, "status", "--server", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "streamgend v0.3.0")
	assert.Contains(t, out, "Status: degraded")
	assert.Contains(t, out, "Library:     disabled")
}

func TestSearchCommand_NoResults(t *testing.T) {
	srv := newMockServer(t).
		RespondJSON(SearchResponse{Query: "zzz", Type: streamlink.ModeMovie, Results: []SearchResult{}}).
		Build()
	defer srv.Close()
	defer withServerURL(srv.URL)()

	out, err := runCLI(t, "search", "--server", srv.URL, "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, `No results for "zzz"`)
}

func TestSearchCommand_InvalidType(t *testing.T) {
	_, err := runCLI(t, "search", "--type", "anime", "dune")
	require.Error(t, err)
}

func TestPrintSearchResults_MarksBest(t *testing.T) {
	var buf bytes.Buffer
	printSearchResults(&buf, &SearchResponse{
		Query: "dune",
		Type:  streamlink.ModeMovie,
		Best:  438631,
		Results: []SearchResult{
			{TMDBID: 438631, Title: "Dune", Year: 2021, Confidence: titlematch.ConfidenceHigh},
			{TMDBID: 841, Title: "Dune", Year: 1984, Confidence: titlematch.ConfidenceHigh},
		},
	})
	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.True(t, strings.HasPrefix(lines[2], "* 1. Dune"), lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "  2. Dune"), lines[3])
	assert.Contains(t, buf.String(), "* closest match")
}
