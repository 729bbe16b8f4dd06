package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/vmunix/streamgen/pkg/streamlink"
	"github.com/vmunix/streamgen/pkg/titlematch"
)

// Client wraps HTTP calls to the streamgend server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new streamgend API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) post(path string, body any, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

// API response types (mirror server types)

type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Drafts  int    `json:"drafts"`
	Library string `json:"library"`
}

type SearchResult struct {
	TMDBID     int64                 `json:"tmdb_id"`
	Title      string                `json:"title"`
	Year       int                   `json:"year,omitempty"`
	Overview   string                `json:"overview,omitempty"`
	PosterURL  string                `json:"poster_url,omitempty"`
	Score      float64               `json:"score"`
	Confidence titlematch.Confidence `json:"confidence"`
}

type SearchResponse struct {
	Query   string          `json:"query"`
	Type    streamlink.Mode `json:"type"`
	Results []SearchResult  `json:"results"`
	Best    int64           `json:"best,omitempty"`
}

// Status returns the server status.
func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search queries TMDB through the server.
func (c *Client) Search(query string, mode streamlink.Mode) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	if mode != "" {
		params.Set("type", string(mode))
	}

	var resp SearchResponse
	if err := c.get("/api/v1/search?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type CheckResult struct {
	Position streamlink.PositionKey `json:"position"`
	Input    string                 `json:"input"`
	URL      string                 `json:"url"`
	Verdict  streamlink.Verdict     `json:"verdict"`

	Duplicates []streamlink.PositionKey `json:"duplicates,omitempty"`
}

type ReportResponse struct {
	streamlink.Report
	Summary streamlink.Summary `json:"summary"`
}

type CheckResponse struct {
	Results []CheckResult   `json:"results"`
	Report  *ReportResponse `json:"report"`
}

// Check validates URLs on the server with its configured rules.
func (c *Client) Check(urls []string, mode streamlink.Mode) (*CheckResponse, error) {
	body := map[string]any{"urls": urls}
	if mode != "" {
		body["mode"] = mode
	}

	var resp CheckResponse
	if err := c.post("/api/v1/check", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
