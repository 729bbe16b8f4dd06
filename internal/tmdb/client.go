package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org"
	defaultCacheTTL = 24 * time.Hour
	defaultLanguage = "es-MX"

	// TMDB allows roughly 40 requests per 10 seconds per key.
	defaultRequestsPerSecond = 4
	defaultBurst             = 10

	maxSeasonFetches = 4
)

// ErrNotFound is returned when a movie, series or season doesn't exist in TMDB.
var ErrNotFound = errors.New("not found in tmdb")

// Client is a TMDB API client.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
	cache      *cache
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithCacheTTL sets the cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = newCache(ttl)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLanguage sets the metadata language, e.g. "es-MX" or "en-US".
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.language = lang
	}
}

// WithRateLimit caps outbound requests. A non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		baseURL:  defaultBaseURL,
		language: defaultLanguage,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache:   newCache(defaultCacheTTL),
		limiter: rate.NewLimiter(defaultRequestsPerSecond, defaultBurst),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Language returns the configured metadata language.
func (c *Client) Language() string { return c.language }

// PruneCache drops expired cache entries.
func (c *Client) PruneCache() int { return c.cache.prune() }

// SearchMovies searches movies by title.
func (c *Client) SearchMovies(ctx context.Context, query string) ([]SearchResult, error) {
	return c.search(ctx, "/3/search/movie", query)
}

// SearchSeries searches TV series by name.
func (c *Client) SearchSeries(ctx context.Context, query string) ([]SearchResult, error) {
	return c.search(ctx, "/3/search/tv", query)
}

func (c *Client) search(ctx context.Context, path, query string) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")

	var resp searchResponse
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// GetMovie fetches movie metadata by TMDB ID.
func (c *Client) GetMovie(ctx context.Context, tmdbID int64) (*Movie, error) {
	var movie Movie
	if err := c.get(ctx, fmt.Sprintf("/3/movie/%d", tmdbID), nil, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetSeries fetches series metadata, including its season list.
func (c *Client) GetSeries(ctx context.Context, tmdbID int64) (*Series, error) {
	var series Series
	if err := c.get(ctx, fmt.Sprintf("/3/tv/%d", tmdbID), nil, &series); err != nil {
		return nil, err
	}
	return &series, nil
}

// GetSeason fetches one season with its episodes.
func (c *Client) GetSeason(ctx context.Context, tmdbID int64, season int) (*Season, error) {
	var s Season
	if err := c.get(ctx, fmt.Sprintf("/3/tv/%d/season/%d", tmdbID, season), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetSeasons fetches several seasons concurrently. Results follow the order
// of numbers; the first failure cancels the rest.
func (c *Client) GetSeasons(ctx context.Context, tmdbID int64, numbers []int) ([]*Season, error) {
	out := make([]*Season, len(numbers))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxSeasonFetches)

	for i, n := range numbers {
		g.Go(func() error {
			s, err := c.GetSeason(ctx, tmdbID, n)
			if err != nil {
				return fmt.Errorf("season %d: %w", n, err)
			}
			out[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, dst any) error {
	if params == nil {
		params = url.Values{}
	}
	if c.language != "" {
		params.Set("language", c.language)
	}

	key := path + "?" + params.Encode()
	if body, ok := c.cache.get(key); ok {
		return decode(body, dst)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	params.Set("api_key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TMDB API error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := decode(body, dst); err != nil {
		return err
	}

	c.cache.set(key, body)
	return nil
}

func decode(body []byte, dst any) error {
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
