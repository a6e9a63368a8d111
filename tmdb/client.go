package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Candidate is a single search result, not yet persisted.
type Candidate struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
}

// Year returns the release year taken from the first four characters of
// ReleaseDate, or 0 when the date is missing or malformed.
func (c Candidate) Year() int {
	if len(c.ReleaseDate) < 4 {
		return 0
	}
	y, err := strconv.Atoi(c.ReleaseDate[:4])
	if err != nil || y < 1000 {
		return 0
	}
	return y
}

// searchResponse is the subset of the TMDB search payload we consume.
// Results is a pointer so a missing field can be told apart from an empty list.
type searchResponse struct {
	Results *[]Candidate `json:"results"`
}

// Searcher looks up movie candidates by free-text title.
type Searcher interface {
	SearchMovie(ctx context.Context, query string) ([]Candidate, error)
}

// Client issues authenticated requests against the TMDB v3 API.
type Client struct {
	token      string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

var _ Searcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. The client is used as
// given; WithTimeout does not modify it.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the overall per-request timeout of the default client.
// It has no effect when WithHTTPClient is also given.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New creates a TMDB client. token is the v4 read access token; a leading
// "Bearer " is accepted and stripped.
func New(token, baseURL string, opts ...Option) (*Client, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return nil, errors.New("tmdb: api token required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb: base url required")
	}

	c := &Client{
		token:   token,
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   5 * time.Second,
				ResponseHeaderTimeout: 10 * time.Second,
				MaxIdleConnsPerHost:   4,
			},
			Timeout: c.timeout,
		}
	}
	return c, nil
}

// SearchMovie performs a single movie search and returns the provider's
// results list as-is. There is no retry and no pagination.
func (c *Client) SearchMovie(ctx context.Context, query string) ([]Candidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("tmdb: query must not be empty")
	}

	endpoint, err := url.Parse(c.baseURL + "/search/movie")
	if err != nil {
		return nil, fmt.Errorf("tmdb: parse url: %w", err)
	}
	params := url.Values{}
	params.Set("query", query)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("tmdb: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Op: "search", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Drain a little of the body so the message is useful in logs.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &UpstreamError{
			Op:     "search",
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(snippet))),
		}
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &UpstreamError{Op: "search", Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if payload.Results == nil {
		return nil, &UpstreamError{Op: "search", Status: resp.StatusCode, Err: errors.New("response has no results field")}
	}
	return *payload.Results, nil
}
