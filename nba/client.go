// Package nba is a small client for the NBA stats service. Every call is
// read-through cached: the shared cache is consulted first and populated
// after a successful fetch.
package nba

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/briangreenhill/courtside/cache"
)

const (
	DefaultBaseURL = "https://api.balldontlie.io"
	DefaultSeason  = 2023
)

const (
	// maxBodySize caps how much of an upstream response is read
	maxBodySize = 4 << 20
	// maxErrorBody caps how much of a failed response is kept on UpstreamError
	maxErrorBody = 512
)

// cache key prefixes, one per upstream resource
const (
	prefixPlayerSearch = "player_search"
	prefixPlayerStats  = "player_stats"
	prefixGames        = "games"
)

type Client struct {
	http    *http.Client
	baseURL *url.URL
	apiKey  string
	season  int

	players *cache.Typed[[]Player]
	stats   *cache.Typed[*PlayerStats]
	games   *cache.Typed[[]Game]
}

type Option func(*options)

type options struct {
	http    *http.Client
	baseURL string
	apiKey  string
	season  int
	ttl     time.Duration
}

func WithHTTPClient(h *http.Client) Option {
	return func(o *options) { o.http = h }
}
func WithBaseURL(raw string) Option {
	return func(o *options) { o.baseURL = raw }
}
func WithAPIKey(key string) Option {
	return func(o *options) { o.apiKey = key }
}
func WithSeason(season int) Option {
	return func(o *options) { o.season = season }
}

// WithTTL sets how long fetched results stay cached. Zero uses the cache's
// own default.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) { o.ttl = ttl }
}

// New builds a client backed by store. The store is shared across requests
// and owned by the caller.
func New(store cache.Cache, opts ...Option) (*Client, error) {
	if store == nil {
		return nil, errors.New("cache required")
	}
	o := options{
		http:    http.DefaultClient,
		baseURL: DefaultBaseURL,
		season:  DefaultSeason,
		ttl:     cache.DefaultTTL,
	}
	for _, opt := range opts {
		opt(&o)
	}

	u, err := url.Parse(o.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", o.baseURL)
	}

	return &Client{
		http:    o.http,
		baseURL: u,
		apiKey:  o.apiKey,
		season:  o.season,
		players: cache.NewTyped[[]Player](store, o.ttl),
		stats:   cache.NewTyped[*PlayerStats](store, o.ttl),
		games:   cache.NewTyped[[]Game](store, o.ttl),
	}, nil
}

// Season returns the season used for stats lookups.
func (c *Client) Season() int { return c.season }

func (c *Client) newReq(ctx context.Context, p string, q url.Values) (*http.Request, error) {
	u := *c.baseURL
	u.Path = path.Join(u.Path, p)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// getJSON issues a GET and decodes the body into out. op names the call in
// returned errors.
func (c *Client) getJSON(ctx context.Context, op, p string, q url.Values, out any) error {
	req, err := c.newReq(ctx, p, q)
	if err != nil {
		return &UpstreamError{Op: op, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &UpstreamError{Op: op, StatusCode: resp.StatusCode, Body: b}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return &UpstreamError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	if len(body) > maxBodySize {
		return &UpstreamError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("response larger than %d bytes", maxBodySize)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &ParseError{Op: op, Err: err}
	}
	return nil
}
