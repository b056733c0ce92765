// Package supabase talks to the Supabase auth API using the project's
// service role key.
package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

var (
	// ErrInvalidToken is returned when Supabase rejects the access token
	ErrInvalidToken = errors.New("invalid token")
)

// User is the subset of the Supabase auth user we pass on to clients.
type User struct {
	ID           uuid.UUID      `json:"id"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone,omitempty"`
	Role         string         `json:"role"`
	Aud          string         `json:"aud"`
	CreatedAt    time.Time      `json:"created_at"`
	LastSignInAt *time.Time     `json:"last_sign_in_at,omitempty"`
	AppMetadata  map[string]any `json:"app_metadata,omitempty"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

type Client struct {
	http       *http.Client
	baseURL    *url.URL
	serviceKey string
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func New(baseURL, serviceKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("missing SUPABASE_URL")
	}
	if serviceKey == "" {
		return nil, errors.New("missing SUPABASE_SERVICE_ROLE_KEY")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse supabase url: %w", err)
	}
	c := &Client{
		http:       http.DefaultClient,
		baseURL:    u,
		serviceKey: serviceKey,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// GetUser resolves a user access token to the user it was issued for.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	if accessToken == "" {
		return nil, ErrInvalidToken
	}

	// the user's token rides on an oauth2 transport layered over our client
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	hc := oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, c.http), src)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.JoinPath("auth", "v1", "user").String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Accept", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase get user: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrInvalidToken
	case resp.StatusCode >= 300:
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("supabase get user: status %d: %s", resp.StatusCode, string(b))
	}

	var u User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("decode supabase user: %w", err)
	}
	if u.ID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return &u, nil
}
