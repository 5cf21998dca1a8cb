package http

import (
	"context"
	"sync"
	"time"
)

// TokenSource supplies the bearer token attached to every upstream request.
// The identity collaborator hands out opaque tokens; the gateway never
// inspects their contents.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource returns a fixed token. Used for service accounts and in
// tests.
type StaticTokenSource string

func (s StaticTokenSource) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

// TokenFunc adapts a function to the TokenSource interface
type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// IdentityTokenSource exchanges the identity API key for a short-lived
// service token. Wrap it in a CachedTokenSource so the exchange does not run
// on every upstream call.
type IdentityTokenSource struct {
	client *Client
}

// NewIdentityTokenSource creates a token source backed by the identity
// provider's token endpoint
func NewIdentityTokenSource(client *Client) *IdentityTokenSource {
	return &IdentityTokenSource{client: client}
}

type serviceTokenResponse struct {
	AccessToken string `json:"access_token"`
}

func (s *IdentityTokenSource) Token(ctx context.Context) (string, error) {
	var resp serviceTokenResponse
	if err := s.client.Post(ctx, "/oauth/token", map[string]string{
		"grant_type": "client_credentials",
	}, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// CachedTokenSource wraps another source and reuses its token until the
// refresh interval elapses, so a token fetch does not precede every request.
type CachedTokenSource struct {
	src     TokenSource
	refresh time.Duration

	mu      sync.Mutex
	token   string
	fetched time.Time
}

// NewCachedTokenSource creates a caching wrapper around src
func NewCachedTokenSource(src TokenSource, refresh time.Duration) *CachedTokenSource {
	if refresh <= 0 {
		refresh = 5 * time.Minute
	}
	return &CachedTokenSource{src: src, refresh: refresh}
}

func (c *CachedTokenSource) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Since(c.fetched) < c.refresh {
		return c.token, nil
	}

	token, err := c.src.Token(ctx)
	if err != nil {
		return "", err
	}

	c.token = token
	c.fetched = time.Now()
	return token, nil
}
