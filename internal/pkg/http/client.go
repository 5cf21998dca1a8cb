package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/karhabty/admin-gateway/internal/pkg/apierr"
	"github.com/karhabty/admin-gateway/internal/pkg/circuitbreaker"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/internal/pkg/retry"
)

const (
	// DefaultTimeout for upstream requests
	DefaultTimeout = 10 * time.Second
	// APIKeyHeader carries the marketplace API key
	APIKeyHeader = "X-API-Key"
	// maxErrorBody caps how much of an upstream error body is kept
	maxErrorBody = 512
)

// ListParams is the single place where the gateway's 1-based page/pageSize
// view is converted to the upstream limit/offset convention. Nothing else in
// the codebase builds pagination query parameters.
type ListParams struct {
	Page     int
	PageSize int
	Filters  map[string]string
}

// Values renders the params as an upstream query string
func (p ListParams) Values() url.Values {
	page := p.Page
	if page < 1 {
		page = 1
	}
	size := p.PageSize
	if size < 1 {
		size = 20
	}

	v := url.Values{}
	v.Set("limit", strconv.Itoa(size))
	v.Set("offset", strconv.Itoa((page-1)*size))
	for key, val := range p.Filters {
		if val != "" && val != "all" {
			v.Set(key, val)
		}
	}
	return v
}

// Client talks to the upstream marketplace API. Every request carries the
// API key and a bearer token from the token source. Idempotent reads are
// retried with backoff; all calls share one circuit breaker.
type Client struct {
	baseURL    string
	apiKey     string
	tokens     TokenSource
	httpClient *nethttp.Client
	retrier    *retry.Retrier
	breaker    *circuitbreaker.CircuitBreaker
}

// NewClient creates an upstream API client
func NewClient(cfg models.MarketplaceConfig, tokens TokenSource) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.RetryableFunc = isRetryable

	breakerCfg := circuitbreaker.DefaultConfig("marketplace-api")
	breakerCfg.IsFailure = isBreakerFailure

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		tokens:     tokens,
		httpClient: &nethttp.Client{Timeout: timeout},
		retrier:    retry.New(retryCfg),
		breaker:    circuitbreaker.New(breakerCfg),
	}
}

// isRetryable retries network failures and 5xx responses only; a 4xx will
// not get better by asking again.
func isRetryable(err error) bool {
	e, ok := apierr.AsError(err)
	if !ok {
		return true
	}
	switch e.Kind {
	case apierr.KindNetwork:
		return true
	case apierr.KindUpstream:
		return e.Status >= 500
	default:
		return false
	}
}

// isBreakerFailure counts network errors and 5xx as breaker failures; 4xx
// means the upstream is healthy and answering.
func isBreakerFailure(err error) bool {
	if err == nil {
		return false
	}
	e, ok := apierr.AsError(err)
	if !ok {
		return true
	}
	return e.Kind == apierr.KindNetwork || (e.Kind == apierr.KindUpstream && e.Status >= 500)
}

// Get performs a GET request and decodes the JSON response into out
func (c *Client) Get(ctx context.Context, path string, params url.Values, out interface{}) error {
	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			return c.do(ctx, nethttp.MethodGet, path, params, nil, out)
		})
	})
}

// Post performs a POST request with a JSON body
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.do(ctx, nethttp.MethodPost, path, nil, body, out)
	})
}

// Put performs a PUT request with a JSON body
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.do(ctx, nethttp.MethodPut, path, nil, body, out)
	})
}

// Patch performs a PATCH request with a JSON body
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.do(ctx, nethttp.MethodPatch, path, nil, body, out)
	})
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.do(ctx, nethttp.MethodDelete, path, nil, nil, nil)
	})
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out interface{}) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return apierr.Wrap(apierr.KindNetwork, "failed to obtain identity token", err)
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apierr.Wrap(apierr.KindDecode, "failed to marshal request body", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return apierr.Wrap(apierr.KindNetwork, "failed to create request", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(APIKeyHeader, c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return apierr.Wrap(apierr.KindNetwork, fmt.Sprintf("%s %s failed", method, path), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierr.Wrap(apierr.KindNetwork, "failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := string(respBody)
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return apierr.Upstream(resp.StatusCode, msg)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return apierr.Wrap(apierr.KindDecode, fmt.Sprintf("failed to decode %s %s response", method, path), err)
	}

	return nil
}
