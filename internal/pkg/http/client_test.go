package http

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/karhabty/admin-gateway/internal/pkg/apierr"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func newTestClient(upstreamURL string) *Client {
	return NewClient(models.MarketplaceConfig{
		BaseURL: upstreamURL,
		APIKey:  "test-api-key",
		Timeout: 2,
	}, StaticTokenSource("test-token"))
}

func TestListParams_Values(t *testing.T) {
	p := ListParams{Page: 3, PageSize: 10, Filters: map[string]string{
		"role":   "customer",
		"status": "all", // "all" means unfiltered and must be dropped
		"q":      "",    // empty free text dropped too
	}}

	v := p.Values()

	assert.Equal(t, "10", v.Get("limit"))
	assert.Equal(t, "20", v.Get("offset"))
	assert.Equal(t, "customer", v.Get("role"))
	assert.False(t, v.Has("status"))
	assert.False(t, v.Has("q"))
}

func TestListParams_Defaults(t *testing.T) {
	v := ListParams{}.Values()

	assert.Equal(t, "20", v.Get("limit"))
	assert.Equal(t, "0", v.Get("offset"))
}

func TestGet_SetsAuthHeaders(t *testing.T) {
	var gotAuth, gotKey string
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get(APIKeyHeader)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	var out map[string]bool
	err := c.Get(context.Background(), "/users", nil, &out)

	assert.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "test-api-key", gotKey)
	assert.True(t, out["ok"])
}

func TestGet_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		nethttp.Error(w, "nope", nethttp.StatusForbidden)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	err := c.Get(context.Background(), "/users", nil, nil)

	e, ok := apierr.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, apierr.KindUpstream, e.Kind)
	assert.Equal(t, nethttp.StatusForbidden, e.Status)
}

func TestGet_NotFoundKind(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		nethttp.Error(w, "missing", nethttp.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	err := c.Get(context.Background(), "/users/42", nil, nil)

	assert.Equal(t, apierr.KindNotFound, apierr.KindOf(err))
}

func TestGet_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			nethttp.Error(w, "flaky", nethttp.StatusBadGateway)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	err := c.Get(context.Background(), "/workshops", nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestPost_DoesNotRetry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		atomic.AddInt32(&calls, 1)
		nethttp.Error(w, "down", nethttp.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	err := c.Post(context.Background(), "/users", map[string]string{"email": "a@b.c"}, nil)

	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGet_DecodeError(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte(`{"broken`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	var out map[string]any
	err := c.Get(context.Background(), "/users", nil, &out)

	assert.Equal(t, apierr.KindDecode, apierr.KindOf(err))
}

func TestDo_TokenSourceFailure(t *testing.T) {
	c := NewClient(models.MarketplaceConfig{BaseURL: "http://unreachable.invalid", APIKey: "k"},
		TokenFunc(func(ctx context.Context) (string, error) {
			return "", errors.New("identity provider down")
		}))

	err := c.Post(context.Background(), "/users", nil, nil)

	assert.Equal(t, apierr.KindNetwork, apierr.KindOf(err))
}

func TestCachedTokenSource(t *testing.T) {
	var fetches int32
	src := TokenFunc(func(ctx context.Context) (string, error) {
		atomic.AddInt32(&fetches, 1)
		return "tok", nil
	})

	cached := NewCachedTokenSource(src, time.Minute)
	for i := 0; i < 5; i++ {
		tok, err := cached.Token(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "tok", tok)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&fetches))
}
