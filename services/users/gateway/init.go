package gateway

import (
	httpclient "github.com/karhabty/admin-gateway/internal/pkg/http"
)

// UserGW talks to the marketplace API for user profiles and to the identity
// provider for the first phase of registration.
type UserGW struct {
	api      *httpclient.Client
	identity *httpclient.Client
}

// NewUserGW creates a user gateway
func NewUserGW(api, identity *httpclient.Client) *UserGW {
	return &UserGW{
		api:      api,
		identity: identity,
	}
}
