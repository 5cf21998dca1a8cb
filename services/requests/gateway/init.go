package gateway

import (
	httpclient "github.com/karhabty/admin-gateway/internal/pkg/http"
)

// RequestGW talks to the marketplace API for service requests
type RequestGW struct {
	api *httpclient.Client
}

// NewRequestGW creates a service-request gateway
func NewRequestGW(api *httpclient.Client) *RequestGW {
	return &RequestGW{api: api}
}
