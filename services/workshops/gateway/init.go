package gateway

import (
	httpclient "github.com/karhabty/admin-gateway/internal/pkg/http"
)

// WorkshopGW talks to the marketplace API for workshop locations
type WorkshopGW struct {
	api *httpclient.Client
}

// NewWorkshopGW creates a workshop gateway
func NewWorkshopGW(api *httpclient.Client) *WorkshopGW {
	return &WorkshopGW{api: api}
}
