package gateway

import (
	httpclient "github.com/karhabty/admin-gateway/internal/pkg/http"
)

// CatalogGW talks to the marketplace API for the service-type catalog
type CatalogGW struct {
	api *httpclient.Client
}

// NewCatalogGW creates a catalog gateway
func NewCatalogGW(api *httpclient.Client) *CatalogGW {
	return &CatalogGW{api: api}
}
