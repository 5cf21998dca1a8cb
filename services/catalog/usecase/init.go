package usecase

import (
	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/services/catalog"
)

// CatalogUC implements the service-type catalog usecase on top of one
// collection controller instance
type CatalogUC struct {
	gw   catalog.CatalogGW
	ctrl *collection.Controller[models.ServiceType]
}

// NewCatalogUC creates a catalog usecase
func NewCatalogUC(gw catalog.CatalogGW) *CatalogUC {
	ctrl := collection.New(collection.Config[models.ServiceType]{
		Gateway:        gw,
		ValidateCreate: validateNewServiceType,
		DefaultFilters: map[string]string{
			"category": "all",
			"active":   "all",
			"search":   "",
		},
	})

	return &CatalogUC{
		gw:   gw,
		ctrl: ctrl,
	}
}
