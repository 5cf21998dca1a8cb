package catalog

import (
	"context"

	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/karhabty/admin-gateway/services/catalog CatalogGW

// CatalogGW defines the upstream calls for the service-type catalog
type CatalogGW interface {
	List(ctx context.Context, q collection.Query) (collection.Page[models.ServiceType], error)
	Get(ctx context.Context, id string) (models.ServiceType, error)
	Create(ctx context.Context, input models.ServiceType) (models.ServiceType, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (models.ServiceType, error)
	Delete(ctx context.Context, id string) error
}
