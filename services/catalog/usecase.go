package catalog

import (
	"context"

	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/karhabty/admin-gateway/services/catalog CatalogUC

// CatalogUC represents the service-type catalog usecase interface
type CatalogUC interface {
	ListServiceTypes(ctx context.Context, q collection.Query) (collection.Snapshot[models.ServiceType], error)
	CreateServiceType(ctx context.Context, input models.ServiceType) (models.ServiceType, error)
	UpdateServiceType(ctx context.Context, id string, input models.ServiceType) (models.ServiceType, error)
	DeleteServiceTypes(ctx context.Context, ids []string) error

	SelectAllServiceTypes(checked bool) []string
	ToggleServiceType(id string) []string

	ExportServiceTypes(ctx context.Context) (header []string, rows [][]string, err error)
}
