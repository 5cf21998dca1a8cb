package workshops

import (
	"context"

	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/karhabty/admin-gateway/services/workshops WorkshopUC

// WorkshopUC represents the workshop admin usecase interface
type WorkshopUC interface {
	ListWorkshops(ctx context.Context, q collection.Query) (collection.Snapshot[models.Workshop], error)
	CreateWorkshop(ctx context.Context, input models.Workshop) (models.Workshop, error)
	UpdateWorkshop(ctx context.Context, id string, input models.Workshop) (models.Workshop, error)
	DeleteWorkshops(ctx context.Context, ids []string) error

	// geospatial lookup around a point
	NearbyWorkshops(ctx context.Context, lat, lng, radiusKm float64) ([]models.Workshop, error)

	// percentage price adjustment across many workshops' offered services
	AdjustServicePrices(ctx context.Context, ids []string, percent float64) error

	SelectAllWorkshops(checked bool) []string
	ToggleWorkshop(id string) []string

	ExportWorkshops(ctx context.Context) (header []string, rows [][]string, err error)
}
