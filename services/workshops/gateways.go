package workshops

import (
	"context"

	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/karhabty/admin-gateway/services/workshops WorkshopGW

// WorkshopGW defines the upstream calls the workshop usecase depends on. It
// is a superset of collection.Gateway[models.Workshop].
type WorkshopGW interface {
	List(ctx context.Context, q collection.Query) (collection.Page[models.Workshop], error)
	Get(ctx context.Context, id string) (models.Workshop, error)
	Create(ctx context.Context, input models.Workshop) (models.Workshop, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (models.Workshop, error)
	Delete(ctx context.Context, id string) error

	// AdjustPrices applies a percentage change to every service price of one
	// workshop
	AdjustPrices(ctx context.Context, id string, percent float64) error
}
