package requests

import (
	"context"

	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/karhabty/admin-gateway/services/requests RequestGW

// RequestGW defines the upstream calls the request usecase depends on.
// Create exists only to satisfy the collection gateway shape; the upstream
// rejects admin-side creation and so does the implementation.
type RequestGW interface {
	List(ctx context.Context, q collection.Query) (collection.Page[models.ServiceRequest], error)
	Get(ctx context.Context, id string) (models.ServiceRequest, error)
	Create(ctx context.Context, input models.ServiceRequest) (models.ServiceRequest, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (models.ServiceRequest, error)
	Delete(ctx context.Context, id string) error
}
