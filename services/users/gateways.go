package users

import (
	"context"

	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/karhabty/admin-gateway/services/users UserGW

// UserGW defines the upstream calls the user usecase depends on. It is a
// superset of collection.Gateway[models.User], so the same value drives the
// collection controller.
type UserGW interface {
	List(ctx context.Context, q collection.Query) (collection.Page[models.User], error)
	Get(ctx context.Context, id string) (models.User, error)
	Create(ctx context.Context, input models.User) (models.User, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (models.User, error)
	Delete(ctx context.Context, id string) error

	// identity provider, phase one of registration
	CreateIdentity(ctx context.Context, email, phone string) (string, error)
}
