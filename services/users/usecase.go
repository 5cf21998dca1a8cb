package users

import (
	"context"

	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/karhabty/admin-gateway/services/users UserUC

// UserUC represents the user admin usecase interface
type UserUC interface {
	ListUsers(ctx context.Context, q collection.Query) (collection.Snapshot[models.User], error)
	RegisterUser(ctx context.Context, input models.User) (models.User, error)
	UpdateUser(ctx context.Context, id string, input models.User) (models.User, error)
	DeleteUsers(ctx context.Context, ids []string) error

	// bulk-action selection
	SelectAllUsers(checked bool) []string
	ToggleUser(id string) []string

	// CSV export of the currently loaded, filtered list
	ExportUsers(ctx context.Context) (header []string, rows [][]string, err error)
}
