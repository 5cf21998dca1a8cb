package usecase

import (
	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/services/users"
)

// UserUC implements the user admin usecase on top of one collection
// controller instance
type UserUC struct {
	gw   users.UserGW
	ctrl *collection.Controller[models.User]
}

// NewUserUC creates a user usecase
func NewUserUC(gw users.UserGW) *UserUC {
	ctrl := collection.New(collection.Config[models.User]{
		Gateway:        gw,
		ValidateCreate: validateNewUser,
		DefaultFilters: map[string]string{
			"role":   "all",
			"status": "all",
			"search": "",
		},
	})

	return &UserUC{
		gw:   gw,
		ctrl: ctrl,
	}
}
