package usecase

import (
	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/services/workshops"
)

// adjustWorkers caps parallel upstream calls of a bulk price adjustment
const adjustWorkers = 4

// WorkshopUC implements the workshop admin usecase on top of one collection
// controller instance
type WorkshopUC struct {
	gw   workshops.WorkshopGW
	ctrl *collection.Controller[models.Workshop]
}

// NewWorkshopUC creates a workshop usecase
func NewWorkshopUC(gw workshops.WorkshopGW) *WorkshopUC {
	ctrl := collection.New(collection.Config[models.Workshop]{
		Gateway:        gw,
		ValidateCreate: validateNewWorkshop,
		DefaultFilters: map[string]string{
			"approval_status":  "all",
			"operating_status": "all",
			"search":           "",
		},
	})

	return &WorkshopUC{
		gw:   gw,
		ctrl: ctrl,
	}
}
