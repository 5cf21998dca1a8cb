package usecase

import (
	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/services/requests"
)

// RequestUC implements the service-request admin usecase on top of one
// collection controller instance
type RequestUC struct {
	gw   requests.RequestGW
	ctrl *collection.Controller[models.ServiceRequest]
}

// NewRequestUC creates a service-request usecase
func NewRequestUC(gw requests.RequestGW) *RequestUC {
	ctrl := collection.New(collection.Config[models.ServiceRequest]{
		Gateway: gw,
		DefaultFilters: map[string]string{
			"status":   "all",
			"category": "all",
			"priority": "all",
			"search":   "",
		},
	})

	return &RequestUC{
		gw:   gw,
		ctrl: ctrl,
	}
}
