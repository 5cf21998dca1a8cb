package requests

import (
	"context"

	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/karhabty/admin-gateway/services/requests RequestUC

// RequestUC represents the service-request admin usecase interface.
// Requests are created by the customer app; the admin lists, edits and
// removes them.
type RequestUC interface {
	ListRequests(ctx context.Context, q collection.Query) (collection.Snapshot[models.ServiceRequest], error)
	UpdateRequest(ctx context.Context, id string, input models.ServiceRequest) (models.ServiceRequest, error)
	DeleteRequests(ctx context.Context, ids []string) error

	SelectAllRequests(checked bool) []string
	ToggleRequest(id string) []string

	ExportRequests(ctx context.Context) (header []string, rows [][]string, err error)
}
