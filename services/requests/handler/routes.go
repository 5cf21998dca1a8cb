package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/karhabty/admin-gateway/internal/pkg/middleware"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/services/requests/handler/http"
)

// Handler wires the service-request endpoints into the admin API
type Handler struct {
	requestHandler *http.RequestHandler
	cfg            *models.Config
}

// NewHandler creates the service-request handler
func NewHandler(requestHandler *http.RequestHandler, cfg *models.Config) *Handler {
	return &Handler{
		requestHandler: requestHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the service-request routes under JWT auth.
// There is deliberately no POST: requests originate in the customer app.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/services/requests", middleware.JWTAuthMiddleware(h.cfg.JWT))

	g.GET("", h.requestHandler.ListRequests)
	g.PATCH("/:id", h.requestHandler.UpdateRequest)
	g.POST("/batch-delete", h.requestHandler.BatchDeleteRequests)
	g.PUT("/selection", h.requestHandler.UpdateSelection)
	g.GET("/export", h.requestHandler.ExportRequests)
}
