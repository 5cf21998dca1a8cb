package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/karhabty/admin-gateway/internal/pkg/middleware"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/services/catalog/handler/http"
)

// Handler wires the service-type catalog endpoints into the admin API
type Handler struct {
	serviceTypeHandler *http.ServiceTypeHandler
	cfg                *models.Config
}

// NewHandler creates the catalog service handler
func NewHandler(serviceTypeHandler *http.ServiceTypeHandler, cfg *models.Config) *Handler {
	return &Handler{
		serviceTypeHandler: serviceTypeHandler,
		cfg:                cfg,
	}
}

// RegisterRoutes registers the catalog routes under JWT auth
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/services/types", middleware.JWTAuthMiddleware(h.cfg.JWT))

	g.GET("", h.serviceTypeHandler.ListServiceTypes)
	g.POST("", h.serviceTypeHandler.CreateServiceType)
	g.PATCH("/:id", h.serviceTypeHandler.UpdateServiceType)
	g.POST("/batch-delete", h.serviceTypeHandler.BatchDeleteServiceTypes)
	g.PUT("/selection", h.serviceTypeHandler.UpdateSelection)
	g.GET("/export", h.serviceTypeHandler.ExportServiceTypes)
}
