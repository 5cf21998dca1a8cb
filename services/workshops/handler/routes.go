package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/karhabty/admin-gateway/internal/pkg/middleware"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/services/workshops/handler/http"
)

// Handler wires the workshop endpoints into the admin API
type Handler struct {
	workshopHandler *http.WorkshopHandler
	cfg             *models.Config
}

// NewHandler creates the workshop service handler
func NewHandler(workshopHandler *http.WorkshopHandler, cfg *models.Config) *Handler {
	return &Handler{
		workshopHandler: workshopHandler,
		cfg:             cfg,
	}
}

// RegisterRoutes registers the workshop routes under JWT auth
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/workshops", middleware.JWTAuthMiddleware(h.cfg.JWT))

	g.GET("", h.workshopHandler.ListWorkshops)
	g.POST("", h.workshopHandler.CreateWorkshop)
	g.PATCH("/:id", h.workshopHandler.UpdateWorkshop)
	g.POST("/batch-delete", h.workshopHandler.BatchDeleteWorkshops)
	g.GET("/nearby", h.workshopHandler.NearbyWorkshops)
	g.POST("/services/bulk-adjust", h.workshopHandler.BulkAdjustPrices)
	g.PUT("/selection", h.workshopHandler.UpdateSelection)
	g.GET("/export", h.workshopHandler.ExportWorkshops)
}
