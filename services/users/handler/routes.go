package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/karhabty/admin-gateway/internal/pkg/middleware"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/services/users/handler/http"
)

// Handler wires the user endpoints into the admin API
type Handler struct {
	userHandler *http.UserHandler
	cfg         *models.Config
}

// NewHandler creates the user service handler
func NewHandler(userHandler *http.UserHandler, cfg *models.Config) *Handler {
	return &Handler{
		userHandler: userHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the user routes under JWT auth
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/users", middleware.JWTAuthMiddleware(h.cfg.JWT))

	g.GET("", h.userHandler.ListUsers)
	g.POST("", h.userHandler.CreateUser)
	g.PATCH("/:id", h.userHandler.UpdateUser)
	g.POST("/batch-delete", h.userHandler.BatchDeleteUsers)
	g.PUT("/selection", h.userHandler.UpdateSelection)
	g.GET("/export", h.userHandler.ExportUsers)
}
