package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/karhabty/admin-gateway/internal/pkg/middleware"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/services/wallets/handler/http"
)

// Handler wires the wallet endpoints into the admin API
type Handler struct {
	walletHandler *http.WalletHandler
	cfg           *models.Config
}

// NewHandler creates the wallet service handler
func NewHandler(walletHandler *http.WalletHandler, cfg *models.Config) *Handler {
	return &Handler{
		walletHandler: walletHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers the wallet routes under JWT auth. Wallets have no
// create or delete; the ledger is read only.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/wallets", middleware.JWTAuthMiddleware(h.cfg.JWT))

	g.GET("", h.walletHandler.ListWallets)
	g.GET("/export", h.walletHandler.ExportWallets)
	g.GET("/transactions", h.walletHandler.ListTransactions)
	g.PUT("/selection", h.walletHandler.UpdateSelection)
	g.GET("/:id", h.walletHandler.GetWallet)
	g.PATCH("/:id", h.walletHandler.ChangeWalletStatus)
	g.GET("/:id/transactions", h.walletHandler.ListTransactions)
}
