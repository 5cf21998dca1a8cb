package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/internal/utils"
	"github.com/karhabty/admin-gateway/services/wallets"
)

// walletFilterKeys are the filter fields the wallets list accepts
var walletFilterKeys = []string{"status", "search", "currency"}

// transactionFilterKeys are the filter fields the ledger list accepts
var transactionFilterKeys = []string{"type", "status", "from", "to"}

// WalletHandler exposes wallets and their ledger over the admin API
type WalletHandler struct {
	walletUC wallets.WalletUC
}

// NewWalletHandler creates a wallet handler
func NewWalletHandler(walletUC wallets.WalletUC) *WalletHandler {
	return &WalletHandler{walletUC: walletUC}
}

// ListWallets handles GET /wallets
func (h *WalletHandler) ListWallets(c echo.Context) error {
	q := utils.ParseListQuery(c, walletFilterKeys...)

	snap, err := h.walletUC.ListWallets(c.Request().Context(), q)
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "wallets retrieved", utils.ListPayload{
		Items:      snap.Items,
		Total:      snap.Total,
		TotalPages: snap.TotalPages,
		Page:       snap.Query.Page,
		PageSize:   snap.Query.PageSize,
		Filters:    snap.Query.Filters,
		Selected:   snap.Selected,
	})
}

// GetWallet handles GET /wallets/:id
func (h *WalletHandler) GetWallet(c echo.Context) error {
	w, err := h.walletUC.GetWallet(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "wallet retrieved", w)
}

// statusChangeRequest is the body of PATCH /wallets/:id
type statusChangeRequest struct {
	Status models.WalletStatus `json:"status"`
}

// ChangeWalletStatus handles PATCH /wallets/:id
func (h *WalletHandler) ChangeWalletStatus(c echo.Context) error {
	var req statusChangeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	updated, err := h.walletUC.ChangeWalletStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "wallet status updated", updated)
}

// ListTransactions handles GET /wallets/:id/transactions and
// GET /wallets/transactions (all wallets)
func (h *WalletHandler) ListTransactions(c echo.Context) error {
	q := utils.ParseListQuery(c, transactionFilterKeys...)

	snap, err := h.walletUC.ListTransactions(c.Request().Context(), c.Param("id"), q)
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "transactions retrieved", utils.ListPayload{
		Items:      snap.Items,
		Total:      snap.Total,
		TotalPages: snap.TotalPages,
		Page:       snap.Query.Page,
		PageSize:   snap.Query.PageSize,
		Filters:    snap.Query.Filters,
		Selected:   snap.Selected,
	})
}

// UpdateSelection handles PUT /wallets/selection
func (h *WalletHandler) UpdateSelection(c echo.Context) error {
	var req utils.SelectionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	var selected []string
	switch req.Action {
	case "all":
		selected = h.walletUC.SelectAllWallets(true)
	case "none":
		selected = h.walletUC.SelectAllWallets(false)
	case "toggle":
		if req.ID == "" {
			return utils.BadRequestResponse(c, "toggle requires an id")
		}
		selected = h.walletUC.ToggleWallet(req.ID)
	default:
		return utils.BadRequestResponse(c, "action must be all, none or toggle")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "selection updated", map[string]interface{}{
		"selected": selected,
	})
}

// ExportWallets handles GET /wallets/export
func (h *WalletHandler) ExportWallets(c echo.Context) error {
	header, rows, err := h.walletUC.ExportWallets(c.Request().Context())
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}
	return utils.CSVDownload(c, utils.ExportFilename("wallets"), header, rows)
}
