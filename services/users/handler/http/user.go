package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/internal/utils"
	"github.com/karhabty/admin-gateway/services/users"
)

// userFilterKeys are the filter fields the users list accepts
var userFilterKeys = []string{"role", "status", "search", "label"}

// UserHandler exposes the user collection over the admin API
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c echo.Context) error {
	q := utils.ParseListQuery(c, userFilterKeys...)

	snap, err := h.userUC.ListUsers(c.Request().Context(), q)
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "users retrieved", utils.ListPayload{
		Items:      snap.Items,
		Total:      snap.Total,
		TotalPages: snap.TotalPages,
		Page:       snap.Query.Page,
		PageSize:   snap.Query.PageSize,
		Filters:    snap.Query.Filters,
		Selected:   snap.Selected,
	})
}

// CreateUser handles POST /users, the two-phase registration
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input models.User
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	created, err := h.userUC.RegisterUser(c.Request().Context(), input)
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusCreated, "user registered", created)
}

// UpdateUser handles PATCH /users/:id
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var input models.User
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	updated, err := h.userUC.UpdateUser(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "user updated", updated)
}

// BatchDeleteUsers handles POST /users/batch-delete
func (h *UserHandler) BatchDeleteUsers(c echo.Context) error {
	var req utils.BatchDeleteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	if err := h.userUC.DeleteUsers(c.Request().Context(), req.IDs); err != nil {
		return utils.APIErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "users deleted", nil)
}

// UpdateSelection handles PUT /users/selection
func (h *UserHandler) UpdateSelection(c echo.Context) error {
	var req utils.SelectionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	var selected []string
	switch req.Action {
	case "all":
		selected = h.userUC.SelectAllUsers(true)
	case "none":
		selected = h.userUC.SelectAllUsers(false)
	case "toggle":
		if req.ID == "" {
			return utils.BadRequestResponse(c, "toggle requires an id")
		}
		selected = h.userUC.ToggleUser(req.ID)
	default:
		return utils.BadRequestResponse(c, "action must be all, none or toggle")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "selection updated", map[string]interface{}{
		"selected": selected,
	})
}

// ExportUsers handles GET /users/export
func (h *UserHandler) ExportUsers(c echo.Context) error {
	header, rows, err := h.userUC.ExportUsers(c.Request().Context())
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}
	return utils.CSVDownload(c, utils.ExportFilename("users"), header, rows)
}
