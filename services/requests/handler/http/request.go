package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/internal/utils"
	"github.com/karhabty/admin-gateway/services/requests"
)

// requestFilterKeys are the filter fields the requests list accepts
var requestFilterKeys = []string{"status", "category", "priority", "workshop_id", "search"}

// RequestHandler exposes the service-request collection over the admin API
type RequestHandler struct {
	requestUC requests.RequestUC
}

// NewRequestHandler creates a service-request handler
func NewRequestHandler(requestUC requests.RequestUC) *RequestHandler {
	return &RequestHandler{requestUC: requestUC}
}

// ListRequests handles GET /services/requests
func (h *RequestHandler) ListRequests(c echo.Context) error {
	q := utils.ParseListQuery(c, requestFilterKeys...)

	snap, err := h.requestUC.ListRequests(c.Request().Context(), q)
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "requests retrieved", utils.ListPayload{
		Items:      snap.Items,
		Total:      snap.Total,
		TotalPages: snap.TotalPages,
		Page:       snap.Query.Page,
		PageSize:   snap.Query.PageSize,
		Filters:    snap.Query.Filters,
		Selected:   snap.Selected,
	})
}

// UpdateRequest handles PATCH /services/requests/:id
func (h *RequestHandler) UpdateRequest(c echo.Context) error {
	var input models.ServiceRequest
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	updated, err := h.requestUC.UpdateRequest(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "request updated", updated)
}

// BatchDeleteRequests handles POST /services/requests/batch-delete
func (h *RequestHandler) BatchDeleteRequests(c echo.Context) error {
	var req utils.BatchDeleteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	if err := h.requestUC.DeleteRequests(c.Request().Context(), req.IDs); err != nil {
		return utils.APIErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "requests deleted", nil)
}

// UpdateSelection handles PUT /services/requests/selection
func (h *RequestHandler) UpdateSelection(c echo.Context) error {
	var req utils.SelectionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	var selected []string
	switch req.Action {
	case "all":
		selected = h.requestUC.SelectAllRequests(true)
	case "none":
		selected = h.requestUC.SelectAllRequests(false)
	case "toggle":
		if req.ID == "" {
			return utils.BadRequestResponse(c, "toggle requires an id")
		}
		selected = h.requestUC.ToggleRequest(req.ID)
	default:
		return utils.BadRequestResponse(c, "action must be all, none or toggle")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "selection updated", map[string]interface{}{
		"selected": selected,
	})
}

// ExportRequests handles GET /services/requests/export
func (h *RequestHandler) ExportRequests(c echo.Context) error {
	header, rows, err := h.requestUC.ExportRequests(c.Request().Context())
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}
	return utils.CSVDownload(c, utils.ExportFilename("service-requests"), header, rows)
}
