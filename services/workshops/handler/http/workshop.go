package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/internal/utils"
	"github.com/karhabty/admin-gateway/services/workshops"
)

// workshopFilterKeys are the filter fields the workshops list accepts
var workshopFilterKeys = []string{"approval_status", "operating_status", "search", "label", "service"}

// WorkshopHandler exposes the workshop collection over the admin API
type WorkshopHandler struct {
	workshopUC workshops.WorkshopUC
}

// NewWorkshopHandler creates a workshop handler
func NewWorkshopHandler(workshopUC workshops.WorkshopUC) *WorkshopHandler {
	return &WorkshopHandler{workshopUC: workshopUC}
}

// ListWorkshops handles GET /workshops
func (h *WorkshopHandler) ListWorkshops(c echo.Context) error {
	q := utils.ParseListQuery(c, workshopFilterKeys...)

	snap, err := h.workshopUC.ListWorkshops(c.Request().Context(), q)
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "workshops retrieved", utils.ListPayload{
		Items:      snap.Items,
		Total:      snap.Total,
		TotalPages: snap.TotalPages,
		Page:       snap.Query.Page,
		PageSize:   snap.Query.PageSize,
		Filters:    snap.Query.Filters,
		Selected:   snap.Selected,
	})
}

// CreateWorkshop handles POST /workshops
func (h *WorkshopHandler) CreateWorkshop(c echo.Context) error {
	var input models.Workshop
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	created, err := h.workshopUC.CreateWorkshop(c.Request().Context(), input)
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusCreated, "workshop created", created)
}

// UpdateWorkshop handles PATCH /workshops/:id
func (h *WorkshopHandler) UpdateWorkshop(c echo.Context) error {
	var input models.Workshop
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	updated, err := h.workshopUC.UpdateWorkshop(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "workshop updated", updated)
}

// BatchDeleteWorkshops handles POST /workshops/batch-delete
func (h *WorkshopHandler) BatchDeleteWorkshops(c echo.Context) error {
	var req utils.BatchDeleteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	if err := h.workshopUC.DeleteWorkshops(c.Request().Context(), req.IDs); err != nil {
		return utils.APIErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "workshops deleted", nil)
}

// NearbyWorkshops handles GET /workshops/nearby?lat=&lng=&radius_km=
func (h *WorkshopHandler) NearbyWorkshops(c echo.Context) error {
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if errLat != nil || errLng != nil {
		return utils.BadRequestResponse(c, "lat and lng are required")
	}

	radius := 5.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "radius_km must be a number")
		}
		radius = parsed
	}

	found, err := h.workshopUC.NearbyWorkshops(c.Request().Context(), lat, lng, radius)
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "nearby workshops retrieved", found)
}

// bulkAdjustRequest is the body of POST /workshops/services/bulk-adjust
type bulkAdjustRequest struct {
	IDs     []string `json:"ids"`
	Percent float64  `json:"percent"`
}

// BulkAdjustPrices handles POST /workshops/services/bulk-adjust
func (h *WorkshopHandler) BulkAdjustPrices(c echo.Context) error {
	var req bulkAdjustRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	if err := h.workshopUC.AdjustServicePrices(c.Request().Context(), req.IDs, req.Percent); err != nil {
		return utils.APIErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "prices adjusted", nil)
}

// UpdateSelection handles PUT /workshops/selection
func (h *WorkshopHandler) UpdateSelection(c echo.Context) error {
	var req utils.SelectionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	var selected []string
	switch req.Action {
	case "all":
		selected = h.workshopUC.SelectAllWorkshops(true)
	case "none":
		selected = h.workshopUC.SelectAllWorkshops(false)
	case "toggle":
		if req.ID == "" {
			return utils.BadRequestResponse(c, "toggle requires an id")
		}
		selected = h.workshopUC.ToggleWorkshop(req.ID)
	default:
		return utils.BadRequestResponse(c, "action must be all, none or toggle")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "selection updated", map[string]interface{}{
		"selected": selected,
	})
}

// ExportWorkshops handles GET /workshops/export
func (h *WorkshopHandler) ExportWorkshops(c echo.Context) error {
	header, rows, err := h.workshopUC.ExportWorkshops(c.Request().Context())
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}
	return utils.CSVDownload(c, utils.ExportFilename("workshops"), header, rows)
}
