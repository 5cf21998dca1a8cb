package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/internal/utils"
	"github.com/karhabty/admin-gateway/services/catalog"
)

// serviceTypeFilterKeys are the filter fields the catalog list accepts
var serviceTypeFilterKeys = []string{"category", "active", "search"}

// ServiceTypeHandler exposes the service-type catalog over the admin API
type ServiceTypeHandler struct {
	catalogUC catalog.CatalogUC
}

// NewServiceTypeHandler creates a catalog handler
func NewServiceTypeHandler(catalogUC catalog.CatalogUC) *ServiceTypeHandler {
	return &ServiceTypeHandler{catalogUC: catalogUC}
}

// ListServiceTypes handles GET /services/types
func (h *ServiceTypeHandler) ListServiceTypes(c echo.Context) error {
	q := utils.ParseListQuery(c, serviceTypeFilterKeys...)

	snap, err := h.catalogUC.ListServiceTypes(c.Request().Context(), q)
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "service types retrieved", utils.ListPayload{
		Items:      snap.Items,
		Total:      snap.Total,
		TotalPages: snap.TotalPages,
		Page:       snap.Query.Page,
		PageSize:   snap.Query.PageSize,
		Filters:    snap.Query.Filters,
		Selected:   snap.Selected,
	})
}

// CreateServiceType handles POST /services/types
func (h *ServiceTypeHandler) CreateServiceType(c echo.Context) error {
	var input models.ServiceType
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	created, err := h.catalogUC.CreateServiceType(c.Request().Context(), input)
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusCreated, "service type created", created)
}

// UpdateServiceType handles PATCH /services/types/:id
func (h *ServiceTypeHandler) UpdateServiceType(c echo.Context) error {
	var input models.ServiceType
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	updated, err := h.catalogUC.UpdateServiceType(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "service type updated", updated)
}

// BatchDeleteServiceTypes handles POST /services/types/batch-delete
func (h *ServiceTypeHandler) BatchDeleteServiceTypes(c echo.Context) error {
	var req utils.BatchDeleteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	if err := h.catalogUC.DeleteServiceTypes(c.Request().Context(), req.IDs); err != nil {
		return utils.APIErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "service types deleted", nil)
}

// UpdateSelection handles PUT /services/types/selection
func (h *ServiceTypeHandler) UpdateSelection(c echo.Context) error {
	var req utils.SelectionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	var selected []string
	switch req.Action {
	case "all":
		selected = h.catalogUC.SelectAllServiceTypes(true)
	case "none":
		selected = h.catalogUC.SelectAllServiceTypes(false)
	case "toggle":
		if req.ID == "" {
			return utils.BadRequestResponse(c, "toggle requires an id")
		}
		selected = h.catalogUC.ToggleServiceType(req.ID)
	default:
		return utils.BadRequestResponse(c, "action must be all, none or toggle")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "selection updated", map[string]interface{}{
		"selected": selected,
	})
}

// ExportServiceTypes handles GET /services/types/export
func (h *ServiceTypeHandler) ExportServiceTypes(c echo.Context) error {
	header, rows, err := h.catalogUC.ExportServiceTypes(c.Request().Context())
	if err != nil {
		return utils.APIErrorResponse(c, err)
	}
	return utils.CSVDownload(c, utils.ExportFilename("service-types"), header, rows)
}
