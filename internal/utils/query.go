package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/karhabty/admin-gateway/internal/pkg/collection"
)

// ParseListQuery reads the pagination and the named filter keys from the
// request query string. Absent filters come through as empty strings and are
// dropped before they reach the upstream.
func ParseListQuery(c echo.Context, filterKeys ...string) collection.Query {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("page_size"))

	filters := make(map[string]string, len(filterKeys))
	for _, key := range filterKeys {
		filters[key] = c.QueryParam(key)
	}

	return collection.Query{
		Page:     page,
		PageSize: size,
		Filters:  filters,
	}
}

// ListPayload is the list response body shared by every collection endpoint
type ListPayload struct {
	Items      interface{}       `json:"items"`
	Total      int               `json:"total"`
	TotalPages int               `json:"total_pages"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	Filters    map[string]string `json:"filters"`
	Selected   []string          `json:"selected"`
}

// SelectionRequest is the body of the selection endpoints
type SelectionRequest struct {
	Action string `json:"action"` // all, none or toggle
	ID     string `json:"id,omitempty"`
}

// BatchDeleteRequest is the body of the batch-delete endpoints. An empty id
// list means "delete the current selection".
type BatchDeleteRequest struct {
	IDs []string `json:"ids"`
}
