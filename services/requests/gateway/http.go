package gateway

import (
	"context"
	"time"

	"github.com/karhabty/admin-gateway/internal/pkg/apierr"
	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	httpclient "github.com/karhabty/admin-gateway/internal/pkg/http"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
)

// requestRecord is the upstream wire shape of a service request. The two
// historical status vocabularies of the upstream are normalized here.
type requestRecord struct {
	ID            string         `json:"id"`
	CustomerID    string         `json:"customer_id"`
	CustomerName  string         `json:"customer_name"`
	CustomerPhone string         `json:"customer_phone"`
	Vehicle       *vehicleRecord `json:"vehicle"`
	ServiceName   string         `json:"service_name"`
	Category      string         `json:"category"`
	Description   string         `json:"description"`
	WorkshopID    string         `json:"workshop_id"`
	WorkshopName  string         `json:"workshop_name"`
	Status        string         `json:"status"`
	Priority      string         `json:"priority"`
	Price         *float64       `json:"price"`
	Notes         string         `json:"notes"`
	RequestedAt   string         `json:"requested_at"`
	ScheduledAt   *string        `json:"scheduled_at"`
	CompletedAt   *string        `json:"completed_at"`
}

type vehicleRecord struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"license_plate"`
	VIN          string `json:"vin"`
	BodyType     string `json:"body_type"`
	Turbo        bool   `json:"turbo"`
	Exotic       bool   `json:"exotic"`
}

type requestListResponse struct {
	Data  []requestRecord `json:"data"`
	Total int             `json:"total"`
}

// legacyStatuses maps older upstream status spellings onto the unified
// lifecycle enum
var legacyStatuses = map[string]models.RequestStatus{
	"open":        models.RequestNew,
	"created":     models.RequestNew,
	"accepted":    models.RequestPending,
	"in-progress": models.RequestInProgress,
	"done":        models.RequestCompleted,
	"canceled":    models.RequestCancelled,
}

func mapStatus(raw string) models.RequestStatus {
	if mapped, ok := legacyStatuses[raw]; ok {
		return mapped
	}
	switch s := models.RequestStatus(raw); s {
	case models.RequestNew, models.RequestPending, models.RequestInProgress,
		models.RequestCompleted, models.RequestCancelled:
		return s
	}
	return models.RequestNew
}

// mapRequest converts an upstream record into the domain entity
func mapRequest(rec requestRecord) (models.ServiceRequest, error) {
	if rec.ID == "" {
		return models.ServiceRequest{}, apierr.New(apierr.KindDecode, "service request record missing id")
	}

	r := models.ServiceRequest{
		ID:            rec.ID,
		CustomerID:    rec.CustomerID,
		CustomerName:  rec.CustomerName,
		CustomerPhone: rec.CustomerPhone,
		ServiceName:   rec.ServiceName,
		Category:      rec.Category,
		Description:   rec.Description,
		WorkshopID:    rec.WorkshopID,
		WorkshopName:  rec.WorkshopName,
		Status:        mapStatus(rec.Status),
		Priority:      models.Priority(rec.Priority),
		Price:         rec.Price,
		Notes:         rec.Notes,
		RequestedAt:   parseTime(rec.RequestedAt),
		ScheduledAt:   parseTimePtr(rec.ScheduledAt),
		CompletedAt:   parseTimePtr(rec.CompletedAt),
	}

	if rec.Vehicle != nil {
		r.Vehicle = &models.Vehicle{
			Brand:        rec.Vehicle.Brand,
			Model:        rec.Vehicle.Model,
			Year:         rec.Vehicle.Year,
			LicensePlate: rec.Vehicle.LicensePlate,
			VIN:          rec.Vehicle.VIN,
			BodyType:     rec.Vehicle.BodyType,
			Turbo:        rec.Vehicle.Turbo,
			Exotic:       rec.Vehicle.Exotic,
		}
	}

	return r, nil
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseTimePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := parseTime(*s)
	if t.IsZero() {
		return nil
	}
	return &t
}

// List fetches one page of service requests
func (g *RequestGW) List(ctx context.Context, q collection.Query) (collection.Page[models.ServiceRequest], error) {
	params := httpclient.ListParams{Page: q.Page, PageSize: q.PageSize, Filters: q.Filters}

	var resp requestListResponse
	if err := g.api.Get(ctx, "/services/requests", params.Values(), &resp); err != nil {
		return collection.Page[models.ServiceRequest]{}, err
	}

	items := make([]models.ServiceRequest, 0, len(resp.Data))
	for _, rec := range resp.Data {
		r, err := mapRequest(rec)
		if err != nil {
			return collection.Page[models.ServiceRequest]{}, err
		}
		items = append(items, r)
	}

	return collection.Page[models.ServiceRequest]{Items: items, Total: resp.Total}, nil
}

// Get fetches a single service request
func (g *RequestGW) Get(ctx context.Context, id string) (models.ServiceRequest, error) {
	var rec requestRecord
	if err := g.api.Get(ctx, "/services/requests/"+id, nil, &rec); err != nil {
		return models.ServiceRequest{}, err
	}
	return mapRequest(rec)
}

// Create is rejected: service requests originate in the customer app
func (g *RequestGW) Create(ctx context.Context, input models.ServiceRequest) (models.ServiceRequest, error) {
	return models.ServiceRequest{}, apierr.New(apierr.KindPrecondition,
		"service requests are created by customers, not the dashboard")
}

// Update patches a service request with the given changed fields
func (g *RequestGW) Update(ctx context.Context, id string, patch map[string]interface{}) (models.ServiceRequest, error) {
	var rec requestRecord
	if err := g.api.Patch(ctx, "/services/requests/"+id, patch, &rec); err != nil {
		return models.ServiceRequest{}, err
	}
	return mapRequest(rec)
}

// Delete removes a service request
func (g *RequestGW) Delete(ctx context.Context, id string) error {
	return g.api.Delete(ctx, "/services/requests/"+id)
}
