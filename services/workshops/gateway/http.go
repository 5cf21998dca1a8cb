package gateway

import (
	"context"
	"time"

	"github.com/karhabty/admin-gateway/internal/pkg/apierr"
	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	httpclient "github.com/karhabty/admin-gateway/internal/pkg/http"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/internal/utils"
)

// workshopRecord is the upstream wire shape of a workshop
type workshopRecord struct {
	ID              string        `json:"id"`
	ParentID        string        `json:"parent_id"`
	OwnerID         string        `json:"owner_id"`
	Name            string        `json:"name"`
	Address         string        `json:"address"`
	Latitude        *float64      `json:"latitude"`
	Longitude       *float64      `json:"longitude"`
	PhoneNumbers    []phoneRecord `json:"phone_numbers"`
	OperatingStatus string        `json:"operating_status"`
	ApprovalStatus  string        `json:"approval_status"`
	Services        []string      `json:"services"`
	Labels          []string      `json:"labels"`
	Rating          float64       `json:"rating"`
	ReviewCount     int           `json:"review_count"`
	CreatedAt       string        `json:"created_at"`
	UpdatedAt       string        `json:"updated_at"`
}

type phoneRecord struct {
	PhoneNumber string `json:"phone_number"`
	Type        string `json:"type"`
	IsPrimary   bool   `json:"is_primary"`
	IsVerified  bool   `json:"is_verified"`
}

type workshopListResponse struct {
	Data  []workshopRecord `json:"data"`
	Total int              `json:"total"`
}

type adjustPricesRequest struct {
	Percent float64 `json:"percent"`
}

// mapWorkshop converts an upstream record into the domain entity. The
// geohash is derived here so every loaded workshop with coordinates carries
// one; records without an id are rejected.
func mapWorkshop(rec workshopRecord) (models.Workshop, error) {
	if rec.ID == "" {
		return models.Workshop{}, apierr.New(apierr.KindDecode, "workshop record missing id")
	}

	w := models.Workshop{
		ID:          rec.ID,
		ParentID:    rec.ParentID,
		OwnerID:     rec.OwnerID,
		Name:        rec.Name,
		Address:     rec.Address,
		Latitude:    rec.Latitude,
		Longitude:   rec.Longitude,
		Operating:   models.OperatingStatus(rec.OperatingStatus),
		Approval:    models.ApprovalStatus(rec.ApprovalStatus),
		Services:    rec.Services,
		Labels:      rec.Labels,
		Rating:      rec.Rating,
		ReviewCount: rec.ReviewCount,
		CreatedAt:   parseTime(rec.CreatedAt),
		UpdatedAt:   parseTime(rec.UpdatedAt),
	}

	if w.Operating == "" {
		w.Operating = models.OperatingClosed
	}
	if w.Approval == "" {
		w.Approval = models.ApprovalPending
	}
	if w.Services == nil {
		w.Services = []string{}
	}
	if w.Labels == nil {
		w.Labels = []string{}
	}

	w.Phones = make([]models.PhoneNumber, 0, len(rec.PhoneNumbers))
	for _, p := range rec.PhoneNumbers {
		w.Phones = append(w.Phones, models.PhoneNumber{
			Number:   p.PhoneNumber,
			Type:     p.Type,
			Primary:  p.IsPrimary,
			Verified: p.IsVerified,
		})
	}

	if rec.Latitude != nil && rec.Longitude != nil {
		w.Geohash = utils.EncodeGeoPoint(utils.GeoPoint{
			Latitude:  *rec.Latitude,
			Longitude: *rec.Longitude,
		})
	}

	return w, nil
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

// encodePhones converts the domain phone list to the wire shape
func encodePhones(phones []models.PhoneNumber) []phoneRecord {
	out := make([]phoneRecord, 0, len(phones))
	for _, p := range phones {
		out = append(out, phoneRecord{
			PhoneNumber: p.Number,
			Type:        p.Type,
			IsPrimary:   p.Primary,
			IsVerified:  p.Verified,
		})
	}
	return out
}

type createWorkshopRequest struct {
	ParentID        string        `json:"parent_id,omitempty"`
	OwnerID         string        `json:"owner_id"`
	Name            string        `json:"name"`
	Address         string        `json:"address"`
	Latitude        *float64      `json:"latitude"`
	Longitude       *float64      `json:"longitude"`
	PhoneNumbers    []phoneRecord `json:"phone_numbers"`
	OperatingStatus string        `json:"operating_status,omitempty"`
	Services        []string      `json:"services"`
	Labels          []string      `json:"labels"`
}

// List fetches one page of workshops
func (g *WorkshopGW) List(ctx context.Context, q collection.Query) (collection.Page[models.Workshop], error) {
	params := httpclient.ListParams{Page: q.Page, PageSize: q.PageSize, Filters: q.Filters}

	var resp workshopListResponse
	if err := g.api.Get(ctx, "/workshops", params.Values(), &resp); err != nil {
		return collection.Page[models.Workshop]{}, err
	}

	items := make([]models.Workshop, 0, len(resp.Data))
	for _, rec := range resp.Data {
		w, err := mapWorkshop(rec)
		if err != nil {
			return collection.Page[models.Workshop]{}, err
		}
		items = append(items, w)
	}

	return collection.Page[models.Workshop]{Items: items, Total: resp.Total}, nil
}

// Get fetches a single workshop
func (g *WorkshopGW) Get(ctx context.Context, id string) (models.Workshop, error) {
	var rec workshopRecord
	if err := g.api.Get(ctx, "/workshops/"+id, nil, &rec); err != nil {
		return models.Workshop{}, err
	}
	return mapWorkshop(rec)
}

// Create creates a workshop upstream
func (g *WorkshopGW) Create(ctx context.Context, input models.Workshop) (models.Workshop, error) {
	req := createWorkshopRequest{
		ParentID:        input.ParentID,
		OwnerID:         input.OwnerID,
		Name:            input.Name,
		Address:         input.Address,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		PhoneNumbers:    encodePhones(input.Phones),
		OperatingStatus: string(input.Operating),
		Services:        input.Services,
		Labels:          input.Labels,
	}
	if req.Services == nil {
		req.Services = []string{}
	}
	if req.Labels == nil {
		req.Labels = []string{}
	}

	var rec workshopRecord
	if err := g.api.Post(ctx, "/workshops", req, &rec); err != nil {
		return models.Workshop{}, err
	}
	return mapWorkshop(rec)
}

// Update patches a workshop with the given changed fields
func (g *WorkshopGW) Update(ctx context.Context, id string, patch map[string]interface{}) (models.Workshop, error) {
	var rec workshopRecord
	if err := g.api.Patch(ctx, "/workshops/"+id, patch, &rec); err != nil {
		return models.Workshop{}, err
	}
	return mapWorkshop(rec)
}

// Delete removes a workshop
func (g *WorkshopGW) Delete(ctx context.Context, id string) error {
	return g.api.Delete(ctx, "/workshops/"+id)
}

// AdjustPrices applies a percentage change to all service prices of one
// workshop
func (g *WorkshopGW) AdjustPrices(ctx context.Context, id string, percent float64) error {
	return g.api.Post(ctx, "/workshops/"+id+"/services/price-adjust", adjustPricesRequest{Percent: percent}, nil)
}
