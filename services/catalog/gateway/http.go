package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/karhabty/admin-gateway/internal/pkg/apierr"
	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	httpclient "github.com/karhabty/admin-gateway/internal/pkg/http"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
)

// serviceTypeRecord is the upstream wire shape of a catalog entry. Two
// historical shapes exist upstream: bilingual objects and flat strings; the
// flat form lands in the English field.
type serviceTypeRecord struct {
	ID          string          `json:"id"`
	Name        localizedField  `json:"name"`
	Description localizedField  `json:"description"`
	Category    string          `json:"category"`
	MinPrice    *float64        `json:"min_price"`
	MaxPrice    *float64        `json:"max_price"`
	DurationMin int             `json:"duration_minutes"`
	IsActive    *bool           `json:"is_active"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// localizedField tolerates both `"name": "Oil change"` and
// `"name": {"en": "Oil change", "ar": "..."}`
type localizedField struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

func (f *localizedField) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var flat string
		if err := json.Unmarshal(data, &flat); err != nil {
			return err
		}
		f.En = flat
		f.Ar = ""
		return nil
	}
	type alias localizedField
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*f = localizedField(obj)
	return nil
}

type serviceTypeListResponse struct {
	Data  []serviceTypeRecord `json:"data"`
	Total int                 `json:"total"`
}

type serviceTypePayload struct {
	Name        models.LocalizedText `json:"name"`
	Description models.LocalizedText `json:"description"`
	Category    string               `json:"category"`
	MinPrice    *float64             `json:"min_price,omitempty"`
	MaxPrice    *float64             `json:"max_price,omitempty"`
	DurationMin int                  `json:"duration_minutes,omitempty"`
	IsActive    bool                 `json:"is_active"`
}

// mapServiceType converts an upstream record into the domain entity
func mapServiceType(rec serviceTypeRecord) (models.ServiceType, error) {
	if rec.ID == "" {
		return models.ServiceType{}, apierr.New(apierr.KindDecode, "service type record missing id")
	}

	s := models.ServiceType{
		ID:          rec.ID,
		Name:        models.LocalizedText{En: rec.Name.En, Ar: rec.Name.Ar},
		Description: models.LocalizedText{En: rec.Description.En, Ar: rec.Description.Ar},
		Category:    models.ServiceCategory(rec.Category),
		MinPrice:    rec.MinPrice,
		MaxPrice:    rec.MaxPrice,
		DurationMin: rec.DurationMin,
		IsActive:    true,
		CreatedAt:   parseTime(rec.CreatedAt),
		UpdatedAt:   parseTime(rec.UpdatedAt),
	}

	if s.Category == "" {
		s.Category = models.CategoryOther
	}
	if rec.IsActive != nil {
		s.IsActive = *rec.IsActive
	}

	return s, nil
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

// List fetches one page of catalog entries
func (g *CatalogGW) List(ctx context.Context, q collection.Query) (collection.Page[models.ServiceType], error) {
	params := httpclient.ListParams{Page: q.Page, PageSize: q.PageSize, Filters: q.Filters}

	var resp serviceTypeListResponse
	if err := g.api.Get(ctx, "/services/types", params.Values(), &resp); err != nil {
		return collection.Page[models.ServiceType]{}, err
	}

	items := make([]models.ServiceType, 0, len(resp.Data))
	for _, rec := range resp.Data {
		s, err := mapServiceType(rec)
		if err != nil {
			return collection.Page[models.ServiceType]{}, err
		}
		items = append(items, s)
	}

	return collection.Page[models.ServiceType]{Items: items, Total: resp.Total}, nil
}

// Get fetches a single catalog entry
func (g *CatalogGW) Get(ctx context.Context, id string) (models.ServiceType, error) {
	var rec serviceTypeRecord
	if err := g.api.Get(ctx, "/services/types/"+id, nil, &rec); err != nil {
		return models.ServiceType{}, err
	}
	return mapServiceType(rec)
}

// Create creates a catalog entry upstream
func (g *CatalogGW) Create(ctx context.Context, input models.ServiceType) (models.ServiceType, error) {
	payload := serviceTypePayload{
		Name:        input.Name,
		Description: input.Description,
		Category:    string(input.Category),
		MinPrice:    input.MinPrice,
		MaxPrice:    input.MaxPrice,
		DurationMin: input.DurationMin,
		IsActive:    input.IsActive,
	}

	var rec serviceTypeRecord
	if err := g.api.Post(ctx, "/services/types", payload, &rec); err != nil {
		return models.ServiceType{}, err
	}
	return mapServiceType(rec)
}

// Update patches a catalog entry with the given changed fields
func (g *CatalogGW) Update(ctx context.Context, id string, patch map[string]interface{}) (models.ServiceType, error) {
	var rec serviceTypeRecord
	if err := g.api.Patch(ctx, "/services/types/"+id, patch, &rec); err != nil {
		return models.ServiceType{}, err
	}
	return mapServiceType(rec)
}

// Delete removes a catalog entry
func (g *CatalogGW) Delete(ctx context.Context, id string) error {
	return g.api.Delete(ctx, "/services/types/"+id)
}
