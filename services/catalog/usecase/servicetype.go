package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/karhabty/admin-gateway/internal/pkg/apierr"
	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
)

var validCategories = map[models.ServiceCategory]bool{
	models.CategoryMaintenance: true,
	models.CategoryRepair:      true,
	models.CategoryInspection:  true,
	models.CategoryBodywork:    true,
	models.CategoryElectrical:  true,
	models.CategoryTires:       true,
	models.CategoryOther:       true,
}

// validateNewServiceType enforces the bilingual catalog rule: both the
// English and the Arabic name are mandatory
func validateNewServiceType(input models.ServiceType) map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(input.Name.En) == "" {
		fields["name.en"] = "English name is required"
	}
	if strings.TrimSpace(input.Name.Ar) == "" {
		fields["name.ar"] = "Arabic name is required"
	}
	if input.Category != "" && !validCategories[input.Category] {
		fields["category"] = "unknown category"
	}
	if input.MinPrice != nil && *input.MinPrice < 0 {
		fields["min_price"] = "minimum price cannot be negative"
	}
	if input.MinPrice != nil && input.MaxPrice != nil && *input.MaxPrice < *input.MinPrice {
		fields["max_price"] = "maximum price cannot be below the minimum"
	}
	if input.DurationMin < 0 {
		fields["duration_minutes"] = "duration cannot be negative"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// ListServiceTypes applies the requested pagination/filter state and returns
// the resulting snapshot
func (uc *CatalogUC) ListServiceTypes(ctx context.Context, q collection.Query) (collection.Snapshot[models.ServiceType], error) {
	err := uc.ctrl.ApplyQuery(ctx, q)
	if errors.Is(err, collection.ErrStaleFetch) {
		err = nil
	}
	return uc.ctrl.Snapshot(), err
}

// CreateServiceType creates a catalog entry; categories default to other
func (uc *CatalogUC) CreateServiceType(ctx context.Context, input models.ServiceType) (models.ServiceType, error) {
	if input.Category == "" {
		input.Category = models.CategoryOther
	}
	return uc.ctrl.Create(ctx, input)
}

// UpdateServiceType diffs the input against the current entry and sends only
// the changed fields plus the id. Blanking a bilingual name is refused.
func (uc *CatalogUC) UpdateServiceType(ctx context.Context, id string, input models.ServiceType) (models.ServiceType, error) {
	if id == "" {
		return models.ServiceType{}, apierr.New(apierr.KindPrecondition, "id is required for update")
	}

	current, err := uc.currentServiceType(ctx, id)
	if err != nil {
		return models.ServiceType{}, err
	}

	patch, err := diffServiceType(current, input)
	if err != nil {
		return models.ServiceType{}, err
	}
	if len(patch) == 0 {
		return current, nil
	}
	patch["id"] = id

	return uc.ctrl.Update(ctx, id, patch)
}

func (uc *CatalogUC) currentServiceType(ctx context.Context, id string) (models.ServiceType, error) {
	for _, item := range uc.ctrl.Snapshot().Items {
		if item.ID == id {
			return item, nil
		}
	}
	return uc.gw.Get(ctx, id)
}

func diffServiceType(current, input models.ServiceType) (map[string]interface{}, error) {
	patch := make(map[string]interface{})

	name := current.Name
	if input.Name.En != "" {
		name.En = input.Name.En
	}
	if input.Name.Ar != "" {
		name.Ar = input.Name.Ar
	}
	if name != current.Name {
		patch["name"] = name
	}

	desc := current.Description
	if input.Description.En != "" {
		desc.En = input.Description.En
	}
	if input.Description.Ar != "" {
		desc.Ar = input.Description.Ar
	}
	if desc != current.Description {
		patch["description"] = desc
	}

	if input.Category != "" && input.Category != current.Category {
		if !validCategories[input.Category] {
			return nil, apierr.Validation(map[string]string{"category": "unknown category"})
		}
		patch["category"] = string(input.Category)
	}
	if input.MinPrice != nil && (current.MinPrice == nil || *input.MinPrice != *current.MinPrice) {
		if *input.MinPrice < 0 {
			return nil, apierr.Validation(map[string]string{"min_price": "minimum price cannot be negative"})
		}
		patch["min_price"] = *input.MinPrice
	}
	if input.MaxPrice != nil && (current.MaxPrice == nil || *input.MaxPrice != *current.MaxPrice) {
		patch["max_price"] = *input.MaxPrice
	}
	if input.DurationMin > 0 && input.DurationMin != current.DurationMin {
		patch["duration_minutes"] = input.DurationMin
	}
	if input.IsActive != current.IsActive {
		patch["is_active"] = input.IsActive
	}

	return patch, nil
}

// DeleteServiceTypes deletes the given ids, or the current selection when
// none are given
func (uc *CatalogUC) DeleteServiceTypes(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return uc.ctrl.DeleteSelected(ctx)
	}
	return uc.ctrl.DeleteBatch(ctx, ids)
}

// SelectAllServiceTypes selects or clears every loaded id and returns the
// selection
func (uc *CatalogUC) SelectAllServiceTypes(checked bool) []string {
	uc.ctrl.SelectAll(checked)
	return uc.ctrl.Selected()
}

// ToggleServiceType flips one id in the selection and returns the selection
func (uc *CatalogUC) ToggleServiceType(id string) []string {
	uc.ctrl.ToggleSelect(id)
	return uc.ctrl.Selected()
}

// ExportServiceTypes flattens the currently loaded, filtered list for CSV
// download
func (uc *CatalogUC) ExportServiceTypes(ctx context.Context) ([]string, [][]string, error) {
	snap := uc.ctrl.Snapshot()
	if snap.Err != nil {
		return nil, nil, snap.Err
	}

	header := []string{"id", "name_en", "name_ar", "category", "min_price", "max_price", "active"}
	rows := make([][]string, 0, len(snap.Items))
	for _, s := range snap.Items {
		rows = append(rows, []string{
			s.ID,
			s.Name.En,
			s.Name.Ar,
			string(s.Category),
			formatPrice(s.MinPrice),
			formatPrice(s.MaxPrice),
			strconv.FormatBool(s.IsActive),
		})
	}
	return header, rows, nil
}

func formatPrice(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', 2, 64)
}
