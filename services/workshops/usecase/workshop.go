package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/karhabty/admin-gateway/internal/pkg/apierr"
	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/internal/utils"
)

// validateNewWorkshop enforces the phone list invariants on create: at least
// one phone, at most one primary. Name, address and owner are required.
func validateNewWorkshop(input models.Workshop) map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(input.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(input.Address) == "" {
		fields["address"] = "address is required"
	}
	if input.OwnerID == "" {
		fields["owner_id"] = "owner_id is required"
	}
	if len(input.Phones) == 0 {
		fields["phone_numbers"] = "at least one phone number is required"
	}

	primaries := 0
	for _, p := range input.Phones {
		if p.Primary {
			primaries++
		}
	}
	if primaries > 1 {
		fields["phone_numbers"] = "at most one phone number may be primary"
	}

	if (input.Latitude == nil) != (input.Longitude == nil) {
		fields["location"] = "latitude and longitude must be set together"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// normalizePhones promotes the first phone to primary when none is flagged.
// Inputs with more than one primary are left alone for validation to reject.
func normalizePhones(phones []models.PhoneNumber) []models.PhoneNumber {
	if len(phones) == 0 {
		return phones
	}
	for _, p := range phones {
		if p.Primary {
			return phones
		}
	}
	out := make([]models.PhoneNumber, len(phones))
	copy(out, phones)
	out[0].Primary = true
	return out
}

// ListWorkshops applies the requested pagination/filter state and returns
// the resulting snapshot
func (uc *WorkshopUC) ListWorkshops(ctx context.Context, q collection.Query) (collection.Snapshot[models.Workshop], error) {
	err := uc.ctrl.ApplyQuery(ctx, q)
	if errors.Is(err, collection.ErrStaleFetch) {
		err = nil
	}
	return uc.ctrl.Snapshot(), err
}

// CreateWorkshop normalizes the phone list and creates the workshop
func (uc *WorkshopUC) CreateWorkshop(ctx context.Context, input models.Workshop) (models.Workshop, error) {
	input.Phones = normalizePhones(input.Phones)
	return uc.ctrl.Create(ctx, input)
}

// UpdateWorkshop diffs the input against the current entity and sends only
// the changed fields plus the id. Approval changes are checked against the
// transition table before anything goes over the wire.
func (uc *WorkshopUC) UpdateWorkshop(ctx context.Context, id string, input models.Workshop) (models.Workshop, error) {
	if id == "" {
		return models.Workshop{}, apierr.New(apierr.KindPrecondition, "id is required for update")
	}

	current, err := uc.currentWorkshop(ctx, id)
	if err != nil {
		return models.Workshop{}, err
	}

	patch, err := diffWorkshop(current, input)
	if err != nil {
		return models.Workshop{}, err
	}
	if len(patch) == 0 {
		return current, nil
	}
	patch["id"] = id

	return uc.ctrl.Update(ctx, id, patch)
}

func (uc *WorkshopUC) currentWorkshop(ctx context.Context, id string) (models.Workshop, error) {
	for _, item := range uc.ctrl.Snapshot().Items {
		if item.ID == id {
			return item, nil
		}
	}
	return uc.gw.Get(ctx, id)
}

func diffWorkshop(current, input models.Workshop) (map[string]interface{}, error) {
	patch := make(map[string]interface{})

	if input.Name != "" && input.Name != current.Name {
		patch["name"] = input.Name
	}
	if input.Address != "" && input.Address != current.Address {
		patch["address"] = input.Address
	}
	if input.Latitude != nil && (current.Latitude == nil || *input.Latitude != *current.Latitude) {
		patch["latitude"] = *input.Latitude
	}
	if input.Longitude != nil && (current.Longitude == nil || *input.Longitude != *current.Longitude) {
		patch["longitude"] = *input.Longitude
	}
	if input.Operating != "" && input.Operating != current.Operating {
		patch["operating_status"] = string(input.Operating)
	}
	if input.Approval != "" && input.Approval != current.Approval {
		if !models.CanChangeApproval(current.Approval, input.Approval) {
			return nil, apierr.New(apierr.KindPrecondition,
				fmt.Sprintf("approval cannot change from %s to %s", current.Approval, input.Approval))
		}
		patch["approval_status"] = string(input.Approval)
	}
	if input.Phones != nil && !equalPhones(input.Phones, current.Phones) {
		normalized := normalizePhones(input.Phones)
		if len(normalized) == 0 {
			return nil, apierr.Validation(map[string]string{
				"phone_numbers": "at least one phone number is required",
			})
		}
		primaries := 0
		for _, p := range normalized {
			if p.Primary {
				primaries++
			}
		}
		if primaries > 1 {
			return nil, apierr.Validation(map[string]string{
				"phone_numbers": "at most one phone number may be primary",
			})
		}
		patch["phone_numbers"] = phonesPatch(normalized)
	}
	if input.Services != nil && !equalStrings(input.Services, current.Services) {
		patch["services"] = input.Services
	}
	if input.Labels != nil && !equalStrings(input.Labels, current.Labels) {
		patch["labels"] = input.Labels
	}

	return patch, nil
}

// phonesPatch renders the phone list in the upstream wire shape
func phonesPatch(phones []models.PhoneNumber) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(phones))
	for _, p := range phones {
		out = append(out, map[string]interface{}{
			"phone_number": p.Number,
			"type":         p.Type,
			"is_primary":   p.Primary,
			"is_verified":  p.Verified,
		})
	}
	return out
}

func equalPhones(a, b []models.PhoneNumber) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// nearbyFetchSize bounds the candidate set of a proximity lookup
const nearbyFetchSize = 200

// NearbyWorkshops returns the workshops within radiusKm of the given point,
// closest first. Candidates are narrowed with geohash prefixes (center cell
// plus neighbors) before the exact distance check.
func (uc *WorkshopUC) NearbyWorkshops(ctx context.Context, lat, lng, radiusKm float64) ([]models.Workshop, error) {
	if radiusKm <= 0 {
		return nil, apierr.Validation(map[string]string{"radius_km": "radius must be positive"})
	}

	page, err := uc.gw.List(ctx, collection.Query{
		Page:     1,
		PageSize: nearbyFetchSize,
		Filters:  map[string]string{"approval_status": "active"},
	})
	if err != nil {
		return nil, err
	}

	center := utils.GeoPoint{Latitude: lat, Longitude: lng}
	prefixes := utils.ProximityPrefixes(center, radiusKm)

	type candidate struct {
		workshop models.Workshop
		distance float64
	}
	candidates := make([]candidate, 0)

	for _, w := range page.Items {
		if w.Latitude == nil || w.Longitude == nil || !hasAnyPrefix(w.Geohash, prefixes) {
			continue
		}
		d := utils.CalculateDistance(center, utils.GeoPoint{Latitude: *w.Latitude, Longitude: *w.Longitude})
		if d <= radiusKm {
			candidates = append(candidates, candidate{workshop: w, distance: d})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	out := make([]models.Workshop, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.workshop)
	}
	return out, nil
}

func hasAnyPrefix(hash string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(hash, p) {
			return true
		}
	}
	return false
}

// AdjustServicePrices applies a percentage change to the service prices of
// the given workshops, or of the current selection when none are given.
// Failures are collected per workshop and reported as a partial failure.
func (uc *WorkshopUC) AdjustServicePrices(ctx context.Context, ids []string, percent float64) error {
	if percent < -90 || percent > 500 {
		return apierr.Validation(map[string]string{"percent": "percent must be between -90 and 500"})
	}
	if len(ids) == 0 {
		ids = uc.ctrl.Selected()
	}
	if len(ids) == 0 {
		return apierr.New(apierr.KindPrecondition, "no workshops given or selected")
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed = make(map[string]string)
	)
	sem := make(chan struct{}, adjustWorkers)

	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if err := uc.gw.AdjustPrices(ctx, id, percent); err != nil {
				mu.Lock()
				failed[id] = err.Error()
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()

	if len(failed) > 0 {
		return apierr.Partial("price adjustment", failed)
	}
	return nil
}

// DeleteWorkshops deletes the given ids, or the current selection when none
// are given
func (uc *WorkshopUC) DeleteWorkshops(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return uc.ctrl.DeleteSelected(ctx)
	}
	return uc.ctrl.DeleteBatch(ctx, ids)
}

// SelectAllWorkshops selects or clears every loaded id and returns the
// selection
func (uc *WorkshopUC) SelectAllWorkshops(checked bool) []string {
	uc.ctrl.SelectAll(checked)
	return uc.ctrl.Selected()
}

// ToggleWorkshop flips one id in the selection and returns the selection
func (uc *WorkshopUC) ToggleWorkshop(id string) []string {
	uc.ctrl.ToggleSelect(id)
	return uc.ctrl.Selected()
}

// ExportWorkshops flattens the currently loaded, filtered list for CSV
// download
func (uc *WorkshopUC) ExportWorkshops(ctx context.Context) ([]string, [][]string, error) {
	snap := uc.ctrl.Snapshot()
	if snap.Err != nil {
		return nil, nil, snap.Err
	}

	header := []string{"id", "name", "address", "primary_phone", "operating_status", "approval_status", "rating", "reviews", "created_at"}
	rows := make([][]string, 0, len(snap.Items))
	for _, w := range snap.Items {
		primary := ""
		if p := w.PrimaryPhone(); p != nil {
			primary = p.Number
		}
		rows = append(rows, []string{
			w.ID,
			w.Name,
			w.Address,
			primary,
			string(w.Operating),
			string(w.Approval),
			strconv.FormatFloat(w.Rating, 'f', 1, 64),
			strconv.Itoa(w.ReviewCount),
			utils.FormatTime(w.CreatedAt),
		})
	}
	return header, rows, nil
}
