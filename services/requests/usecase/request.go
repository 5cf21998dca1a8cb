package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/karhabty/admin-gateway/internal/pkg/apierr"
	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/internal/utils"
)

// ListRequests applies the requested pagination/filter state and returns the
// resulting snapshot
func (uc *RequestUC) ListRequests(ctx context.Context, q collection.Query) (collection.Snapshot[models.ServiceRequest], error) {
	err := uc.ctrl.ApplyQuery(ctx, q)
	if errors.Is(err, collection.ErrStaleFetch) {
		err = nil
	}
	return uc.ctrl.Snapshot(), err
}

// UpdateRequest diffs the input against the current entity and sends only
// the changed fields plus the id. Status changes are checked against the
// lifecycle transition table; assigning a workshop requires its id.
func (uc *RequestUC) UpdateRequest(ctx context.Context, id string, input models.ServiceRequest) (models.ServiceRequest, error) {
	if id == "" {
		return models.ServiceRequest{}, apierr.New(apierr.KindPrecondition, "id is required for update")
	}

	current, err := uc.currentRequest(ctx, id)
	if err != nil {
		return models.ServiceRequest{}, err
	}

	patch, err := diffRequest(current, input)
	if err != nil {
		return models.ServiceRequest{}, err
	}
	if len(patch) == 0 {
		return current, nil
	}
	patch["id"] = id

	return uc.ctrl.Update(ctx, id, patch)
}

func (uc *RequestUC) currentRequest(ctx context.Context, id string) (models.ServiceRequest, error) {
	for _, item := range uc.ctrl.Snapshot().Items {
		if item.ID == id {
			return item, nil
		}
	}
	return uc.gw.Get(ctx, id)
}

func diffRequest(current, input models.ServiceRequest) (map[string]interface{}, error) {
	patch := make(map[string]interface{})

	if input.Status != "" && input.Status != current.Status {
		if !models.CanTransition(current.Status, input.Status) {
			return nil, apierr.New(apierr.KindPrecondition,
				fmt.Sprintf("status cannot change from %s to %s", current.Status, input.Status))
		}
		patch["status"] = string(input.Status)
	}
	if input.WorkshopID != "" && input.WorkshopID != current.WorkshopID {
		patch["workshop_id"] = input.WorkshopID
		if input.WorkshopName != "" {
			patch["workshop_name"] = input.WorkshopName
		}
	}
	if input.Price != nil && (current.Price == nil || *input.Price != *current.Price) {
		if *input.Price < 0 {
			return nil, apierr.Validation(map[string]string{"price": "price cannot be negative"})
		}
		patch["price"] = *input.Price
	}
	if input.Priority != "" && input.Priority != current.Priority {
		switch input.Priority {
		case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		default:
			return nil, apierr.Validation(map[string]string{"priority": "priority must be low, medium or high"})
		}
		patch["priority"] = string(input.Priority)
	}
	if input.Notes != "" && input.Notes != current.Notes {
		patch["notes"] = input.Notes
	}
	if input.ScheduledAt != nil && (current.ScheduledAt == nil || !input.ScheduledAt.Equal(*current.ScheduledAt)) {
		patch["scheduled_at"] = input.ScheduledAt.UTC().Format(time.RFC3339)
	}

	return patch, nil
}

// DeleteRequests deletes the given ids, or the current selection when none
// are given. Requests still in flight are refused outright; only completed
// or cancelled ones may be removed.
func (uc *RequestUC) DeleteRequests(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		ids = uc.ctrl.Selected()
	}
	if len(ids) == 0 {
		return nil
	}

	blocked := make(map[string]string)
	for _, item := range uc.ctrl.Snapshot().Items {
		if item.Status == models.RequestCompleted || item.Status == models.RequestCancelled {
			continue
		}
		for _, id := range ids {
			if item.ID == id {
				blocked[id] = fmt.Sprintf("request is %s; only completed or cancelled requests can be deleted", item.Status)
			}
		}
	}
	if len(blocked) > 0 {
		return apierr.Partial("delete", blocked)
	}

	return uc.ctrl.DeleteBatch(ctx, ids)
}

// SelectAllRequests selects or clears every loaded id and returns the
// selection
func (uc *RequestUC) SelectAllRequests(checked bool) []string {
	uc.ctrl.SelectAll(checked)
	return uc.ctrl.Selected()
}

// ToggleRequest flips one id in the selection and returns the selection
func (uc *RequestUC) ToggleRequest(id string) []string {
	uc.ctrl.ToggleSelect(id)
	return uc.ctrl.Selected()
}

// ExportRequests flattens the currently loaded, filtered list for CSV
// download
func (uc *RequestUC) ExportRequests(ctx context.Context) ([]string, [][]string, error) {
	snap := uc.ctrl.Snapshot()
	if snap.Err != nil {
		return nil, nil, snap.Err
	}

	header := []string{"id", "customer", "service", "workshop", "status", "priority", "price", "requested_at"}
	rows := make([][]string, 0, len(snap.Items))
	for _, r := range snap.Items {
		price := ""
		if r.Price != nil {
			price = strconv.FormatFloat(*r.Price, 'f', 2, 64)
		}
		rows = append(rows, []string{
			r.ID,
			r.CustomerName,
			r.ServiceName,
			r.WorkshopName,
			string(r.Status),
			string(r.Priority),
			price,
			utils.FormatTime(r.RequestedAt),
		})
	}
	return header, rows, nil
}
