package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/karhabty/admin-gateway/internal/pkg/apierr"
	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/logger"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/internal/utils"
)

// validateNewUser checks a registration input client-side. A non-empty map
// fails the create before any network call.
func validateNewUser(input models.User) map[string]string {
	fields := make(map[string]string)

	if !utils.IsValidEmail(input.Email) {
		fields["email"] = "a valid email address is required"
	}
	if ok, _, err := utils.ValidateMSISDN(input.Phone); !ok {
		fields["phone"] = err.Error()
	}
	switch input.Role {
	case models.RoleCustomer, models.RoleWorkshopAdmin, models.RoleWorker, models.RoleSuperAdmin:
	default:
		fields["role"] = "role must be one of customer, workshopAdmin, worker, superadmin"
	}
	if input.NationalID != "" && !utils.IsValidNationalID(input.NationalID) {
		fields["national_id"] = "national id must be 14 digits"
	}
	if input.Vehicle != nil {
		if input.Role != models.RoleCustomer {
			fields["vehicle"] = "only customers can own a vehicle"
		} else if input.Vehicle.VIN != "" && !utils.IsValidVIN(input.Vehicle.VIN) {
			fields["vehicle.vin"] = "vin must be 17 characters without I, O or Q"
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// ListUsers applies the requested pagination/filter state and returns the
// resulting snapshot. A refresh superseded by a newer one is not an error
// for the caller; the snapshot already reflects the newest state.
func (uc *UserUC) ListUsers(ctx context.Context, q collection.Query) (collection.Snapshot[models.User], error) {
	err := uc.ctrl.ApplyQuery(ctx, q)
	if errors.Is(err, collection.ErrStaleFetch) {
		err = nil
	}
	return uc.ctrl.Snapshot(), err
}

// RegisterUser performs the two-phase registration: identity first, profile
// second. When the profile phase fails the identity is NOT rolled back; the
// error names the orphaned identity so support can reconcile it.
func (uc *UserUC) RegisterUser(ctx context.Context, input models.User) (models.User, error) {
	if fields := validateNewUser(input); len(fields) > 0 {
		return models.User{}, apierr.Validation(fields)
	}

	ok, normalized, err := utils.ValidateMSISDN(input.Phone)
	if !ok {
		return models.User{}, apierr.Validation(map[string]string{"phone": err.Error()})
	}
	input.Phone = normalized

	uid, err := uc.gw.CreateIdentity(ctx, input.Email, input.Phone)
	if err != nil {
		return models.User{}, err
	}
	input.AuthUID = uid

	created, err := uc.ctrl.Create(ctx, input)
	if err != nil {
		logger.Error("profile creation failed after identity was created",
			logger.String("auth_uid", uid),
			logger.String("email", input.Email),
			logger.Err(err))
		return models.User{}, apierr.Wrap(apierr.KindUpstream,
			fmt.Sprintf("profile creation failed; identity %s was created and not rolled back", uid), err)
	}
	return created, nil
}

// UpdateUser diffs the input against the current known state of the entity
// and sends only the changed fields, plus the id. An unchanged input is a
// no-op that never reaches the network.
func (uc *UserUC) UpdateUser(ctx context.Context, id string, input models.User) (models.User, error) {
	if id == "" {
		return models.User{}, apierr.New(apierr.KindPrecondition, "id is required for update")
	}

	current, err := uc.currentUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	patch, err := diffUser(current, input)
	if err != nil {
		return models.User{}, err
	}
	if len(patch) == 0 {
		return current, nil
	}
	patch["id"] = id

	return uc.ctrl.Update(ctx, id, patch)
}

// currentUser resolves the entity from the loaded snapshot, falling back to
// a single fetch when the admin edits something not on the current page
func (uc *UserUC) currentUser(ctx context.Context, id string) (models.User, error) {
	for _, item := range uc.ctrl.Snapshot().Items {
		if item.ID == id {
			return item, nil
		}
	}
	return uc.gw.Get(ctx, id)
}

// diffUser builds the wire patch of fields that differ between the current
// entity and the edited input. Phone changes are validated and normalized
// before they are compared.
func diffUser(current, input models.User) (map[string]interface{}, error) {
	patch := make(map[string]interface{})

	if input.Email != "" && input.Email != current.Email {
		if !utils.IsValidEmail(input.Email) {
			return nil, apierr.Validation(map[string]string{"email": "a valid email address is required"})
		}
		patch["email"] = input.Email
	}
	if input.Phone != "" {
		ok, normalized, err := utils.ValidateMSISDN(input.Phone)
		if !ok {
			return nil, apierr.Validation(map[string]string{"phone": err.Error()})
		}
		if normalized != current.Phone {
			patch["phone_number"] = normalized
		}
	}
	if input.NationalID != "" && input.NationalID != current.NationalID {
		if !utils.IsValidNationalID(input.NationalID) {
			return nil, apierr.Validation(map[string]string{"national_id": "national id must be 14 digits"})
		}
		patch["national_id"] = input.NationalID
	}
	if input.FirstName != "" && input.FirstName != current.FirstName {
		patch["first_name"] = input.FirstName
	}
	if input.LastName != "" && input.LastName != current.LastName {
		patch["last_name"] = input.LastName
	}
	if input.Gender != "" && input.Gender != current.Gender {
		patch["gender"] = string(input.Gender)
	}
	if input.Role != "" && input.Role != current.Role {
		patch["role"] = string(input.Role)
	}
	if input.IsActive != current.IsActive {
		patch["is_active"] = input.IsActive
	}
	if input.Labels != nil && !equalLabels(input.Labels, current.Labels) {
		patch["labels"] = input.Labels
	}

	return patch, nil
}

func equalLabels(a, b []string) bool {
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

// DeleteUsers deletes the given ids, or the current selection when none are
// given
func (uc *UserUC) DeleteUsers(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return uc.ctrl.DeleteSelected(ctx)
	}
	return uc.ctrl.DeleteBatch(ctx, ids)
}

// SelectAllUsers selects or clears every loaded id and returns the selection
func (uc *UserUC) SelectAllUsers(checked bool) []string {
	uc.ctrl.SelectAll(checked)
	return uc.ctrl.Selected()
}

// ToggleUser flips one id in the selection and returns the selection
func (uc *UserUC) ToggleUser(id string) []string {
	uc.ctrl.ToggleSelect(id)
	return uc.ctrl.Selected()
}

// ExportUsers flattens the currently loaded, filtered list for CSV download
func (uc *UserUC) ExportUsers(ctx context.Context) ([]string, [][]string, error) {
	snap := uc.ctrl.Snapshot()
	if snap.Err != nil {
		return nil, nil, snap.Err
	}

	header := []string{"id", "email", "phone", "display_name", "role", "active", "labels", "created_at"}
	rows := make([][]string, 0, len(snap.Items))
	for _, u := range snap.Items {
		rows = append(rows, []string{
			u.ID,
			u.Email,
			u.Phone,
			u.DisplayName,
			string(u.Role),
			strconv.FormatBool(u.IsActive),
			strings.Join(u.Labels, "|"),
			utils.FormatTime(u.CreatedAt),
		})
	}
	return header, rows, nil
}
