package gateway

import (
	"context"
	"time"

	"github.com/karhabty/admin-gateway/internal/pkg/apierr"
	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	httpclient "github.com/karhabty/admin-gateway/internal/pkg/http"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
)

// userRecord is the upstream wire shape of a user profile. Optional fields
// are pointers or zero values; mapUser supplies the defaults.
type userRecord struct {
	ID             string         `json:"id"`
	Email          string         `json:"email"`
	PhoneNumber    string         `json:"phone_number"`
	NationalID     string         `json:"national_id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Gender         string         `json:"gender"`
	Role           string         `json:"role"`
	ProfilePicture string         `json:"profile_picture"`
	IsActive       *bool          `json:"is_active"`
	Labels         []string       `json:"labels"`
	Vehicle        *vehicleRecord `json:"vehicle"`
	CreatedAt      string         `json:"created_at"`
	UpdatedAt      string         `json:"updated_at"`
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

type userListResponse struct {
	Data  []userRecord `json:"data"`
	Total int          `json:"total"`
}

// createUserRequest is the profile creation payload. AuthUID links the
// profile to the identity created in phase one.
type createUserRequest struct {
	AuthUID     string         `json:"auth_uid"`
	Email       string         `json:"email"`
	PhoneNumber string         `json:"phone_number"`
	NationalID  string         `json:"national_id,omitempty"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	Gender      string         `json:"gender,omitempty"`
	Role        string         `json:"role"`
	Labels      []string       `json:"labels"`
	Vehicle     *vehicleRecord `json:"vehicle,omitempty"`
}

type identityRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type identityResponse struct {
	UID string `json:"uid"`
}

// mapUser converts an upstream record into the domain entity. Every domain
// field gets a defined value: missing pictures fall back to the placeholder,
// missing labels to an empty set, missing active flags to true. A record
// without an id is rejected outright.
func mapUser(rec userRecord) (models.User, error) {
	if rec.ID == "" {
		return models.User{}, apierr.New(apierr.KindDecode, "user record missing id")
	}

	user := models.User{
		ID:         rec.ID,
		Email:      rec.Email,
		Phone:      rec.PhoneNumber,
		NationalID: rec.NationalID,
		FirstName:  rec.FirstName,
		LastName:   rec.LastName,
		Gender:     models.Gender(rec.Gender),
		Role:       models.UserRole(rec.Role),
		AvatarURL:  rec.ProfilePicture,
		IsActive:   true,
		Labels:     rec.Labels,
		CreatedAt:  parseTime(rec.CreatedAt),
		UpdatedAt:  parseTime(rec.UpdatedAt),
	}

	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	if user.AvatarURL == "" {
		user.AvatarURL = models.DefaultAvatarURL
	}
	if user.Labels == nil {
		user.Labels = []string{}
	}
	if rec.IsActive != nil {
		user.IsActive = *rec.IsActive
	}

	user.DisplayName = displayName(rec.FirstName, rec.LastName, rec.Email)

	if rec.Vehicle != nil {
		user.Vehicle = &models.Vehicle{
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

	return user, nil
}

func displayName(first, last, email string) string {
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	case last != "":
		return last
	default:
		return email
	}
}

// parseTime decodes an upstream timestamp, tolerating absent or malformed
// values as the zero time
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

func encodeVehicle(v *models.Vehicle) *vehicleRecord {
	if v == nil {
		return nil
	}
	return &vehicleRecord{
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		LicensePlate: v.LicensePlate,
		VIN:          v.VIN,
		BodyType:     v.BodyType,
		Turbo:        v.Turbo,
		Exotic:       v.Exotic,
	}
}

// List fetches one page of user profiles
func (g *UserGW) List(ctx context.Context, q collection.Query) (collection.Page[models.User], error) {
	params := httpclient.ListParams{Page: q.Page, PageSize: q.PageSize, Filters: q.Filters}

	var resp userListResponse
	if err := g.api.Get(ctx, "/users", params.Values(), &resp); err != nil {
		return collection.Page[models.User]{}, err
	}

	items := make([]models.User, 0, len(resp.Data))
	for _, rec := range resp.Data {
		user, err := mapUser(rec)
		if err != nil {
			return collection.Page[models.User]{}, err
		}
		items = append(items, user)
	}

	return collection.Page[models.User]{Items: items, Total: resp.Total}, nil
}

// Get fetches a single user profile
func (g *UserGW) Get(ctx context.Context, id string) (models.User, error) {
	var rec userRecord
	if err := g.api.Get(ctx, "/users/"+id, nil, &rec); err != nil {
		return models.User{}, err
	}
	return mapUser(rec)
}

// Create creates the profile upstream (phase two of registration)
func (g *UserGW) Create(ctx context.Context, input models.User) (models.User, error) {
	req := createUserRequest{
		AuthUID:     input.AuthUID,
		Email:       input.Email,
		PhoneNumber: input.Phone,
		NationalID:  input.NationalID,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Gender:      string(input.Gender),
		Role:        string(input.Role),
		Labels:      input.Labels,
		Vehicle:     encodeVehicle(input.Vehicle),
	}
	if req.Labels == nil {
		req.Labels = []string{}
	}

	var rec userRecord
	if err := g.api.Post(ctx, "/users", req, &rec); err != nil {
		return models.User{}, err
	}
	return mapUser(rec)
}

// Update patches a user profile with the given changed fields
func (g *UserGW) Update(ctx context.Context, id string, patch map[string]interface{}) (models.User, error) {
	var rec userRecord
	if err := g.api.Patch(ctx, "/users/"+id, patch, &rec); err != nil {
		return models.User{}, err
	}
	return mapUser(rec)
}

// Delete removes a user profile
func (g *UserGW) Delete(ctx context.Context, id string) error {
	return g.api.Delete(ctx, "/users/"+id)
}

// CreateIdentity registers the user at the identity provider and returns the
// new identity uid
func (g *UserGW) CreateIdentity(ctx context.Context, email, phone string) (string, error) {
	if g.identity == nil {
		return "", apierr.New(apierr.KindConfig, "identity provider is not configured")
	}

	var resp identityResponse
	err := g.identity.Post(ctx, "/identities", identityRequest{Email: email, PhoneNumber: phone}, &resp)
	if err != nil {
		return "", err
	}
	if resp.UID == "" {
		return "", apierr.New(apierr.KindDecode, "identity response missing uid")
	}
	return resp.UID, nil
}
