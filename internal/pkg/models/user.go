package models

import (
	"time"
)

// UserRole identifies what a user can do on the marketplace
type UserRole string

const (
	RoleCustomer      UserRole = "customer"
	RoleWorkshopAdmin UserRole = "workshopAdmin"
	RoleWorker        UserRole = "worker"
	RoleSuperAdmin    UserRole = "superadmin"
)

// Gender as recorded on the user profile
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// DefaultAvatarURL is substituted when a profile has no picture
const DefaultAvatarURL = "https://cdn.karhabty.com/assets/avatar-placeholder.png"

// User represents a marketplace user profile. AuthUID is the identity
// provider's id from the first phase of registration; the upstream profile
// id stays the canonical one.
type User struct {
	ID          string    `json:"id"`
	AuthUID     string    `json:"auth_uid,omitempty"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	NationalID  string    `json:"national_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DisplayName string    `json:"display_name"`
	Gender      Gender    `json:"gender"`
	Role        UserRole  `json:"role"`
	AvatarURL   string    `json:"avatar_url"`
	IsActive    bool      `json:"is_active"`
	Labels      []string  `json:"labels"`
	Vehicle     *Vehicle  `json:"vehicle,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Vehicle is the customer-owned vehicle sub-record. It is only meaningful
// when the owning user's role is customer.
type Vehicle struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"license_plate"`
	VIN          string `json:"vin"`
	BodyType     string `json:"body_type"`
	Turbo        bool   `json:"turbo"`
	Exotic       bool   `json:"exotic"`
}
