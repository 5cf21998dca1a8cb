package models

import (
	"time"
)

// ServiceCategory groups catalog entries
type ServiceCategory string

const (
	CategoryMaintenance ServiceCategory = "maintenance"
	CategoryRepair      ServiceCategory = "repair"
	CategoryInspection  ServiceCategory = "inspection"
	CategoryBodywork    ServiceCategory = "bodywork"
	CategoryElectrical  ServiceCategory = "electrical"
	CategoryTires       ServiceCategory = "tires"
	CategoryOther       ServiceCategory = "other"
)

// LocalizedText carries the bilingual fields the catalog requires.
// Both English and Arabic are mandatory on create.
type LocalizedText struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// ServiceType is a catalog entry describing a kind of service a workshop
// can offer
type ServiceType struct {
	ID          string          `json:"id"`
	Name        LocalizedText   `json:"name"`
	Description LocalizedText   `json:"description"`
	Category    ServiceCategory `json:"category"`
	MinPrice    *float64        `json:"min_price,omitempty"`
	MaxPrice    *float64        `json:"max_price,omitempty"`
	DurationMin int             `json:"duration_minutes,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
