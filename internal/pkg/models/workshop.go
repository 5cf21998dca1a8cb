package models

import (
	"time"
)

// OperatingStatus is the live open/busy/closed state of a workshop
type OperatingStatus string

const (
	OperatingOpen   OperatingStatus = "open"
	OperatingBusy   OperatingStatus = "busy"
	OperatingClosed OperatingStatus = "closed"
)

// ApprovalStatus tracks the workshop through marketplace onboarding
type ApprovalStatus string

const (
	ApprovalPending     ApprovalStatus = "pending"
	ApprovalActive      ApprovalStatus = "active"
	ApprovalDeactivated ApprovalStatus = "deactivated"
)

// approvalTransitions lists the allowed admin approval changes. A pending
// workshop can be approved or rejected; an active one deactivated; a
// deactivated one reinstated.
var approvalTransitions = map[ApprovalStatus][]ApprovalStatus{
	ApprovalPending:     {ApprovalActive, ApprovalDeactivated},
	ApprovalActive:      {ApprovalDeactivated},
	ApprovalDeactivated: {ApprovalActive},
}

// CanChangeApproval reports whether an admin may move a workshop from one
// approval status to another.
func CanChangeApproval(from, to ApprovalStatus) bool {
	for _, next := range approvalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// PhoneNumber is one entry in a workshop's ordered phone list.
// Exactly one entry should be primary at a time.
type PhoneNumber struct {
	Number   string `json:"number"`
	Type     string `json:"type"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// Workshop represents a service-provider location
type Workshop struct {
	ID          string          `json:"id"`
	ParentID    string          `json:"parent_id,omitempty"`
	OwnerID     string          `json:"owner_id"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	Latitude    *float64        `json:"latitude"`
	Longitude   *float64        `json:"longitude"`
	Geohash     string          `json:"geohash,omitempty"`
	Phones      []PhoneNumber   `json:"phones"`
	Operating   OperatingStatus `json:"operating_status"`
	Approval    ApprovalStatus  `json:"approval_status"`
	Services    []string        `json:"services"`
	Labels      []string        `json:"labels"`
	Rating      float64         `json:"rating"`
	ReviewCount int             `json:"review_count"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// PrimaryPhone returns the primary phone entry, or the first one when the
// upstream record carries none flagged primary.
func (w *Workshop) PrimaryPhone() *PhoneNumber {
	for i := range w.Phones {
		if w.Phones[i].Primary {
			return &w.Phones[i]
		}
	}
	if len(w.Phones) > 0 {
		return &w.Phones[0]
	}
	return nil
}
