package models

import (
	"time"
)

// RequestStatus is the unified service-request lifecycle state
type RequestStatus string

const (
	RequestNew        RequestStatus = "new"
	RequestPending    RequestStatus = "pending"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestCancelled  RequestStatus = "cancelled"
)

// Priority of a service request
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// requestTransitions is the legal status transition table. Cancelled is
// reachable from any non-terminal state.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestNew:        {RequestPending, RequestCancelled},
	RequestPending:    {RequestInProgress, RequestCancelled},
	RequestInProgress: {RequestCompleted, RequestCancelled},
	RequestCompleted:  {},
	RequestCancelled:  {},
}

// CanTransition reports whether a service request may move from one status
// to another.
func CanTransition(from, to RequestStatus) bool {
	for _, next := range requestTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ServiceRequest is a work order linking a customer, a workshop and a
// requested service. Customer and vehicle fields are snapshots taken at
// request time, not live references.
type ServiceRequest struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customer_id"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	Vehicle       *Vehicle      `json:"vehicle,omitempty"`
	ServiceName   string        `json:"service_name"`
	Category      string        `json:"category"`
	Description   string        `json:"description"`
	WorkshopID    string        `json:"workshop_id,omitempty"`
	WorkshopName  string        `json:"workshop_name,omitempty"`
	Status        RequestStatus `json:"status"`
	Priority      Priority      `json:"priority,omitempty"`
	Price         *float64      `json:"price"` // nil until set by the workshop
	Notes         string        `json:"notes"`
	RequestedAt   time.Time     `json:"requested_at"`
	ScheduledAt   *time.Time    `json:"scheduled_at,omitempty"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty"`
}
