package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus represents the status of a case request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusRejected RequestStatus = "rejected"
	RequestStatusAccepted RequestStatus = "accepted"
)

// MaxPendingRequestsPerCase caps how many lawyers a victim may have
// outstanding requests to for a single case
const MaxPendingRequestsPerCase = 5

// CaseRequest represents a victim-initiated invitation for a specific
// lawyer to take a case
type CaseRequest struct {
	ID        uuid.UUID     `json:"id"`
	CaseID    uuid.UUID     `json:"case_id"`
	LawyerID  uuid.UUID     `json:"lawyer_id"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	// Populated on lawyer dashboard reads
	Case *Case `json:"case,omitempty"`
}
