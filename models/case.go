package models

import (
	"time"

	"github.com/google/uuid"
)

// CaseStatus represents the lifecycle status of a case
type CaseStatus string

const (
	CaseStatusOpen               CaseStatus = "open"
	CaseStatusPendingClosure     CaseStatus = "pending_closure"
	CaseStatusSuccessfullyClosed CaseStatus = "successfully_closed"
	CaseStatusClosed             CaseStatus = "closed"
)

// Case represents a victim's logged grievance. Assignment is orthogonal
// to status: an open case may or may not have a lawyer yet.
type Case struct {
	ID       uuid.UUID `json:"id"`
	VictimID uuid.UUID `json:"victim_id"`

	Title                 string `json:"title"`
	Description           string `json:"description"`
	State                 string `json:"state"`
	CongressionalDistrict string `json:"congressional_district"`

	ConstitutionViolations []string `json:"constitution_violations"`
	UDHRViolations         []string `json:"udhr_violations"`

	Status           CaseStatus `json:"status"`
	AssignedLawyerID *uuid.UUID `json:"assigned_lawyer_id,omitempty"`

	// Set while status is pending_closure; must be the victim or the
	// assigned lawyer
	ClosureInitiatedBy *uuid.UUID `json:"closure_initiated_by,omitempty"`

	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Populated on dashboard reads: the other party's public profile
	Counterpart *Profile `json:"counterpart,omitempty"`
}

// IsParticipant reports whether the given party is the victim or the
// assigned lawyer on this case
func (c *Case) IsParticipant(partyID uuid.UUID) bool {
	if c.VictimID == partyID {
		return true
	}
	return c.AssignedLawyerID != nil && *c.AssignedLawyerID == partyID
}
