package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactInformation holds the contact details a lawyer shares with the
// victim once assigned to a case. One row per case.
type ContactInformation struct {
	ID          uuid.UUID `json:"id"`
	CaseID      uuid.UUID `json:"case_id"`
	LawyerID    uuid.UUID `json:"lawyer_id"`
	VictimID    uuid.UUID `json:"victim_id"`
	Email       *string   `json:"email,omitempty"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
