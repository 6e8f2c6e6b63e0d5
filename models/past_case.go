package models

import (
	"time"

	"github.com/google/uuid"
)

// PastCase is a lawyer-authored entry about prior work, shown on the
// lawyer's public profile. Unrelated to the Case lifecycle.
type PastCase struct {
	ID              uuid.UUID  `json:"id"`
	LawyerID        uuid.UUID  `json:"lawyer_id"`
	VictimName      string     `json:"victim_name"`
	CaseDescription string     `json:"case_description"`
	Location        string     `json:"location"`
	Outcome         *string    `json:"outcome,omitempty"`
	DateCompleted   *time.Time `json:"date_completed,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
