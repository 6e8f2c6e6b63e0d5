package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the fixed role a profile takes on during onboarding
type Role string

const (
	RoleLawyer Role = "lawyer"
	RoleVictim Role = "victim"
)

// Bio length bounds for lawyer profiles
const (
	BioMinLength = 50
	BioMaxLength = 300
)

// Profile represents a public user profile. The ID is shared with the
// authentication user. Lawyers carry location, specialties and a bio;
// victims carry only the common fields.
type Profile struct {
	ID       uuid.UUID `json:"id"`
	Role     Role      `json:"role"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
	City     string    `json:"city"`
	State    string    `json:"state"`

	// Lawyer-only fields
	CongressionalDistrict   *string  `json:"congressional_district,omitempty"`
	Bio                     *string  `json:"bio,omitempty"`
	SpecialtiesConstitution []string `json:"specialties_constitution"`
	SpecialtiesUDHR         []string `json:"specialties_udhr"`

	Pronouns          *string `json:"pronouns,omitempty"`
	ContactEmail      *string `json:"contact_email,omitempty"`
	PhoneNumber       *string `json:"phone_number,omitempty"`
	Website           *string `json:"website,omitempty"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`

	// Incremented only by mutual case closure, never decremented
	SuccessfullyClosedCount int `json:"successfully_closed_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsLawyer reports whether the profile belongs to a lawyer
func (p *Profile) IsLawyer() bool {
	return p.Role == RoleLawyer
}
