package service

import (
	"context"
	"errors"
	"strings"

	"probonex-backend/apperrors"
	"probonex-backend/catalog"
	"probonex-backend/models"

	"github.com/google/uuid"
)

// ProfileService handles onboarding and profile management
type ProfileService struct {
	profiles  ProfileStore
	pastCases PastCaseStore
}

// ProfileServiceOption is a functional option for ProfileService
type ProfileServiceOption func(*ProfileService)

// ProfileWithProfileStore sets the profile store
func ProfileWithProfileStore(store ProfileStore) ProfileServiceOption {
	return func(s *ProfileService) {
		s.profiles = store
	}
}

// ProfileWithPastCaseStore sets the past case store
func ProfileWithPastCaseStore(store PastCaseStore) ProfileServiceOption {
	return func(s *ProfileService) {
		s.pastCases = store
	}
}

// NewProfileService creates a new profile service
func NewProfileService(opts ...ProfileServiceOption) *ProfileService {
	s := &ProfileService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnboardRequest represents the one-time profile creation after signup
type OnboardRequest struct {
	UserID   uuid.UUID
	Role     models.Role
	Username string
	FullName string
	City     string
	State    string

	// Lawyer-only fields
	CongressionalDistrict   string
	Bio                     string
	SpecialtiesConstitution []string
	SpecialtiesUDHR         []string
	ContactEmail            string
	PhoneNumber             string

	Pronouns string
	Website  string
}

// OnboardResult represents the result of onboarding
type OnboardResult struct {
	Profile *models.Profile
}

// Onboard creates the profile for a freshly signed-up user. The role is
// fixed here and cannot be changed afterwards.
func (s *ProfileService) Onboard(ctx context.Context, req OnboardRequest) (*OnboardResult, error) {
	if s.profiles == nil {
		return nil, errors.New("profile store not set")
	}

	if err := validateOnboarding(&req); err != nil {
		return nil, err
	}

	profile := &models.Profile{
		ID:                      req.UserID,
		Role:                    req.Role,
		Username:                strings.TrimSpace(req.Username),
		FullName:                strings.TrimSpace(req.FullName),
		City:                    strings.TrimSpace(req.City),
		State:                   req.State,
		SpecialtiesConstitution: []string{},
		SpecialtiesUDHR:         []string{},
	}
	setOptional(&profile.Pronouns, req.Pronouns)
	setOptional(&profile.Website, req.Website)

	if req.Role == models.RoleLawyer {
		district := req.CongressionalDistrict
		profile.CongressionalDistrict = &district
		bio := req.Bio
		profile.Bio = &bio
		profile.SpecialtiesConstitution = req.SpecialtiesConstitution
		profile.SpecialtiesUDHR = req.SpecialtiesUDHR
		setOptional(&profile.ContactEmail, req.ContactEmail)
		setOptional(&profile.PhoneNumber, req.PhoneNumber)
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	return &OnboardResult{Profile: profile}, nil
}

func validateOnboarding(req *OnboardRequest) error {
	if req.Role != models.RoleLawyer && req.Role != models.RoleVictim {
		return apperrors.New(apperrors.CodeValidation, "role must be lawyer or victim")
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.FullName) == "" {
		return apperrors.New(apperrors.CodeValidation, "username and full name are required")
	}
	if strings.TrimSpace(req.City) == "" {
		return apperrors.New(apperrors.CodeValidation, "city is required")
	}
	state, ok := catalog.StateByCode(req.State)
	if !ok {
		return apperrors.New(apperrors.CodeValidation, "unknown state")
	}
	// Full state names are accepted as input but only the two-letter
	// code is stored; matching compares stored strings exactly.
	req.State = state.Code

	if req.Role != models.RoleLawyer {
		return nil
	}

	if !catalog.ValidDistrict(req.State, req.CongressionalDistrict) {
		return apperrors.New(apperrors.CodeValidation, "invalid congressional district for state")
	}
	if req.PhoneNumber == "" || req.ContactEmail == "" {
		return apperrors.New(apperrors.CodeValidation, "lawyers must provide a phone number and contact email")
	}
	if !strings.Contains(req.ContactEmail, "@") {
		return apperrors.New(apperrors.CodeValidation, "contact email must be a valid email address")
	}
	if len(req.Bio) < models.BioMinLength || len(req.Bio) > models.BioMaxLength {
		return apperrors.New(apperrors.CodeValidation, "bio must be between 50 and 300 characters")
	}
	if len(req.SpecialtiesConstitution) == 0 && len(req.SpecialtiesUDHR) == 0 {
		return apperrors.New(apperrors.CodeValidation, "select at least one violation specialty")
	}
	if err := validateTags(req.SpecialtiesConstitution, req.SpecialtiesUDHR); err != nil {
		return err
	}
	return nil
}

func validateTags(constitution, udhr []string) error {
	for _, tag := range constitution {
		if !catalog.IsConstitutionArticle(tag) {
			return apperrors.New(apperrors.CodeValidation, "unknown constitution violation: "+tag)
		}
	}
	for _, tag := range udhr {
		if !catalog.IsUDHRArticle(tag) {
			return apperrors.New(apperrors.CodeValidation, "unknown UDHR violation: "+tag)
		}
	}
	return nil
}

func setOptional(dst **string, value string) {
	value = strings.TrimSpace(value)
	if value != "" {
		*dst = &value
	}
}

// GetProfile retrieves a profile by ID
func (s *ProfileService) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	if s.profiles == nil {
		return nil, errors.New("profile store not set")
	}
	return s.profiles.GetByID(ctx, id)
}

// PublicProfileResult is a profile together with the lawyer's past
// cases, as shown on the public profile page
type PublicProfileResult struct {
	Profile   *models.Profile
	PastCases []*models.PastCase
}

// GetPublicProfile retrieves a profile by username, with past cases for
// lawyers
func (s *ProfileService) GetPublicProfile(ctx context.Context, username string) (*PublicProfileResult, error) {
	if s.profiles == nil {
		return nil, errors.New("profile store not set")
	}

	profile, err := s.profiles.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	result := &PublicProfileResult{Profile: profile}
	if profile.IsLawyer() && s.pastCases != nil {
		pastCases, err := s.pastCases.ListByLawyer(ctx, profile.ID)
		if err != nil {
			return nil, err
		}
		result.PastCases = pastCases
	}
	return result, nil
}

// UpdateProfileRequest represents an edit to the caller's own profile.
// Role, username and the closed-case counter are immutable.
type UpdateProfileRequest struct {
	UserID   uuid.UUID
	FullName string
	City     string
	State    string

	CongressionalDistrict   string
	Bio                     string
	SpecialtiesConstitution []string
	SpecialtiesUDHR         []string
	ContactEmail            string
	PhoneNumber             string

	Pronouns string
	Website  string
}

// UpdateProfile applies an edit to the caller's profile with the same
// role-specific validation as onboarding
func (s *ProfileService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.Profile, error) {
	if s.profiles == nil {
		return nil, errors.New("profile store not set")
	}

	profile, err := s.profiles.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	onboardingShape := OnboardRequest{
		UserID:                  req.UserID,
		Role:                    profile.Role,
		Username:                profile.Username,
		FullName:                req.FullName,
		City:                    req.City,
		State:                   req.State,
		CongressionalDistrict:   req.CongressionalDistrict,
		Bio:                     req.Bio,
		SpecialtiesConstitution: req.SpecialtiesConstitution,
		SpecialtiesUDHR:         req.SpecialtiesUDHR,
		ContactEmail:            req.ContactEmail,
		PhoneNumber:             req.PhoneNumber,
	}
	if err := validateOnboarding(&onboardingShape); err != nil {
		return nil, err
	}

	profile.FullName = strings.TrimSpace(req.FullName)
	profile.City = strings.TrimSpace(req.City)
	profile.State = onboardingShape.State
	profile.Pronouns = nil
	profile.Website = nil
	setOptional(&profile.Pronouns, req.Pronouns)
	setOptional(&profile.Website, req.Website)

	if profile.IsLawyer() {
		district := req.CongressionalDistrict
		profile.CongressionalDistrict = &district
		bio := req.Bio
		profile.Bio = &bio
		profile.SpecialtiesConstitution = req.SpecialtiesConstitution
		profile.SpecialtiesUDHR = req.SpecialtiesUDHR
		profile.ContactEmail = nil
		profile.PhoneNumber = nil
		setOptional(&profile.ContactEmail, req.ContactEmail)
		setOptional(&profile.PhoneNumber, req.PhoneNumber)
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SetProfilePicture records the stored picture's URL on the profile
func (s *ProfileService) SetProfilePicture(ctx context.Context, userID uuid.UUID, url string) (*models.Profile, error) {
	if s.profiles == nil {
		return nil, errors.New("profile store not set")
	}

	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.ProfilePictureURL = &url
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// AddPastCase records a prior-work entry on the calling lawyer's profile
func (s *ProfileService) AddPastCase(ctx context.Context, pc *models.PastCase) (*models.PastCase, error) {
	if s.profiles == nil || s.pastCases == nil {
		return nil, errors.New("stores not set")
	}

	profile, err := s.profiles.GetByID(ctx, pc.LawyerID)
	if err != nil {
		return nil, err
	}
	if !profile.IsLawyer() {
		return nil, apperrors.New(apperrors.CodeForbidden, "only lawyers can add past cases")
	}
	if strings.TrimSpace(pc.VictimName) == "" || strings.TrimSpace(pc.CaseDescription) == "" || strings.TrimSpace(pc.Location) == "" {
		return nil, apperrors.New(apperrors.CodeValidation, "victim name, description and location are required")
	}

	if err := s.pastCases.Create(ctx, pc); err != nil {
		return nil, err
	}
	return pc, nil
}

// DeletePastCase removes a past case the calling lawyer owns
func (s *ProfileService) DeletePastCase(ctx context.Context, id, lawyerID uuid.UUID) error {
	if s.pastCases == nil {
		return errors.New("past case store not set")
	}
	return s.pastCases.Delete(ctx, id, lawyerID)
}
