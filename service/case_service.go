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

// CaseService handles case creation and dashboard reads
type CaseService struct {
	cases    CaseStore
	profiles ProfileStore
}

// CaseServiceOption is a functional option for CaseService
type CaseServiceOption func(*CaseService)

// CaseWithCaseStore sets the case store
func CaseWithCaseStore(store CaseStore) CaseServiceOption {
	return func(s *CaseService) {
		s.cases = store
	}
}

// CaseWithProfileStore sets the profile store
func CaseWithProfileStore(store ProfileStore) CaseServiceOption {
	return func(s *CaseService) {
		s.profiles = store
	}
}

// NewCaseService creates a new case service
func NewCaseService(opts ...CaseServiceOption) *CaseService {
	s := &CaseService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateCaseRequest represents a victim logging a new case
type CreateCaseRequest struct {
	VictimID               uuid.UUID
	Title                  string
	Description            string
	State                  string
	CongressionalDistrict  string
	ConstitutionViolations []string
	UDHRViolations         []string
}

// CreateCaseResult represents the result of creating a case
type CreateCaseResult struct {
	Case *models.Case
}

// CreateCase validates and persists a new case with status open. A case
// must allege at least one violation from either catalog.
func (s *CaseService) CreateCase(ctx context.Context, req CreateCaseRequest) (*CreateCaseResult, error) {
	if s.cases == nil || s.profiles == nil {
		return nil, errors.New("stores not set")
	}

	profile, err := s.profiles.GetByID(ctx, req.VictimID)
	if err != nil {
		return nil, err
	}
	if profile.Role != models.RoleVictim {
		return nil, apperrors.New(apperrors.CodeForbidden, "only victims can create cases")
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.New(apperrors.CodeValidation, "title and description are required")
	}
	state, ok := catalog.StateByCode(req.State)
	if !ok {
		return nil, apperrors.New(apperrors.CodeValidation, "unknown state")
	}
	if !catalog.ValidDistrict(state.Code, req.CongressionalDistrict) {
		return nil, apperrors.New(apperrors.CodeValidation, "invalid congressional district for state")
	}
	if len(req.ConstitutionViolations) == 0 && len(req.UDHRViolations) == 0 {
		return nil, apperrors.New(apperrors.CodeValidation, "select at least one violation from Constitution or UDHR")
	}
	if err := validateTags(req.ConstitutionViolations, req.UDHRViolations); err != nil {
		return nil, err
	}

	c := &models.Case{
		VictimID:               req.VictimID,
		Title:                  strings.TrimSpace(req.Title),
		Description:            strings.TrimSpace(req.Description),
		State:                  state.Code,
		CongressionalDistrict:  req.CongressionalDistrict,
		ConstitutionViolations: req.ConstitutionViolations,
		UDHRViolations:         req.UDHRViolations,
	}
	if err := s.cases.Create(ctx, c); err != nil {
		return nil, err
	}
	return &CreateCaseResult{Case: c}, nil
}

// GetCase retrieves a case visible to the calling participant
func (s *CaseService) GetCase(ctx context.Context, caseID, partyID uuid.UUID) (*models.Case, error) {
	if s.cases == nil {
		return nil, errors.New("case store not set")
	}

	c, err := s.cases.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if !c.IsParticipant(partyID) {
		return nil, apperrors.New(apperrors.CodeForbidden, "not a participant in this case")
	}
	return c, nil
}

// DashboardResult groups a party's cases the way both dashboards show
// them: active (open or pending closure) and successfully closed
type DashboardResult struct {
	Active []*models.Case
	Closed []*models.Case
}

// Dashboard lists the caller's cases by role: a victim sees cases they
// own, a lawyer sees cases assigned to them
func (s *CaseService) Dashboard(ctx context.Context, partyID uuid.UUID) (*DashboardResult, error) {
	if s.cases == nil || s.profiles == nil {
		return nil, errors.New("stores not set")
	}

	profile, err := s.profiles.GetByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	active := []models.CaseStatus{models.CaseStatusOpen, models.CaseStatusPendingClosure}
	closed := []models.CaseStatus{models.CaseStatusSuccessfullyClosed}

	var activeCases, closedCases []*models.Case
	if profile.IsLawyer() {
		activeCases, err = s.cases.ListByLawyer(ctx, partyID, active)
		if err == nil {
			closedCases, err = s.cases.ListByLawyer(ctx, partyID, closed)
		}
	} else {
		activeCases, err = s.cases.ListByVictim(ctx, partyID, active)
		if err == nil {
			closedCases, err = s.cases.ListByVictim(ctx, partyID, closed)
		}
	}
	if err != nil {
		return nil, err
	}
	return &DashboardResult{Active: activeCases, Closed: closedCases}, nil
}
