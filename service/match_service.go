package service

import (
	"context"
	"errors"

	"probonex-backend/apperrors"
	"probonex-backend/matching"
	"probonex-backend/metrics"
	"probonex-backend/models"

	"github.com/google/uuid"
)

// MatchService runs the find-lawyers flow: rank eligible lawyers for a
// case and send requests to chosen ones
type MatchService struct {
	cases    CaseStore
	profiles ProfileStore
	requests CaseRequestStore
}

// MatchServiceOption is a functional option for MatchService
type MatchServiceOption func(*MatchService)

// MatchWithCaseStore sets the case store
func MatchWithCaseStore(store CaseStore) MatchServiceOption {
	return func(s *MatchService) {
		s.cases = store
	}
}

// MatchWithProfileStore sets the profile store
func MatchWithProfileStore(store ProfileStore) MatchServiceOption {
	return func(s *MatchService) {
		s.profiles = store
	}
}

// MatchWithRequestStore sets the case request store
func MatchWithRequestStore(store CaseRequestStore) MatchServiceOption {
	return func(s *MatchService) {
		s.requests = store
	}
}

// NewMatchService creates a new match service
func NewMatchService(opts ...MatchServiceOption) *MatchService {
	s := &MatchService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindLawyersResult carries the ranked lawyers for a case plus the
// lawyers the victim has already requested, so the view can mark them
type FindLawyersResult struct {
	Case               *models.Case
	Matches            []matching.Match
	RequestedLawyerIDs []uuid.UUID
}

// FindLawyers ranks the lawyers eligible for the victim's case. An
// empty ranking is a normal outcome meaning nobody in the case's
// district matches its violations.
func (s *MatchService) FindLawyers(ctx context.Context, caseID, victimID uuid.UUID) (*FindLawyersResult, error) {
	if s.cases == nil || s.profiles == nil || s.requests == nil {
		return nil, errors.New("stores not set")
	}

	c, err := s.cases.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c.VictimID != victimID {
		return nil, apperrors.New(apperrors.CodeForbidden, "only the case owner can browse lawyers")
	}

	pool, err := s.profiles.ListLawyersByLocation(ctx, c.State, c.CongressionalDistrict)
	if err != nil {
		return nil, err
	}
	ranked := matching.Rank(c, pool)

	requested, err := s.requests.ListRequestedLawyerIDs(ctx, caseID)
	if err != nil {
		return nil, err
	}

	metrics.MatchQueries.Inc()
	metrics.MatchCandidates.Observe(float64(len(ranked)))

	return &FindLawyersResult{Case: c, Matches: ranked, RequestedLawyerIDs: requested}, nil
}

// RequestLawyer sends a case request to a lawyer on behalf of the
// victim who owns the case. At most five requests may be pending per
// case; the store enforces the cap on insert.
func (s *MatchService) RequestLawyer(ctx context.Context, caseID, victimID, lawyerID uuid.UUID) (*models.CaseRequest, error) {
	if s.cases == nil || s.profiles == nil || s.requests == nil {
		return nil, errors.New("stores not set")
	}

	c, err := s.cases.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c.VictimID != victimID {
		return nil, apperrors.New(apperrors.CodeForbidden, "only the case owner can request lawyers")
	}
	if c.Status != models.CaseStatusOpen || c.AssignedLawyerID != nil {
		return nil, apperrors.New(apperrors.CodeConflict, "case is not open for requests")
	}

	lawyer, err := s.profiles.GetByID(ctx, lawyerID)
	if err != nil {
		return nil, err
	}
	if !lawyer.IsLawyer() {
		return nil, apperrors.New(apperrors.CodeValidation, "requested profile is not a lawyer")
	}

	req := &models.CaseRequest{CaseID: caseID, LawyerID: lawyerID}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}
