package service

import (
	"context"
	"errors"
	"time"

	"probonex-backend/apperrors"
	"probonex-backend/metrics"
	"probonex-backend/models"

	"github.com/google/uuid"
)

// Transition names the case lifecycle transitions
type Transition string

const (
	TransitionAssign          Transition = "assign"
	TransitionDecline         Transition = "decline"
	TransitionInitiateClosure Transition = "initiate_closure"
	TransitionConfirmClosure  Transition = "confirm_closure"
	TransitionRejectClosure   Transition = "reject_closure"
	TransitionDirectClose     Transition = "direct_close"
	TransitionDelete          Transition = "delete"
)

// capabilities maps role and transition to the case statuses the
// transition may start from. Both dashboards consult the same table, so
// the victim-facing and lawyer-facing views can never drift apart on
// what a party is allowed to do.
var capabilities = map[models.Role]map[Transition][]models.CaseStatus{
	models.RoleVictim: {
		TransitionInitiateClosure: {models.CaseStatusOpen},
		TransitionConfirmClosure:  {models.CaseStatusPendingClosure},
		TransitionRejectClosure:   {models.CaseStatusPendingClosure},
		TransitionDirectClose:     {models.CaseStatusOpen},
		TransitionDelete:          {models.CaseStatusOpen, models.CaseStatusPendingClosure, models.CaseStatusSuccessfullyClosed, models.CaseStatusClosed},
	},
	models.RoleLawyer: {
		TransitionAssign:          {models.CaseStatusOpen},
		TransitionDecline:         {models.CaseStatusOpen},
		TransitionInitiateClosure: {models.CaseStatusOpen},
		TransitionConfirmClosure:  {models.CaseStatusPendingClosure},
		TransitionRejectClosure:   {models.CaseStatusPendingClosure},
		TransitionDirectClose:     {models.CaseStatusOpen},
		TransitionDelete:          {models.CaseStatusOpen, models.CaseStatusPendingClosure, models.CaseStatusSuccessfullyClosed, models.CaseStatusClosed},
	},
}

func transitionAllowed(role models.Role, transition Transition, status models.CaseStatus) bool {
	for _, s := range capabilities[role][transition] {
		if s == status {
			return true
		}
	}
	return false
}

// LifecycleService is the single owner of case status transitions and
// request acceptance. Every transition is authorized against the
// freshly loaded case, then committed through a conditional store
// operation that re-checks the source state.
type LifecycleService struct {
	cases    CaseStore
	requests CaseRequestStore
	now      func() time.Time
}

// LifecycleServiceOption is a functional option for LifecycleService
type LifecycleServiceOption func(*LifecycleService)

// LifecycleWithCaseStore sets the case store
func LifecycleWithCaseStore(store CaseStore) LifecycleServiceOption {
	return func(s *LifecycleService) {
		s.cases = store
	}
}

// LifecycleWithRequestStore sets the case request store
func LifecycleWithRequestStore(store CaseRequestStore) LifecycleServiceOption {
	return func(s *LifecycleService) {
		s.requests = store
	}
}

// LifecycleWithClock overrides the closed_at clock in tests
func LifecycleWithClock(now func() time.Time) LifecycleServiceOption {
	return func(s *LifecycleService) {
		s.now = now
	}
}

// NewLifecycleService creates a new lifecycle service
func NewLifecycleService(opts ...LifecycleServiceOption) *LifecycleService {
	s := &LifecycleService{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func observe(transition Transition, err error) {
	outcome := metrics.OutcomeOK
	switch {
	case err == nil:
	case apperrors.HasCode(err, apperrors.CodeConflict):
		outcome = metrics.OutcomeConflict
	case apperrors.HasCode(err, apperrors.CodeForbidden):
		outcome = metrics.OutcomeForbidden
	default:
		outcome = metrics.OutcomeError
	}
	metrics.CaseTransitions.WithLabelValues(string(transition), outcome).Inc()
}

// authorize loads the case and verifies the party may attempt the
// transition. The store's conditional update remains the final word on
// the source state; this check produces the right error category for
// non-participants and obviously-wrong states before any write.
func (s *LifecycleService) authorize(ctx context.Context, caseID, partyID uuid.UUID, transition Transition) (*models.Case, error) {
	c, err := s.cases.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if !c.IsParticipant(partyID) {
		return nil, apperrors.New(apperrors.CodeForbidden, "not a participant in this case")
	}

	role := models.RoleVictim
	if c.AssignedLawyerID != nil && *c.AssignedLawyerID == partyID {
		role = models.RoleLawyer
	}
	if !transitionAllowed(role, transition, c.Status) {
		return nil, apperrors.New(apperrors.CodeConflict, "case status does not allow this action")
	}
	return c, nil
}

// AcceptRequest assigns the calling lawyer to the case behind a pending
// request. The assignment and the request-status change commit together
// or not at all; losing the race to another lawyer is a conflict.
func (s *LifecycleService) AcceptRequest(ctx context.Context, requestID, lawyerID uuid.UUID) (err error) {
	defer func() { observe(TransitionAssign, err) }()
	if s.requests == nil {
		return errors.New("request store not set")
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.LawyerID != lawyerID {
		return apperrors.New(apperrors.CodeForbidden, "request belongs to another lawyer")
	}
	return s.requests.Accept(ctx, requestID, req.CaseID, lawyerID)
}

// DeclineRequest rejects a pending request addressed to the calling
// lawyer
func (s *LifecycleService) DeclineRequest(ctx context.Context, requestID, lawyerID uuid.UUID) (err error) {
	defer func() { observe(TransitionDecline, err) }()
	if s.requests == nil {
		return errors.New("request store not set")
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.LawyerID != lawyerID {
		return apperrors.New(apperrors.CodeForbidden, "request belongs to another lawyer")
	}
	return s.requests.Decline(ctx, requestID)
}

// InitiateClosure moves an open, assigned case to pending_closure on
// behalf of either participant and records who asked
func (s *LifecycleService) InitiateClosure(ctx context.Context, caseID, partyID uuid.UUID) (err error) {
	defer func() { observe(TransitionInitiateClosure, err) }()
	if s.cases == nil {
		return errors.New("case store not set")
	}

	c, err := s.authorize(ctx, caseID, partyID, TransitionInitiateClosure)
	if err != nil {
		return err
	}
	if c.AssignedLawyerID == nil {
		return apperrors.New(apperrors.CodeConflict, "closure requires an assigned lawyer")
	}
	return s.cases.BeginClosure(ctx, caseID, partyID)
}

// ConfirmClosure completes a pending closure as the non-initiating
// party. The counters on both profiles move exactly once per case,
// inside the same commit as the status change.
func (s *LifecycleService) ConfirmClosure(ctx context.Context, caseID, partyID uuid.UUID) (err error) {
	defer func() { observe(TransitionConfirmClosure, err) }()
	if s.cases == nil {
		return errors.New("case store not set")
	}

	c, err := s.authorize(ctx, caseID, partyID, TransitionConfirmClosure)
	if err != nil {
		return err
	}
	if c.ClosureInitiatedBy != nil && *c.ClosureInitiatedBy == partyID {
		return apperrors.New(apperrors.CodeConflict, "the initiating party cannot confirm its own closure")
	}
	return s.cases.FinalizeClosure(ctx, caseID, partyID, s.now())
}

// RejectClosure declines a pending closure as the non-initiating party;
// the case returns to open with its assignment intact
func (s *LifecycleService) RejectClosure(ctx context.Context, caseID, partyID uuid.UUID) (err error) {
	defer func() { observe(TransitionRejectClosure, err) }()
	if s.cases == nil {
		return errors.New("case store not set")
	}

	c, err := s.authorize(ctx, caseID, partyID, TransitionRejectClosure)
	if err != nil {
		return err
	}
	if c.ClosureInitiatedBy != nil && *c.ClosureInitiatedBy == partyID {
		return apperrors.New(apperrors.CodeConflict, "the initiating party cannot reject its own closure")
	}
	return s.cases.ReopenFromClosure(ctx, caseID, partyID)
}

// DirectClose unilaterally closes an open case without the mutual
// protocol. No counters move; the terminal state is closed, not
// successfully_closed. A case in pending_closure must exit via confirm
// or reject first.
func (s *LifecycleService) DirectClose(ctx context.Context, caseID, partyID uuid.UUID) (err error) {
	defer func() { observe(TransitionDirectClose, err) }()
	if s.cases == nil {
		return errors.New("case store not set")
	}

	if _, err = s.authorize(ctx, caseID, partyID, TransitionDirectClose); err != nil {
		return err
	}
	return s.cases.CloseDirect(ctx, caseID, s.now())
}

// DeleteCase permanently removes a case on behalf of either participant
func (s *LifecycleService) DeleteCase(ctx context.Context, caseID, partyID uuid.UUID) (err error) {
	defer func() { observe(TransitionDelete, err) }()
	if s.cases == nil {
		return errors.New("case store not set")
	}

	if _, err = s.authorize(ctx, caseID, partyID, TransitionDelete); err != nil {
		return err
	}
	return s.cases.Delete(ctx, caseID)
}

// PendingRequests lists the calling lawyer's pending case requests
func (s *LifecycleService) PendingRequests(ctx context.Context, lawyerID uuid.UUID) ([]*models.CaseRequest, error) {
	if s.requests == nil {
		return nil, errors.New("request store not set")
	}
	return s.requests.ListPendingByLawyer(ctx, lawyerID)
}
