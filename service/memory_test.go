package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"probonex-backend/apperrors"
	"probonex-backend/models"

	"github.com/google/uuid"
)

// memoryStore is an in-memory implementation of every store interface,
// mirroring the conditional-update semantics of the Postgres
// repositories. One mutex plays the role of the database's atomicity,
// which keeps the accept race observable in tests.
type memoryStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*models.User
	profiles map[uuid.UUID]*models.Profile
	cases    map[uuid.UUID]*models.Case
	requests map[uuid.UUID]*models.CaseRequest
	contacts map[uuid.UUID]*models.ContactInformation
	past     map[uuid.UUID]*models.PastCase
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:    make(map[uuid.UUID]*models.User),
		profiles: make(map[uuid.UUID]*models.Profile),
		cases:    make(map[uuid.UUID]*models.Case),
		requests: make(map[uuid.UUID]*models.CaseRequest),
		contacts: make(map[uuid.UUID]*models.ContactInformation),
		past:     make(map[uuid.UUID]*models.PastCase),
	}
}

// --- UserStore ---

func (m *memoryStore) Create(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return apperrors.New(apperrors.CodeConflict, "email already registered")
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *memoryStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, "user not found")
	}
	out := *u
	return &out, nil
}

func (m *memoryStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, apperrors.New(apperrors.CodeNotFound, "user not found")
}

func (m *memoryStore) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return apperrors.New(apperrors.CodeNotFound, "user not found")
	}
	u.PasswordHash = passwordHash
	return nil
}

// profileStore adapts memoryStore to ProfileStore; a separate type is
// needed because UserStore and ProfileStore both declare Create/GetByID
type profileStore struct{ m *memoryStore }

func (s profileStore) Create(ctx context.Context, p *models.Profile) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, existing := range s.m.profiles {
		if strings.EqualFold(existing.Username, p.Username) {
			return apperrors.New(apperrors.CodeConflict, "username already taken")
		}
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	stored := *p
	s.m.profiles[p.ID] = &stored
	return nil
}

func (s profileStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	p, ok := s.m.profiles[id]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, "profile not found")
	}
	out := *p
	return &out, nil
}

func (s profileStore) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, p := range s.m.profiles {
		if p.Username == username {
			out := *p
			return &out, nil
		}
	}
	return nil, apperrors.New(apperrors.CodeNotFound, "profile not found")
}

func (s profileStore) Update(ctx context.Context, p *models.Profile) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	existing, ok := s.m.profiles[p.ID]
	if !ok {
		return apperrors.New(apperrors.CodeNotFound, "profile not found")
	}
	updated := *p
	updated.Role = existing.Role
	updated.SuccessfullyClosedCount = existing.SuccessfullyClosedCount
	updated.UpdatedAt = time.Now()
	s.m.profiles[p.ID] = &updated
	return nil
}

func (s profileStore) ListLawyersByLocation(ctx context.Context, state, district string) ([]*models.Profile, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []*models.Profile
	for _, p := range s.m.profiles {
		if p.Role != models.RoleLawyer || p.State != state {
			continue
		}
		if p.CongressionalDistrict == nil || *p.CongressionalDistrict != district {
			continue
		}
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

// caseStore adapts memoryStore to CaseStore
type caseStore struct{ m *memoryStore }

func (s caseStore) Create(ctx context.Context, c *models.Case) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	c.ID = uuid.New()
	c.Status = models.CaseStatusOpen
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	stored := *c
	s.m.cases[c.ID] = &stored
	return nil
}

func (s caseStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	c, ok := s.m.cases[id]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, "case not found")
	}
	out := *c
	return &out, nil
}

func (s caseStore) list(partyID uuid.UUID, statuses []models.CaseStatus, byLawyer bool) []*models.Case {
	var out []*models.Case
	for _, c := range s.m.cases {
		if byLawyer {
			if c.AssignedLawyerID == nil || *c.AssignedLawyerID != partyID {
				continue
			}
		} else if c.VictimID != partyID {
			continue
		}
		for _, st := range statuses {
			if c.Status == st {
				copied := *c
				out = append(out, &copied)
				break
			}
		}
	}
	return out
}

func (s caseStore) ListByVictim(ctx context.Context, victimID uuid.UUID, statuses []models.CaseStatus) ([]*models.Case, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.list(victimID, statuses, false), nil
}

func (s caseStore) ListByLawyer(ctx context.Context, lawyerID uuid.UUID, statuses []models.CaseStatus) ([]*models.Case, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.list(lawyerID, statuses, true), nil
}

func (s caseStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.cases[id]; !ok {
		return apperrors.New(apperrors.CodeNotFound, "case not found")
	}
	delete(s.m.cases, id)
	return nil
}

func (s caseStore) BeginClosure(ctx context.Context, caseID, initiatorID uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	c, ok := s.m.cases[caseID]
	if !ok || c.Status != models.CaseStatusOpen || c.AssignedLawyerID == nil {
		return apperrors.New(apperrors.CodeConflict, "case is not open with an assigned lawyer")
	}
	c.Status = models.CaseStatusPendingClosure
	initiator := initiatorID
	c.ClosureInitiatedBy = &initiator
	return nil
}

func (s caseStore) FinalizeClosure(ctx context.Context, caseID, confirmerID uuid.UUID, closedAt time.Time) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	c, ok := s.m.cases[caseID]
	if !ok || c.Status != models.CaseStatusPendingClosure ||
		c.ClosureInitiatedBy == nil || *c.ClosureInitiatedBy == confirmerID {
		return apperrors.New(apperrors.CodeConflict, "case has no closure pending confirmation by this party")
	}
	c.Status = models.CaseStatusSuccessfullyClosed
	c.ClosedAt = &closedAt
	for _, id := range []uuid.UUID{c.VictimID, *c.AssignedLawyerID} {
		if p, ok := s.m.profiles[id]; ok {
			p.SuccessfullyClosedCount++
		}
	}
	return nil
}

func (s caseStore) ReopenFromClosure(ctx context.Context, caseID, rejecterID uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	c, ok := s.m.cases[caseID]
	if !ok || c.Status != models.CaseStatusPendingClosure ||
		c.ClosureInitiatedBy == nil || *c.ClosureInitiatedBy == rejecterID {
		return apperrors.New(apperrors.CodeConflict, "case has no closure pending rejection by this party")
	}
	c.Status = models.CaseStatusOpen
	c.ClosureInitiatedBy = nil
	return nil
}

func (s caseStore) CloseDirect(ctx context.Context, caseID uuid.UUID, closedAt time.Time) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	c, ok := s.m.cases[caseID]
	if !ok || c.Status != models.CaseStatusOpen {
		return apperrors.New(apperrors.CodeConflict, "case is not open")
	}
	c.Status = models.CaseStatusClosed
	c.ClosedAt = &closedAt
	return nil
}

// requestStore adapts memoryStore to CaseRequestStore
type requestStore struct{ m *memoryStore }

func (s requestStore) Create(ctx context.Context, req *models.CaseRequest) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	pending := 0
	for _, r := range s.m.requests {
		if r.CaseID == req.CaseID && r.LawyerID == req.LawyerID {
			return apperrors.New(apperrors.CodeConflict, "lawyer already requested for this case")
		}
		if r.CaseID == req.CaseID && r.Status == models.RequestStatusPending {
			pending++
		}
	}
	if pending >= models.MaxPendingRequestsPerCase {
		return apperrors.New(apperrors.CodeLimitExceeded, "request limit reached for this case")
	}
	req.ID = uuid.New()
	req.Status = models.RequestStatusPending
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	stored := *req
	s.m.requests[req.ID] = &stored
	return nil
}

func (s requestStore) GetByID(ctx context.Context, id uuid.UUID) (*models.CaseRequest, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	r, ok := s.m.requests[id]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, "request not found")
	}
	out := *r
	return &out, nil
}

func (s requestStore) ListRequestedLawyerIDs(ctx context.Context, caseID uuid.UUID) ([]uuid.UUID, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []uuid.UUID
	for _, r := range s.m.requests {
		if r.CaseID == caseID {
			out = append(out, r.LawyerID)
		}
	}
	return out, nil
}

func (s requestStore) ListPendingByLawyer(ctx context.Context, lawyerID uuid.UUID) ([]*models.CaseRequest, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []*models.CaseRequest
	for _, r := range s.m.requests {
		if r.LawyerID != lawyerID || r.Status != models.RequestStatusPending {
			continue
		}
		copied := *r
		if c, ok := s.m.cases[r.CaseID]; ok {
			caseCopy := *c
			copied.Case = &caseCopy
		}
		out = append(out, &copied)
	}
	return out, nil
}

func (s requestStore) Decline(ctx context.Context, requestID uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	r, ok := s.m.requests[requestID]
	if !ok || r.Status != models.RequestStatusPending {
		return apperrors.New(apperrors.CodeConflict, "request is not pending")
	}
	r.Status = models.RequestStatusRejected
	return nil
}

func (s requestStore) Accept(ctx context.Context, requestID, caseID, lawyerID uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	r, ok := s.m.requests[requestID]
	if !ok || r.Status != models.RequestStatusPending {
		return apperrors.New(apperrors.CodeConflict, "request is not pending")
	}
	c, ok := s.m.cases[caseID]
	if !ok || c.Status != models.CaseStatusOpen || c.AssignedLawyerID != nil {
		return apperrors.New(apperrors.CodeConflict, "case already has a lawyer or is not open")
	}
	r.Status = models.RequestStatusAccepted
	assigned := lawyerID
	c.AssignedLawyerID = &assigned
	return nil
}

// contactStore adapts memoryStore to ContactStore
type contactStore struct{ m *memoryStore }

func (s contactStore) Upsert(ctx context.Context, info *models.ContactInformation) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if existing, ok := s.m.contacts[info.CaseID]; ok {
		info.ID = existing.ID
		info.CreatedAt = existing.CreatedAt
	} else {
		info.ID = uuid.New()
		info.CreatedAt = time.Now()
	}
	stored := *info
	s.m.contacts[info.CaseID] = &stored
	return nil
}

func (s contactStore) GetByCase(ctx context.Context, caseID uuid.UUID) (*models.ContactInformation, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	info, ok := s.m.contacts[caseID]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, "no contact information shared yet")
	}
	out := *info
	return &out, nil
}

// pastCaseStore adapts memoryStore to PastCaseStore
type pastCaseStore struct{ m *memoryStore }

func (s pastCaseStore) Create(ctx context.Context, pc *models.PastCase) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	pc.ID = uuid.New()
	pc.CreatedAt = time.Now()
	stored := *pc
	s.m.past[pc.ID] = &stored
	return nil
}

func (s pastCaseStore) ListByLawyer(ctx context.Context, lawyerID uuid.UUID) ([]*models.PastCase, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []*models.PastCase
	for _, pc := range s.m.past {
		if pc.LawyerID == lawyerID {
			copied := *pc
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s pastCaseStore) Delete(ctx context.Context, id, lawyerID uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	pc, ok := s.m.past[id]
	if !ok || pc.LawyerID != lawyerID {
		return apperrors.New(apperrors.CodeNotFound, "past case not found")
	}
	delete(s.m.past, id)
	return nil
}

// seed helpers

func seedProfile(m *memoryStore, role models.Role, username, state, district string) *models.Profile {
	p := &models.Profile{
		ID:       uuid.New(),
		Role:     role,
		Username: username,
		FullName: "Test " + username,
		City:     "Testville",
		State:    state,
	}
	if role == models.RoleLawyer {
		d := district
		p.CongressionalDistrict = &d
	}
	stored := *p
	m.profiles[p.ID] = &stored
	return p
}

func seedCase(m *memoryStore, victimID uuid.UUID, status models.CaseStatus, lawyerID *uuid.UUID) *models.Case {
	c := &models.Case{
		ID:                     uuid.New(),
		VictimID:               victimID,
		Title:                  "Unlawful search",
		Description:            "Officers entered without a warrant.",
		State:                  "CA",
		CongressionalDistrict:  "12",
		ConstitutionViolations: []string{"4th Amendment - Search and Seizure"},
		Status:                 status,
	}
	if lawyerID != nil {
		assigned := *lawyerID
		c.AssignedLawyerID = &assigned
	}
	stored := *c
	m.cases[c.ID] = &stored
	return c
}
