package service

import (
	"context"
	"errors"

	"probonex-backend/apperrors"
	"probonex-backend/models"

	"github.com/google/uuid"
)

// ContactService manages the contact details an assigned lawyer shares
// with the victim on a case
type ContactService struct {
	cases    CaseStore
	contacts ContactStore
}

// ContactServiceOption is a functional option for ContactService
type ContactServiceOption func(*ContactService)

// ContactWithCaseStore sets the case store
func ContactWithCaseStore(store CaseStore) ContactServiceOption {
	return func(s *ContactService) {
		s.cases = store
	}
}

// ContactWithContactStore sets the contact store
func ContactWithContactStore(store ContactStore) ContactServiceOption {
	return func(s *ContactService) {
		s.contacts = store
	}
}

// NewContactService creates a new contact service
func NewContactService(opts ...ContactServiceOption) *ContactService {
	s := &ContactService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ShareContact records the assigned lawyer's contact details for a case
func (s *ContactService) ShareContact(ctx context.Context, caseID, lawyerID uuid.UUID, email, phone string) (*models.ContactInformation, error) {
	if s.cases == nil || s.contacts == nil {
		return nil, errors.New("stores not set")
	}

	c, err := s.cases.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c.AssignedLawyerID == nil || *c.AssignedLawyerID != lawyerID {
		return nil, apperrors.New(apperrors.CodeForbidden, "only the assigned lawyer can share contact details")
	}
	if email == "" && phone == "" {
		return nil, apperrors.New(apperrors.CodeValidation, "provide an email or a phone number")
	}

	info := &models.ContactInformation{
		CaseID:   caseID,
		LawyerID: lawyerID,
		VictimID: c.VictimID,
	}
	if email != "" {
		info.Email = &email
	}
	if phone != "" {
		info.PhoneNumber = &phone
	}
	if err := s.contacts.Upsert(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}

// GetContact retrieves the contact details for a case, visible only to
// its participants
func (s *ContactService) GetContact(ctx context.Context, caseID, partyID uuid.UUID) (*models.ContactInformation, error) {
	if s.cases == nil || s.contacts == nil {
		return nil, errors.New("stores not set")
	}

	c, err := s.cases.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if !c.IsParticipant(partyID) {
		return nil, apperrors.New(apperrors.CodeForbidden, "not a participant in this case")
	}
	return s.contacts.GetByCase(ctx, caseID)
}
