// Package service holds the business logic between the HTTP handlers
// and the repositories. Services depend on small store interfaces so
// the lifecycle and matching rules can be exercised without Postgres.
package service

import (
	"context"
	"time"

	"probonex-backend/models"

	"github.com/google/uuid"
)

// UserStore persists authentication users
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// ProfileStore persists profiles and serves the matching candidate pool
type ProfileStore interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	ListLawyersByLocation(ctx context.Context, state, district string) ([]*models.Profile, error)
}

// CaseStore persists cases. The transition methods are conditional:
// they fail with a conflict error when the case is not in the required
// source state, and change nothing.
type CaseStore interface {
	Create(ctx context.Context, c *models.Case) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Case, error)
	ListByVictim(ctx context.Context, victimID uuid.UUID, statuses []models.CaseStatus) ([]*models.Case, error)
	ListByLawyer(ctx context.Context, lawyerID uuid.UUID, statuses []models.CaseStatus) ([]*models.Case, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BeginClosure(ctx context.Context, caseID, initiatorID uuid.UUID) error
	FinalizeClosure(ctx context.Context, caseID, confirmerID uuid.UUID, closedAt time.Time) error
	ReopenFromClosure(ctx context.Context, caseID, rejecterID uuid.UUID) error
	CloseDirect(ctx context.Context, caseID uuid.UUID, closedAt time.Time) error
}

// CaseRequestStore persists case requests. Accept must atomically
// couple the request-status change with the case assignment.
type CaseRequestStore interface {
	Create(ctx context.Context, req *models.CaseRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CaseRequest, error)
	ListRequestedLawyerIDs(ctx context.Context, caseID uuid.UUID) ([]uuid.UUID, error)
	ListPendingByLawyer(ctx context.Context, lawyerID uuid.UUID) ([]*models.CaseRequest, error)
	Decline(ctx context.Context, requestID uuid.UUID) error
	Accept(ctx context.Context, requestID, caseID, lawyerID uuid.UUID) error
}

// ContactStore persists per-case contact information
type ContactStore interface {
	Upsert(ctx context.Context, info *models.ContactInformation) error
	GetByCase(ctx context.Context, caseID uuid.UUID) (*models.ContactInformation, error)
}

// PastCaseStore persists lawyer past-case entries
type PastCaseStore interface {
	Create(ctx context.Context, pc *models.PastCase) error
	ListByLawyer(ctx context.Context, lawyerID uuid.UUID) ([]*models.PastCase, error)
	Delete(ctx context.Context, id, lawyerID uuid.UUID) error
}
