package repository

import (
	"context"
	"errors"

	"probonex-backend/apperrors"
	"probonex-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CaseRequestRepository handles database operations for case requests,
// including the atomic acceptance that assigns a lawyer to a case
type CaseRequestRepository struct {
	db *pgxpool.Pool
}

// NewCaseRequestRepository creates a new case request repository
func NewCaseRequestRepository(db *pgxpool.Pool) *CaseRequestRepository {
	return &CaseRequestRepository{db: db}
}

// Create inserts a pending request. The five-pending-requests-per-case
// cap is enforced here with a guarded insert so it cannot be bypassed
// by skipping the UI. The cases row is locked first: concurrent
// inserts for the same case would otherwise each count the same
// pending rows under READ COMMITTED and both pass the cap.
func (r *CaseRequestRepository) Create(ctx context.Context, req *models.CaseRequest) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var caseID uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM cases WHERE id = $1 FOR UPDATE`, req.CaseID).Scan(&caseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.New(apperrors.CodeNotFound, "case not found")
		}
		return err
	}

	query := `
		INSERT INTO case_requests (case_id, lawyer_id, status)
		SELECT $1, $2, 'pending'
		WHERE (
			SELECT COUNT(*) FROM case_requests
			WHERE case_id = $1 AND status = 'pending'
		) < $3
		RETURNING id, status, created_at, updated_at`

	err = tx.QueryRow(ctx, query, req.CaseID, req.LawyerID, models.MaxPendingRequestsPerCase).
		Scan(&req.ID, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.New(apperrors.CodeLimitExceeded, "request limit reached for this case")
		}
		if isUniqueViolation(err) {
			return apperrors.New(apperrors.CodeConflict, "lawyer already requested for this case")
		}
		return err
	}
	return tx.Commit(ctx)
}

// GetByID retrieves a request by ID
func (r *CaseRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CaseRequest, error) {
	req := &models.CaseRequest{}
	query := `
		SELECT id, case_id, lawyer_id, status, created_at, updated_at
		FROM case_requests
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&req.ID,
		&req.CaseID,
		&req.LawyerID,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.New(apperrors.CodeNotFound, "request not found")
		}
		return nil, err
	}
	return req, nil
}

// ListRequestedLawyerIDs returns the lawyers already requested for a
// case, in any status. The find-lawyers view uses this to mark cards.
func (r *CaseRequestRepository) ListRequestedLawyerIDs(ctx context.Context, caseID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT lawyer_id FROM case_requests WHERE case_id = $1`, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListPendingByLawyer retrieves a lawyer's pending requests with the
// case and the victim's public profile attached
func (r *CaseRequestRepository) ListPendingByLawyer(ctx context.Context, lawyerID uuid.UUID) ([]*models.CaseRequest, error) {
	query := `
		SELECT r.id, r.case_id, r.lawyer_id, r.status, r.created_at, r.updated_at,` +
		caseColumns + `,
			p.id, p.role, p.username, p.full_name, p.city, p.state
		FROM case_requests r
		JOIN cases c ON c.id = r.case_id
		JOIN profiles p ON p.id = c.victim_id
		WHERE r.lawyer_id = $1 AND r.status = 'pending'
		ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, query, lawyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.CaseRequest
	for rows.Next() {
		req := &models.CaseRequest{Case: &models.Case{Counterpart: &models.Profile{}}}
		c := req.Case
		victim := c.Counterpart
		err := rows.Scan(
			&req.ID,
			&req.CaseID,
			&req.LawyerID,
			&req.Status,
			&req.CreatedAt,
			&req.UpdatedAt,
			&c.ID,
			&c.VictimID,
			&c.Title,
			&c.Description,
			&c.State,
			&c.CongressionalDistrict,
			&c.ConstitutionViolations,
			&c.UDHRViolations,
			&c.Status,
			&c.AssignedLawyerID,
			&c.ClosureInitiatedBy,
			&c.ClosedAt,
			&c.CreatedAt,
			&c.UpdatedAt,
			&victim.ID,
			&victim.Role,
			&victim.Username,
			&victim.FullName,
			&victim.City,
			&victim.State,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// Decline moves a pending request to rejected
func (r *CaseRequestRepository) Decline(ctx context.Context, requestID uuid.UUID) error {
	query := `
		UPDATE case_requests SET status = 'rejected', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'`

	tag, err := r.db.Exec(ctx, query, requestID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.CodeConflict, "request is no longer pending")
	}
	return nil
}

// Accept assigns the lawyer to the case and marks the request accepted
// in one transaction. Both conditional updates must match: if the
// request was already resolved or another lawyer got the case first,
// nothing changes and the caller gets a conflict. This is the guard
// against two lawyers being accepted concurrently.
func (r *CaseRequestRepository) Accept(ctx context.Context, requestID, caseID, lawyerID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE case_requests SET status = 'accepted', updated_at = NOW()
		WHERE id = $1 AND lawyer_id = $2 AND status = 'pending'`,
		requestID, lawyerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.CodeConflict, "request is no longer pending")
	}

	tag, err = tx.Exec(ctx, `
		UPDATE cases SET assigned_lawyer_id = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'open' AND assigned_lawyer_id IS NULL`,
		caseID, lawyerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.CodeConflict, "case already has an assigned lawyer")
	}

	return tx.Commit(ctx)
}
