package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"probonex-backend/apperrors"
	"probonex-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CaseRepository handles database operations for cases, including the
// conditional lifecycle transitions
type CaseRepository struct {
	db *pgxpool.Pool
}

// NewCaseRepository creates a new case repository
func NewCaseRepository(db *pgxpool.Pool) *CaseRepository {
	return &CaseRepository{db: db}
}

const caseColumns = `
	c.id, c.victim_id, c.title, c.description, c.state,
	c.congressional_district, c.constitution_violations,
	c.udhr_violations, c.status, c.assigned_lawyer_id,
	c.closure_initiated_by, c.closed_at, c.created_at, c.updated_at`

func scanCase(row pgx.Row) (*models.Case, error) {
	c := &models.Case{}
	err := row.Scan(
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
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.New(apperrors.CodeNotFound, "case not found")
		}
		return nil, err
	}
	return c, nil
}

// Create creates a new case with status open
func (r *CaseRepository) Create(ctx context.Context, c *models.Case) error {
	query := `
		INSERT INTO cases (
			victim_id, title, description, state, congressional_district,
			constitution_violations, udhr_violations, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, 'open')
		RETURNING id, status, created_at, updated_at`

	return r.db.QueryRow(
		ctx, query,
		c.VictimID,
		c.Title,
		c.Description,
		c.State,
		c.CongressionalDistrict,
		c.ConstitutionViolations,
		c.UDHRViolations,
	).Scan(&c.ID, &c.Status, &c.CreatedAt, &c.UpdatedAt)
}

// GetByID retrieves a case by ID
func (r *CaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	query := `SELECT` + caseColumns + ` FROM cases c WHERE c.id = $1`
	return scanCase(r.db.QueryRow(ctx, query, id))
}

// ListByVictim retrieves a victim's cases in the given statuses, with
// the assigned lawyer's profile attached when present
func (r *CaseRepository) ListByVictim(ctx context.Context, victimID uuid.UUID, statuses []models.CaseStatus) ([]*models.Case, error) {
	return r.list(ctx, "c.victim_id", "c.assigned_lawyer_id", victimID, statuses)
}

// ListByLawyer retrieves a lawyer's assigned cases in the given
// statuses, with the victim's profile attached
func (r *CaseRepository) ListByLawyer(ctx context.Context, lawyerID uuid.UUID, statuses []models.CaseStatus) ([]*models.Case, error) {
	return r.list(ctx, "c.assigned_lawyer_id", "c.victim_id", lawyerID, statuses)
}

func (r *CaseRepository) list(ctx context.Context, partyColumn, counterpartColumn string, partyID uuid.UUID, statuses []models.CaseStatus) ([]*models.Case, error) {
	query := fmt.Sprintf(`
		SELECT`+caseColumns+`,
			p.id, p.role, p.username, p.full_name, p.city, p.state
		FROM cases c
		LEFT JOIN profiles p ON p.id = %s
		WHERE %s = $1 AND c.status = ANY($2)
		ORDER BY c.created_at DESC`, counterpartColumn, partyColumn)

	rows, err := r.db.Query(ctx, query, partyID, statuses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cases []*models.Case
	for rows.Next() {
		c := &models.Case{}
		var counterpartID *uuid.UUID
		var counterpartRole *models.Role
		var username, fullName, city, state *string
		err := rows.Scan(
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
			&counterpartID,
			&counterpartRole,
			&username,
			&fullName,
			&city,
			&state,
		)
		if err != nil {
			return nil, err
		}
		if counterpartID != nil {
			c.Counterpart = &models.Profile{
				ID:       *counterpartID,
				Role:     *counterpartRole,
				Username: *username,
				FullName: *fullName,
				City:     *city,
				State:    *state,
			}
		}
		cases = append(cases, c)
	}
	return cases, rows.Err()
}

// Delete removes a case permanently. Requests and contact information
// cascade at the schema level.
func (r *CaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cases WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.CodeNotFound, "case not found")
	}
	return nil
}

// BeginClosure moves an open, assigned case to pending_closure and
// records who initiated. Matching zero rows means the case was not
// open-and-assigned anymore.
func (r *CaseRepository) BeginClosure(ctx context.Context, caseID, initiatorID uuid.UUID) error {
	query := `
		UPDATE cases SET
			status = 'pending_closure',
			closure_initiated_by = $2,
			updated_at = NOW()
		WHERE id = $1
			AND status = 'open'
			AND assigned_lawyer_id IS NOT NULL`

	tag, err := r.db.Exec(ctx, query, caseID, initiatorID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.CodeConflict, "case is not open with an assigned lawyer")
	}
	return nil
}

// FinalizeClosure confirms a pending closure. The status change and
// both parties' counter increments commit together, so a repeated
// confirmation can never re-increment: the second call matches zero
// rows and fails before touching the counters.
func (r *CaseRepository) FinalizeClosure(ctx context.Context, caseID, confirmerID uuid.UUID, closedAt time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var victimID uuid.UUID
	var lawyerID *uuid.UUID
	err = tx.QueryRow(ctx, `
		UPDATE cases SET
			status = 'successfully_closed',
			closed_at = $3,
			updated_at = NOW()
		WHERE id = $1
			AND status = 'pending_closure'
			AND closure_initiated_by IS NOT NULL
			AND closure_initiated_by <> $2
		RETURNING victim_id, assigned_lawyer_id`,
		caseID, confirmerID, closedAt,
	).Scan(&victimID, &lawyerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.New(apperrors.CodeConflict, "case has no closure pending confirmation by this party")
		}
		return err
	}
	if lawyerID == nil {
		// pending_closure requires an assigned lawyer; a missing one
		// here means the row was tampered with outside the API
		return apperrors.New(apperrors.CodeConflict, "pending closure without an assigned lawyer")
	}

	_, err = tx.Exec(ctx, `
		UPDATE profiles SET
			successfully_closed_count = successfully_closed_count + 1,
			updated_at = NOW()
		WHERE id = ANY($1)`,
		[]uuid.UUID{victimID, *lawyerID},
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ReopenFromClosure rejects a pending closure: the case returns to open
// with the assignment intact and the initiator cleared
func (r *CaseRepository) ReopenFromClosure(ctx context.Context, caseID, rejecterID uuid.UUID) error {
	query := `
		UPDATE cases SET
			status = 'open',
			closure_initiated_by = NULL,
			updated_at = NOW()
		WHERE id = $1
			AND status = 'pending_closure'
			AND closure_initiated_by IS NOT NULL
			AND closure_initiated_by <> $2`

	tag, err := r.db.Exec(ctx, query, caseID, rejecterID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.CodeConflict, "case has no closure pending rejection by this party")
	}
	return nil
}

// CloseDirect unilaterally closes an open case without counter side
// effects. Not reachable from pending_closure.
func (r *CaseRepository) CloseDirect(ctx context.Context, caseID uuid.UUID, closedAt time.Time) error {
	query := `
		UPDATE cases SET
			status = 'closed',
			closed_at = $2,
			updated_at = NOW()
		WHERE id = $1 AND status = 'open'`

	tag, err := r.db.Exec(ctx, query, caseID, closedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.CodeConflict, "case is not open")
	}
	return nil
}
