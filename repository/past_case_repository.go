package repository

import (
	"context"

	"probonex-backend/apperrors"
	"probonex-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PastCaseRepository handles database operations for the prior-work
// entries shown on lawyer profiles
type PastCaseRepository struct {
	db *pgxpool.Pool
}

// NewPastCaseRepository creates a new past case repository
func NewPastCaseRepository(db *pgxpool.Pool) *PastCaseRepository {
	return &PastCaseRepository{db: db}
}

// Create creates a new past case entry
func (r *PastCaseRepository) Create(ctx context.Context, pc *models.PastCase) error {
	query := `
		INSERT INTO past_cases (lawyer_id, victim_name, case_description, location, outcome, date_completed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	return r.db.QueryRow(
		ctx, query,
		pc.LawyerID,
		pc.VictimName,
		pc.CaseDescription,
		pc.Location,
		pc.Outcome,
		pc.DateCompleted,
	).Scan(&pc.ID, &pc.CreatedAt)
}

// ListByLawyer retrieves a lawyer's past cases, most recent first
func (r *PastCaseRepository) ListByLawyer(ctx context.Context, lawyerID uuid.UUID) ([]*models.PastCase, error) {
	query := `
		SELECT id, lawyer_id, victim_name, case_description, location, outcome, date_completed, created_at
		FROM past_cases
		WHERE lawyer_id = $1
		ORDER BY date_completed DESC NULLS LAST`

	rows, err := r.db.Query(ctx, query, lawyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pastCases []*models.PastCase
	for rows.Next() {
		pc := &models.PastCase{}
		err := rows.Scan(
			&pc.ID,
			&pc.LawyerID,
			&pc.VictimName,
			&pc.CaseDescription,
			&pc.Location,
			&pc.Outcome,
			&pc.DateCompleted,
			&pc.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		pastCases = append(pastCases, pc)
	}
	return pastCases, rows.Err()
}

// Delete removes a past case entry owned by the lawyer
func (r *PastCaseRepository) Delete(ctx context.Context, id, lawyerID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM past_cases WHERE id = $1 AND lawyer_id = $2`, id, lawyerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.CodeNotFound, "past case not found")
	}
	return nil
}
