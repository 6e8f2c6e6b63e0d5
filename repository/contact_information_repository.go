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

// ContactInformationRepository handles database operations for the
// per-case contact details a lawyer shares with the victim
type ContactInformationRepository struct {
	db *pgxpool.Pool
}

// NewContactInformationRepository creates a new contact information repository
func NewContactInformationRepository(db *pgxpool.Pool) *ContactInformationRepository {
	return &ContactInformationRepository{db: db}
}

// Upsert creates or replaces the contact information for a case
func (r *ContactInformationRepository) Upsert(ctx context.Context, info *models.ContactInformation) error {
	query := `
		INSERT INTO contact_information (case_id, lawyer_id, victim_id, email, phone_number)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (case_id) DO UPDATE SET
			email = EXCLUDED.email,
			phone_number = EXCLUDED.phone_number
		RETURNING id, created_at`

	return r.db.QueryRow(
		ctx, query,
		info.CaseID,
		info.LawyerID,
		info.VictimID,
		info.Email,
		info.PhoneNumber,
	).Scan(&info.ID, &info.CreatedAt)
}

// GetByCase retrieves the contact information for a case
func (r *ContactInformationRepository) GetByCase(ctx context.Context, caseID uuid.UUID) (*models.ContactInformation, error) {
	info := &models.ContactInformation{}
	query := `
		SELECT id, case_id, lawyer_id, victim_id, email, phone_number, created_at
		FROM contact_information
		WHERE case_id = $1`

	err := r.db.QueryRow(ctx, query, caseID).Scan(
		&info.ID,
		&info.CaseID,
		&info.LawyerID,
		&info.VictimID,
		&info.Email,
		&info.PhoneNumber,
		&info.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.New(apperrors.CodeNotFound, "no contact information for this case")
		}
		return nil, err
	}
	return info, nil
}
