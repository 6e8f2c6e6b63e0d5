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

// ProfileRepository handles database operations for profiles
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `
	id, role, username, full_name, city, state, congressional_district,
	bio, specialties_constitution, specialties_udhr, pronouns,
	contact_email, phone_number, website, profile_picture_url,
	successfully_closed_count, created_at, updated_at`

func scanProfile(row pgx.Row) (*models.Profile, error) {
	p := &models.Profile{}
	err := row.Scan(
		&p.ID,
		&p.Role,
		&p.Username,
		&p.FullName,
		&p.City,
		&p.State,
		&p.CongressionalDistrict,
		&p.Bio,
		&p.SpecialtiesConstitution,
		&p.SpecialtiesUDHR,
		&p.Pronouns,
		&p.ContactEmail,
		&p.PhoneNumber,
		&p.Website,
		&p.ProfilePictureURL,
		&p.SuccessfullyClosedCount,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.New(apperrors.CodeNotFound, "profile not found")
		}
		return nil, err
	}
	return p, nil
}

// Create creates a new profile. The ID is the authentication user's ID,
// not generated here.
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (
			id, role, username, full_name, city, state,
			congressional_district, bio, specialties_constitution,
			specialties_udhr, pronouns, contact_email, phone_number,
			website, profile_picture_url
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING successfully_closed_count, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		profile.ID,
		profile.Role,
		profile.Username,
		profile.FullName,
		profile.City,
		profile.State,
		profile.CongressionalDistrict,
		profile.Bio,
		profile.SpecialtiesConstitution,
		profile.SpecialtiesUDHR,
		profile.Pronouns,
		profile.ContactEmail,
		profile.PhoneNumber,
		profile.Website,
		profile.ProfilePictureURL,
	).Scan(&profile.SuccessfullyClosedCount, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.New(apperrors.CodeConflict, "profile or username already exists")
		}
		return err
	}
	return nil
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	query := `SELECT` + profileColumns + ` FROM profiles WHERE id = $1`
	return scanProfile(r.db.QueryRow(ctx, query, id))
}

// GetByUsername retrieves a profile by username
func (r *ProfileRepository) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	query := `SELECT` + profileColumns + ` FROM profiles WHERE username = $1`
	return scanProfile(r.db.QueryRow(ctx, query, username))
}

// Update updates the mutable profile fields. Role and the closed-case
// counter are deliberately not writable here.
func (r *ProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	query := `
		UPDATE profiles SET
			full_name = $2,
			city = $3,
			state = $4,
			congressional_district = $5,
			bio = $6,
			specialties_constitution = $7,
			specialties_udhr = $8,
			pronouns = $9,
			contact_email = $10,
			phone_number = $11,
			website = $12,
			profile_picture_url = $13,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(
		ctx, query,
		profile.ID,
		profile.FullName,
		profile.City,
		profile.State,
		profile.CongressionalDistrict,
		profile.Bio,
		profile.SpecialtiesConstitution,
		profile.SpecialtiesUDHR,
		profile.Pronouns,
		profile.ContactEmail,
		profile.PhoneNumber,
		profile.Website,
		profile.ProfilePictureURL,
	).Scan(&profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.New(apperrors.CodeNotFound, "profile not found")
		}
		return err
	}
	return nil
}

// ListLawyersByLocation retrieves all lawyer profiles in the given
// state and congressional district. This is the candidate pool for
// matching; relevance filtering happens in the matching package.
func (r *ProfileRepository) ListLawyersByLocation(ctx context.Context, state, district string) ([]*models.Profile, error) {
	query := `SELECT` + profileColumns + `
		FROM profiles
		WHERE role = 'lawyer' AND state = $1 AND congressional_district = $2`

	rows, err := r.db.Query(ctx, query, state, district)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
