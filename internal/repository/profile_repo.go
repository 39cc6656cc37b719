package repository

import (
	"context"
	"errors"

	"github.com/abishekkprasad/health-journal/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNoProfile signals that setup has never run.
var ErrNoProfile = errors.New("profile has not been set up")

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// SetProfile creates the singleton profile or overwrites it in place. The
// id = 1 constraint keeps it at exactly one row regardless of concurrent
// submissions.
func (r *ProfileRepository) SetProfile(ctx context.Context, profile *models.UserProfile) error {
	query := `
		INSERT INTO user_profile (id, height_cm, weight_kg, body_fat_percent, age, gender)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET height_cm = EXCLUDED.height_cm,
			weight_kg = EXCLUDED.weight_kg,
			body_fat_percent = EXCLUDED.body_fat_percent,
			age = EXCLUDED.age,
			gender = EXCLUDED.gender,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		profile.HeightCM,
		profile.WeightKG,
		profile.BodyFatPercent,
		profile.Age,
		profile.Gender,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *ProfileRepository) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	query := `
		SELECT height_cm, weight_kg, body_fat_percent, age, gender, created_at, updated_at
		FROM user_profile
		WHERE id = 1
	`
	var profile models.UserProfile
	err := r.db.QueryRow(ctx, query).Scan(
		&profile.HeightCM,
		&profile.WeightKG,
		&profile.BodyFatPercent,
		&profile.Age,
		&profile.Gender,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoProfile
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateBodyFat mutates only the body-fat field. Returns ErrNoProfile when
// setup has never run.
func (r *ProfileRepository) UpdateBodyFat(ctx context.Context, bodyFatPercent float64) error {
	query := `
		UPDATE user_profile
		SET body_fat_percent = $1,
			updated_at = NOW()
		WHERE id = 1
	`
	tag, err := r.db.Exec(ctx, query, bodyFatPercent)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoProfile
	}
	return nil
}
