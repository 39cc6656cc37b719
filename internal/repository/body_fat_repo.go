package repository

import (
	"context"

	"github.com/abishekkprasad/health-journal/internal/models"
	"github.com/google/uuid"
)

type BodyFatHistoryRepository struct {
	db DBTX
}

func NewBodyFatHistoryRepository(db DBTX) *BodyFatHistoryRepository {
	return &BodyFatHistoryRepository{db: db}
}

// AppendBodyFat records one history point. History rows are append-only.
func (r *BodyFatHistoryRepository) AppendBodyFat(ctx context.Context, bodyFatPercent float64) (*models.BodyFatEntry, error) {
	query := `
		INSERT INTO body_fat_history (id, body_fat_percent)
		VALUES ($1, $2)
		RETURNING recorded_at
	`
	entry := models.BodyFatEntry{
		ID:             uuid.New(),
		BodyFatPercent: bodyFatPercent,
	}
	if err := r.db.QueryRow(ctx, query, entry.ID, entry.BodyFatPercent).Scan(&entry.RecordedAt); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *BodyFatHistoryRepository) ListRecentBodyFat(ctx context.Context, limit int) ([]models.BodyFatEntry, error) {
	query := `
		SELECT id, body_fat_percent, recorded_at
		FROM body_fat_history
		ORDER BY recorded_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.BodyFatEntry
	for rows.Next() {
		var entry models.BodyFatEntry
		if err := rows.Scan(&entry.ID, &entry.BodyFatPercent, &entry.RecordedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
