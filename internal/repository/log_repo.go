package repository

import (
	"context"
	"errors"
	"time"

	"github.com/abishekkprasad/health-journal/internal/models"
	"github.com/jackc/pgx/v5"
)

// ErrLogNotFound signals that no log exists for the requested date.
var ErrLogNotFound = errors.New("no log for that date")

type LogRepository struct {
	db DBTX
}

func NewLogRepository(db DBTX) *LogRepository {
	return &LogRepository{db: db}
}

// UpsertLog writes one day's log. The date is the primary key, so the
// insert-or-overwrite is a single atomic statement and the one-row-per-date
// invariant holds even under concurrent submissions.
func (r *LogRepository) UpsertLog(ctx context.Context, log *models.DailyLog) error {
	query := `
		INSERT INTO daily_logs (
			log_date, weight_kg, walk_km, consumed_kcal, burnt_kcal,
			total_burn_kcal, deficit_kcal, fat_loss_grams
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (log_date) DO UPDATE
		SET weight_kg = EXCLUDED.weight_kg,
			walk_km = EXCLUDED.walk_km,
			consumed_kcal = EXCLUDED.consumed_kcal,
			burnt_kcal = EXCLUDED.burnt_kcal,
			total_burn_kcal = EXCLUDED.total_burn_kcal,
			deficit_kcal = EXCLUDED.deficit_kcal,
			fat_loss_grams = EXCLUDED.fat_loss_grams,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		log.LogDate,
		log.WeightKG,
		log.WalkKM,
		log.ConsumedKcal,
		log.BurntKcal,
		log.TotalBurnKcal,
		log.DeficitKcal,
		log.FatLossGrams,
	).Scan(&log.CreatedAt, &log.UpdatedAt)
}

func (r *LogRepository) ListLogs(ctx context.Context) ([]models.DailyLog, error) {
	query := `
		SELECT log_date, weight_kg, walk_km, consumed_kcal, burnt_kcal,
			   total_burn_kcal, deficit_kcal, fat_loss_grams, created_at, updated_at
		FROM daily_logs
		ORDER BY log_date DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.DailyLog
	for rows.Next() {
		var log models.DailyLog
		if err := rows.Scan(
			&log.LogDate,
			&log.WeightKG,
			&log.WalkKM,
			&log.ConsumedKcal,
			&log.BurntKcal,
			&log.TotalBurnKcal,
			&log.DeficitKcal,
			&log.FatLossGrams,
			&log.CreatedAt,
			&log.UpdatedAt,
		); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

func (r *LogRepository) GetLog(ctx context.Context, date time.Time) (*models.DailyLog, error) {
	query := `
		SELECT log_date, weight_kg, walk_km, consumed_kcal, burnt_kcal,
			   total_burn_kcal, deficit_kcal, fat_loss_grams, created_at, updated_at
		FROM daily_logs
		WHERE log_date = $1
	`
	var log models.DailyLog
	err := r.db.QueryRow(ctx, query, date).Scan(
		&log.LogDate,
		&log.WeightKG,
		&log.WalkKM,
		&log.ConsumedKcal,
		&log.BurntKcal,
		&log.TotalBurnKcal,
		&log.DeficitKcal,
		&log.FatLossGrams,
		&log.CreatedAt,
		&log.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	return &log, nil
}
