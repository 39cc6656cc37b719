package models

import "time"

// DailyLog holds one day's recorded inputs plus the derived energy figures.
// The calendar date is the natural key: resubmitting the same date
// overwrites the row instead of creating a second one.
type DailyLog struct {
	LogDate       time.Time `json:"log_date"`
	WeightKG      float64   `json:"weight_kg"`
	WalkKM        float64   `json:"walk_km"`
	ConsumedKcal  float64   `json:"consumed_kcal"`
	BurntKcal     float64   `json:"burnt_kcal"`
	TotalBurnKcal float64   `json:"total_burn_kcal"`
	DeficitKcal   float64   `json:"deficit_kcal"`
	FatLossGrams  float64   `json:"fat_loss_grams"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DateKey is the YYYY-MM-DD form of the log date.
func (l DailyLog) DateKey() string {
	return l.LogDate.Format("2006-01-02")
}
