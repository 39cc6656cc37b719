package models

import "time"

// WeeklySummary aggregates the logs of one ISO week (Monday start).
type WeeklySummary struct {
	WeekStart     time.Time `json:"week_start"`
	TotalBurnKcal float64   `json:"total_burn_kcal"`
	ConsumedKcal  float64   `json:"consumed_kcal"`
	DeficitKcal   float64   `json:"deficit_kcal"`
	FatLossGrams  float64   `json:"fat_loss_grams"`
	Days          int       `json:"days"`
}
