package metabolics

import (
	"errors"
	"math"
)

const (
	// WalkKcalPerKM is the flat energy cost used for walked distance.
	WalkKcalPerKM = 60.0

	// KcalPerKGFat is the approximate energy content of 1 kg of adipose tissue.
	KcalPerKGFat = 7700.0
)

var ErrImplausibleInput = errors.New("weight/body fat out of plausible range")

// KatchMcArdleBMR expects weight in kilograms and body fat as a percentage.
// Formula: BMR = 370 + 21.6 * lean body mass, rounded to whole kcal.
func KatchMcArdleBMR(weightKg, bodyFatPercent float64) (float64, error) {
	if weightKg <= 0 || bodyFatPercent < 0 {
		return 0, errors.New("weight and body fat must be present and non-negative")
	}
	// Sanity checks to avoid garbage input
	if weightKg < 10 || weightKg > 400 || bodyFatPercent > 75 {
		return 0, ErrImplausibleInput
	}

	leanMass := weightKg * (1 - bodyFatPercent/100)
	return math.Round(370 + 21.6*leanMass), nil
}

// Balance holds the derived energy figures for a single day.
type Balance struct {
	TotalBurnKcal float64 `json:"total_burn_kcal"`
	DeficitKcal   float64 `json:"deficit_kcal"`
	FatLossGrams  float64 `json:"fat_loss_grams"`
}

// DailyBalance combines BMR with walked distance, manual exercise burn and
// consumed calories. A non-positive deficit yields zero estimated fat loss,
// never a negative value.
func DailyBalance(bmr, walkKm, burntKcal, consumedKcal float64) Balance {
	totalBurn := bmr + walkKm*WalkKcalPerKM + burntKcal
	deficit := totalBurn - consumedKcal

	var fatLossGrams float64
	if deficit > 0 {
		fatLossGrams = deficit / KcalPerKGFat * 1000
	}

	return Balance{
		TotalBurnKcal: math.Round(totalBurn),
		DeficitKcal:   math.Round(deficit),
		FatLossGrams:  math.Round(fatLossGrams*100) / 100,
	}
}
