package services

import (
	"sort"
	"time"

	"github.com/abishekkprasad/health-journal/internal/models"
)

// WeeklySummaries buckets logs by the Monday of their ISO week and sums the
// energy figures per week, most recent week first. Log volume is one row per
// day, so recomputing on every request is fine.
func WeeklySummaries(logs []models.DailyLog) []models.WeeklySummary {
	byWeek := map[time.Time]*models.WeeklySummary{}
	for _, log := range logs {
		monday := ISOWeekStart(log.LogDate)
		week, ok := byWeek[monday]
		if !ok {
			week = &models.WeeklySummary{WeekStart: monday}
			byWeek[monday] = week
		}
		week.TotalBurnKcal += log.TotalBurnKcal
		week.ConsumedKcal += log.ConsumedKcal
		week.DeficitKcal += log.DeficitKcal
		week.FatLossGrams += log.FatLossGrams
		week.Days++
	}

	weeks := make([]models.WeeklySummary, 0, len(byWeek))
	for _, week := range byWeek {
		weeks = append(weeks, *week)
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].WeekStart.After(weeks[j].WeekStart)
	})
	return weeks
}

// ISOWeekStart returns the Monday of the ISO week containing t, at midnight
// UTC.
func ISOWeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday closes the ISO week
	}
	monday := t.AddDate(0, 0, 1-weekday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}
