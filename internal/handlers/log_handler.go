package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/abishekkprasad/health-journal/internal/models"
	"github.com/abishekkprasad/health-journal/internal/repository"
	"github.com/abishekkprasad/health-journal/internal/services"
	"github.com/gofiber/fiber/v2"
)

type LogHandler struct {
	journal dayLogger
}

type dayLogger interface {
	LogDay(ctx context.Context, input services.LogDayInput) (*models.DailyLog, error)
}

func NewLogHandler(journal dayLogger) *LogHandler {
	return &LogHandler{journal: journal}
}

// Submit handles POST /log. The date defaults to today, the weight to the
// profile weight; walk, consumed and burnt default to 0. Any unparseable
// field discards the whole submission.
func (h *LogHandler) Submit(c *fiber.Ctx) error {
	var date time.Time
	if raw := strings.TrimSpace(c.FormValue("date")); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return discardSubmission(c, "date", err)
		}
		date = parsed
	}

	var weight *float64
	if raw := strings.TrimSpace(c.FormValue("weight")); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err == nil && parsed < 0 {
			err = strconv.ErrRange
		}
		if err != nil {
			return discardSubmission(c, "weight", err)
		}
		weight = &parsed
	}

	walk, err := parseFloatDefault(c, "walk", 0)
	if err != nil {
		return discardSubmission(c, "walk", err)
	}
	consumed, err := parseFloatDefault(c, "consumed", 0)
	if err != nil {
		return discardSubmission(c, "consumed", err)
	}
	burnt, err := parseFloatDefault(c, "burnt", 0)
	if err != nil {
		return discardSubmission(c, "burnt", err)
	}

	_, err = h.journal.LogDay(c.Context(), services.LogDayInput{
		Date:         date,
		WeightKG:     weight,
		WalkKM:       walk,
		ConsumedKcal: consumed,
		BurntKcal:    burnt,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNoProfile) {
			return discardSubmission(c, "profile", err)
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to save log")
	}
	return redirectHome(c)
}
