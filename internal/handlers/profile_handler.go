package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/abishekkprasad/health-journal/internal/models"
	"github.com/abishekkprasad/health-journal/internal/repository"
	"github.com/abishekkprasad/health-journal/internal/services"
	"github.com/abishekkprasad/health-journal/pkg/metabolics"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	journal profileWriter
}

type profileWriter interface {
	SetupProfile(ctx context.Context, input services.SetupProfileInput) (*models.UserProfile, error)
	UpdateBodyFat(ctx context.Context, bodyFatPercent float64) error
}

func NewProfileHandler(journal profileWriter) *ProfileHandler {
	return &ProfileHandler{journal: journal}
}

// Setup handles POST /setup: creates or overwrites the profile and records a
// body-fat history entry.
func (h *ProfileHandler) Setup(c *fiber.Ctx) error {
	height, err := parseFloatField(c, "height")
	if err != nil {
		return discardSubmission(c, "height", err)
	}
	weight, err := parseFloatField(c, "weight")
	if err != nil {
		return discardSubmission(c, "weight", err)
	}
	bodyFat, err := parseFloatField(c, "body_fat")
	if err != nil {
		return discardSubmission(c, "body_fat", err)
	}
	age, err := strconv.Atoi(strings.TrimSpace(c.FormValue("age")))
	if err != nil {
		return discardSubmission(c, "age", err)
	}
	gender := strings.TrimSpace(c.FormValue("gender"))
	if gender == "" {
		return discardSubmission(c, "gender", errors.New("missing"))
	}

	_, err = h.journal.SetupProfile(c.Context(), services.SetupProfileInput{
		HeightCM:       height,
		WeightKG:       weight,
		BodyFatPercent: bodyFat,
		Age:            age,
		Gender:         gender,
	})
	if err != nil {
		if errors.Is(err, metabolics.ErrImplausibleInput) {
			return discardSubmission(c, "weight/body_fat", err)
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to save profile")
	}
	return redirectHome(c)
}

// UpdateBodyFat handles POST /update-body-fat. A no-op before setup.
func (h *ProfileHandler) UpdateBodyFat(c *fiber.Ctx) error {
	bodyFat, err := parseFloatField(c, "body_fat")
	if err != nil {
		return discardSubmission(c, "body_fat", err)
	}

	if err := h.journal.UpdateBodyFat(c.Context(), bodyFat); err != nil {
		if errors.Is(err, repository.ErrNoProfile) || errors.Is(err, metabolics.ErrImplausibleInput) {
			return discardSubmission(c, "body_fat", err)
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to update body fat")
	}
	return redirectHome(c)
}
