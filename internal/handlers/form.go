package handlers

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Malformed submissions are discarded whole: nothing is written and the user
// lands back on the unchanged dashboard. The rejected field is only logged
// server-side.
func discardSubmission(c *fiber.Ctx, field string, err error) error {
	log.Printf("discarding %s %s: bad field %q: %v", c.Method(), c.Path(), field, err)
	return redirectHome(c)
}

func redirectHome(c *fiber.Ctx) error {
	return c.Redirect("/", fiber.StatusSeeOther)
}

// parseFloatField parses a required non-negative numeric form field.
func parseFloatField(c *fiber.Ctx, field string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(c.FormValue(field)), 64)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, strconv.ErrRange
	}
	return value, nil
}

// parseFloatDefault parses an optional non-negative numeric form field,
// treating an empty value as the fallback.
func parseFloatDefault(c *fiber.Ctx, field string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, strconv.ErrRange
	}
	return value, nil
}
