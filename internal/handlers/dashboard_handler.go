package handlers

import (
	"context"

	"github.com/abishekkprasad/health-journal/internal/services"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	journal dashboardLoader
}

type dashboardLoader interface {
	LoadDashboard(ctx context.Context) (*services.Dashboard, error)
}

func NewDashboardHandler(journal dashboardLoader) *DashboardHandler {
	return &DashboardHandler{journal: journal}
}

func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	dashboard, err := h.journal.LoadDashboard(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load dashboard")
	}
	return c.Render("dashboard", dashboard)
}
