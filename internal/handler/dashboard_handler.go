package handler

import (
	"strconv"

	"go-stock-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetStockMovement returns per-day inbound/outbound unit totals for charts.
// Query params: days (default 7)
func (h *DashboardHandler) GetStockMovement(c *fiber.Ctx) error {
	daysStr := c.Query("days", "7")
	days, err := strconv.Atoi(daysStr)
	if err != nil || days <= 0 {
		days = 7
	}

	data, err := h.service.GetStockMovement(days)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch stock movement"})
	}

	return c.JSON(fiber.Map{
		"period": days,
		"data":   data,
	})
}

// GetRecentChanges returns the latest stock-change journal entries.
// Query params: limit (default 20)
func (h *DashboardHandler) GetRecentChanges(c *fiber.Ctx) error {
	limitStr := c.Query("limit", "20")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 20
	}

	changes, err := h.service.GetRecentChanges(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch recent changes"})
	}

	return c.JSON(changes)
}
