package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tenderdesk/tenderdesk-backend/internal/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// LandingStats serves the unauthenticated landing page counters.
func (h *StatsHandler) LandingStats(c *fiber.Ctx) error {
	stats, err := h.statsService.LandingStats()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(stats)
}
