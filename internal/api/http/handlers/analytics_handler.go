package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/query-service/internal/service"
)

// AnalyticsHandler serves corpus statistics.
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: analyticsService}
}

// Summarize GET /api/analytics.
func (h *AnalyticsHandler) Summarize(c *fiber.Ctx) error {
	snapshot, err := h.service.Summarize(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(snapshot)
}
