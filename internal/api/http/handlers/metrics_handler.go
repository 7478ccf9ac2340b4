package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/query-service/internal/observability"
)

// MetricsHandler exposes the in-memory request counters.
type MetricsHandler struct {
	metrics *observability.Metrics
}

// NewMetricsHandler constructs handler.
func NewMetricsHandler(metrics *observability.Metrics) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Summary GET /api/metrics.
func (h *MetricsHandler) Summary(c *fiber.Ctx) error {
	requests, failures := h.metrics.Snapshot()
	return c.JSON(fiber.Map{
		"requests": requests,
		"errors":   failures,
	})
}
