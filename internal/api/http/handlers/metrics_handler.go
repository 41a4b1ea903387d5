package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/guisandroni/classroom-service/internal/observability"
)

// MetricsHandler exposes the in-process counters to administrators.
type MetricsHandler struct {
	metrics *observability.Metrics
}

// NewMetricsHandler constructs handler.
func NewMetricsHandler(metrics *observability.Metrics) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Snapshot handles GET /api/metrics.
func (h *MetricsHandler) Snapshot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"routes": h.metrics.Snapshot()})
}
