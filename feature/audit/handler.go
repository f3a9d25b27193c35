package audit

import (
	"inventory-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the auditor.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the audit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/audit")
	group.Get("/report", h.HandleGetReport)
}

// HandleGetReport generates a low-stock report on demand.
// @Summary Low-stock report
// @Description Generates a timestamped low-stock report from the persisted product table.
// @Tags audit
// @Produce plain
// @Param threshold query string false "Low-stock threshold; non-numeric input falls back to the default" default(5)
// @Success 200 {string} string "Rendered report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit/report [get]
func (h *Handler) HandleGetReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	threshold := h.service.ParseThreshold(c.Query("threshold"))
	report, err := h.service.GenerateReport(c.Context(), threshold)
	if err != nil {
		l.Error("audit report failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(report)
}
