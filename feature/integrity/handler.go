package integrity

import (
	"ledger-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/integrity", h.HandleIntegrityCheck)
}

// HandleIntegrityCheck runs all catalog backend checks.
// @Summary Run Integrity Checks
// @Description Checks that the configured catalog database and storage are reachable.
// @Tags integrity
// @Produce json
// @Success 200 {object} Report "All checks passed"
// @Failure 503 {object} Report "At least one check failed"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Running integrity checks")

	report := h.service.Run(c.UserContext())
	if !report.Healthy() {
		l.Warn("Integrity checks failed",
			zap.String("database", report.Database.Status),
			zap.String("storage", report.Storage.Status))
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}
