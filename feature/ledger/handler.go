package ledger

import (
	"strings"

	"ledger-manager/core/logger"
	"ledger-manager/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RecordRequest is the body of a record call.
type RecordRequest struct {
	// Input is a whitespace separated list of identifiers, as typed or scanned.
	Input string `json:"input"`
	// IDs is an alternative list form; it is appended to Input.
	IDs []string `json:"ids"`
}

// Handler handles HTTP requests for the ledgers.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the ledger and directory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/ledger")
	group.Get("/", h.HandleGetLedgers)
	group.Get("/:flow", h.HandleGetLedger)
	group.Post("/:flow", h.HandleRecord)
	group.Delete("/", h.HandleClear)

	app.Get("/directory/:identifier", h.HandleLookup)
}

// HandleGetLedgers returns both ledgers.
// @Summary Get Ledgers
// @Description Returns the outstanding entries of the received and shipped ledgers.
// @Tags ledger
// @Produce json
// @Success 200 {object} Ledgers "Both ledgers"
// @Router /ledger [get]
func (h *Handler) HandleGetLedgers(c *fiber.Ctx) error {
	return c.JSON(h.service.Ledgers())
}

// HandleGetLedger returns a single ledger.
// @Summary Get Ledger
// @Description Returns the outstanding entries of one ledger.
// @Tags ledger
// @Produce json
// @Param flow path string true "Flow (received or shipped)"
// @Success 200 {array} directory.TrackedObject "Ledger entries"
// @Failure 400 {object} map[string]string "Unknown flow"
// @Router /ledger/{flow} [get]
func (h *Handler) HandleGetLedger(c *fiber.Ctx) error {
	flow, err := reconcile.ParseFlow(c.Params("flow"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(h.service.Snapshot(flow))
}

// HandleRecord records a batch of identifiers in one flow.
// @Summary Record Identifiers
// @Description Applies each valid identifier to the flow, offsetting the opposite ledger first. Malformed identifiers are reported and skipped.
// @Tags ledger
// @Accept json
// @Produce json
// @Param flow path string true "Flow (received or shipped)"
// @Param request body RecordRequest true "Identifiers"
// @Success 200 {object} BatchResult "Batch outcome and both ledgers"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /ledger/{flow} [post]
func (h *Handler) HandleRecord(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	flow, err := reconcile.ParseFlow(c.Params("flow"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req RecordRequest
	if err := c.BodyParser(&req); err != nil {
		l.Warn("Malformed record request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	input := strings.TrimSpace(req.Input + " " + strings.Join(req.IDs, " "))
	if input == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no identifiers provided"})
	}

	result := h.service.Record(c.UserContext(), flow, input)
	l.Info("Recorded identifiers",
		zap.String("flow", string(flow)),
		zap.Int("accepted", len(result.Accepted)),
		zap.Int("rejected", len(result.Rejected)))

	return c.JSON(result)
}

// HandleClear empties both ledgers.
// @Summary Clear Ledgers
// @Description Empties both ledgers. Directory names are kept.
// @Tags ledger
// @Produce json
// @Success 200 {object} Ledgers "Both ledgers (empty)"
// @Router /ledger [delete]
func (h *Handler) HandleClear(c *fiber.Ctx) error {
	logger.WithRayID(h.service.logger, c).Info("Clearing ledgers")
	h.service.Clear()
	return c.JSON(h.service.Ledgers())
}

// HandleLookup returns the Directory entry of an identifier.
// @Summary Lookup Identifier
// @Description Case-insensitive Directory lookup.
// @Tags directory
// @Produce json
// @Param identifier path string true "Object identifier"
// @Success 200 {object} directory.TrackedObject "Directory entry"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /directory/{identifier} [get]
func (h *Handler) HandleLookup(c *fiber.Ctx) error {
	obj, ok := h.service.Lookup(c.Params("identifier"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "identifier not found"})
	}
	return c.JSON(fiber.Map{"id": obj.ID, "name": obj.Name})
}
