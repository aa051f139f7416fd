package ledger

import (
	"ledger-manager/core/catalog"
	"ledger-manager/core/ident"
	"ledger-manager/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new ledger feature around processor.
func NewFeature(validator *ident.Validator, processor *reconcile.Processor, resolver *catalog.Resolver, logger *zap.Logger) *Feature {
	svc := NewService(validator, processor, resolver, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Service returns the feature's ledger service.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "ledger"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
