package ledger

import (
	"context"
	"sync"

	"ledger-manager/core/catalog"
	"ledger-manager/core/ident"
	"ledger-manager/core/reconcile"

	"go.uber.org/zap"
)

// BatchResult is the outcome of recording one batch of identifiers.
type BatchResult struct {
	// Flow is the direction the batch was recorded in.
	Flow reconcile.Flow `json:"flow"`

	// Accepted lists the identifiers applied to the ledgers, in input order.
	Accepted []string `json:"accepted"`

	// Rejected lists the tokens that are not well-formed identifiers.
	Rejected []string `json:"rejected"`

	// Ledgers holds both ledgers after the batch.
	Ledgers
}

// Ledgers is a point-in-time view of both ledgers.
type Ledgers struct {
	Received []reconcile.TrackedObject `json:"received"`
	Shipped  []reconcile.TrackedObject `json:"shipped"`
}

// Service records scanned identifiers into the reconciliation engine.
type Service struct {
	// mu keeps a batch and the snapshots returned with it consistent.
	mu        sync.Mutex
	validator *ident.Validator
	processor *reconcile.Processor
	resolver  *catalog.Resolver
	logger    *zap.Logger
}

// NewService creates a ledger service. resolver may be nil when no catalog is configured.
func NewService(validator *ident.Validator, processor *reconcile.Processor, resolver *catalog.Resolver, logger *zap.Logger) *Service {
	if resolver == nil {
		resolver = catalog.NewResolver(nil, logger)
	}
	return &Service{
		validator: validator,
		processor: processor,
		resolver:  resolver,
		logger:    logger,
	}
}

// IdentifierLength returns the identifier length accepted by the service.
func (s *Service) IdentifierLength() int {
	return s.validator.Length()
}

// Record applies every valid identifier of a whitespace separated batch to flow.
// Invalid tokens are skipped and reported; they never reach the processor.
func (s *Service) Record(ctx context.Context, flow reconcile.Flow, input string) BatchResult {
	valid, invalid := s.validator.Split(input)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range valid {
		s.ensureName(ctx, id)
		s.processor.Record(id, flow)
	}

	if len(invalid) > 0 {
		s.logger.Warn("Rejected malformed identifiers",
			zap.String("flow", string(flow)),
			zap.Strings("rejected", invalid))
	}
	s.logger.Debug("Recorded batch",
		zap.String("flow", string(flow)),
		zap.Int("accepted", len(valid)))

	return BatchResult{
		Flow:     flow,
		Accepted: orEmpty(valid),
		Rejected: orEmpty(invalid),
		Ledgers:  s.snapshotLocked(),
	}
}

// ensureName registers the catalog name of id before the processor falls back to a default.
func (s *Service) ensureName(ctx context.Context, id string) {
	dir := s.processor.Directory()
	if _, ok := dir.Lookup(id); ok {
		return
	}
	if name, ok := s.resolver.Resolve(ctx, id); ok {
		dir.Register(reconcile.TrackedObject{ID: id, Name: name, Quantity: 1})
	}
}

// Clear empties both ledgers.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.processor.Clear()
	s.logger.Info("Ledgers cleared")
}

// Snapshot returns one ledger.
func (s *Service) Snapshot(flow reconcile.Flow) []reconcile.TrackedObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processor.Snapshot(flow)
}

// Ledgers returns both ledgers.
func (s *Service) Ledgers() Ledgers {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Lookup returns the Directory entry for id.
func (s *Service) Lookup(id string) (reconcile.TrackedObject, bool) {
	return s.processor.Directory().Lookup(id)
}

func (s *Service) snapshotLocked() Ledgers {
	return Ledgers{
		Received: s.processor.Snapshot(reconcile.FlowReceived),
		Shipped:  s.processor.Snapshot(reconcile.FlowShipped),
	}
}

func orEmpty(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
