package catalog

import (
	"context"

	"ledger-manager/core/directory"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Resolver turns a Source into a best-effort name lookup.
type Resolver struct {
	source Source
	logger *zap.Logger
	sf     singleflight.Group
}

// NewResolver creates a Resolver over source. A nil source never resolves anything.
func NewResolver(source Source, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{source: source, logger: logger}
}

// Source returns the wrapped source, or nil when the catalog is disabled.
func (r *Resolver) Source() Source {
	return r.source
}

// Resolve returns the catalog name for id. Source errors are logged and reported as a miss.
func (r *Resolver) Resolve(ctx context.Context, id string) (string, bool) {
	if r.source == nil {
		return "", false
	}

	key := directory.Normalize(id)
	result, err, _ := r.sf.Do(key, func() (interface{}, error) {
		name, found, err := r.source.Lookup(ctx, key)
		if err != nil || !found {
			return "", err
		}
		return name, nil
	})
	if err != nil {
		r.logger.Warn("Catalog lookup failed",
			zap.String("source", r.source.Name()),
			zap.String("identifier", key),
			zap.Error(err))
		return "", false
	}

	name := result.(string)
	return name, name != ""
}
