package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ledger-manager/core/storage"

	"gorm.io/gorm"
)

// ErrSourceUnavailable is returned when a source is selected but its backend is not connected.
var ErrSourceUnavailable = errors.New("catalog source unavailable")

// Source looks up display names by identifier.
type Source interface {
	// Name returns the source kind (e.g., "database", "storage").
	Name() string

	// Lookup returns the display name registered for id.
	// A missing identifier is reported with found=false, not an error.
	Lookup(ctx context.Context, id string) (name string, found bool, err error)

	// Check verifies that the backend is reachable and shaped as configured.
	Check(ctx context.Context) error
}

// New builds the Source selected by cfg. It returns a nil Source when the catalog is disabled.
func New(cfg Config, db *gorm.DB, client storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case SourceNone, "":
		return nil, nil
	case SourceDatabase:
		if db == nil {
			return nil, fmt.Errorf("%w: database not connected", ErrSourceUnavailable)
		}
		return NewDatabaseSource(db, cfg), nil
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("%w: storage client not configured", ErrSourceUnavailable)
		}
		ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
		return NewStorageSource(client, bucket, cfg.Object, ttl), nil
	default:
		return nil, fmt.Errorf("unknown catalog source: %s", cfg.Source)
	}
}
