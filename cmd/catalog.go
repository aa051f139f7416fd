package cmd

import (
	"ledger-manager/core/catalog"
	"ledger-manager/core/config"
	"ledger-manager/core/database"
	"ledger-manager/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// backends holds the optional catalog connections shared by the commands.
type backends struct {
	db     *gorm.DB
	client storage.Client
	source catalog.Source
}

// connectCatalog opens only the backends the configured catalog source needs.
// Connection failures are logged and leave the catalog disabled.
func connectCatalog(cfg *config.Config, logg *zap.Logger) backends {
	var b backends

	switch cfg.Catalog.Source {
	case catalog.SourceDatabase:
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			b.db = conn
			logg.Info("Connected to catalog database", zap.String("driver", cfg.Database.Driver))
		}
	case catalog.SourceStorage:
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage client failed", zap.Error(err))
		} else {
			b.client = client
		}
	}

	source, err := catalog.New(cfg.Catalog, b.db, b.client, cfg.Storage.Bucket)
	if err != nil {
		logg.Warn("Catalog disabled", zap.Error(err))
		return b
	}
	if source != nil {
		logg.Info("Catalog enabled", zap.String("source", source.Name()))
	}
	b.source = source
	return b
}
