// Package database handles the optional catalog database connection.
//
// It wraps GORM to open either a MySQL server or a SQLite file based on the
// application's configuration, and offers a small schema inspector so the catalog
// can verify that its configured table exposes the identifier and name columns.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Catalog database unavailable", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "objects", "id", "name")
package database
