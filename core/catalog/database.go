package catalog

import (
	"context"
	"fmt"
	"strings"

	"ledger-manager/core/database"
	"ledger-manager/core/directory"

	"gorm.io/gorm"
)

// catalogRow is the projection read from the catalog table.
type catalogRow struct {
	ID   string `gorm:"column:id"`
	Name string `gorm:"column:name"`
}

// DatabaseSource reads names from a table in the catalog database.
type DatabaseSource struct {
	db         *gorm.DB
	table      string
	idColumn   string
	nameColumn string
}

// NewDatabaseSource creates a source over the table and columns named in cfg.
func NewDatabaseSource(db *gorm.DB, cfg Config) *DatabaseSource {
	return &DatabaseSource{
		db:         db,
		table:      cfg.Table,
		idColumn:   cfg.IDColumn,
		nameColumn: cfg.NameColumn,
	}
}

// Name returns the source kind.
func (s *DatabaseSource) Name() string {
	return SourceDatabase
}

// Lookup queries the catalog table for id, ignoring letter case.
func (s *DatabaseSource) Lookup(ctx context.Context, id string) (string, bool, error) {
	var rows []catalogRow
	err := s.db.WithContext(ctx).
		Table(s.table).
		Select(fmt.Sprintf("%s AS id, %s AS name", s.idColumn, s.nameColumn)).
		Where(fmt.Sprintf("UPPER(%s) = ?", s.idColumn), directory.Normalize(id)).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return "", false, fmt.Errorf("failed to query catalog table %s: %w", s.table, err)
	}

	if len(rows) == 0 || strings.TrimSpace(rows[0].Name) == "" {
		return "", false, nil
	}
	return rows[0].Name, true, nil
}

// Check verifies the catalog table exposes the configured columns.
func (s *DatabaseSource) Check(ctx context.Context) error {
	missing, err := database.MissingColumns(s.db.WithContext(ctx), s.table, s.idColumn, s.nameColumn)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("catalog table %s is missing columns: %s", s.table, strings.Join(missing, ", "))
	}
	return nil
}
