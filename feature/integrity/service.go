package integrity

import (
	"context"
	"time"

	"ledger-manager/core/catalog"
	"ledger-manager/core/database"
	"ledger-manager/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusDisabled = "disabled"
)

// pingTimeout bounds the database reachability probe.
const pingTimeout = 5 * time.Second

// CheckResult is the outcome of one backend check.
type CheckResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Report aggregates all integrity checks.
type Report struct {
	// Catalog is the configured catalog source (none, database, storage).
	Catalog string `json:"catalog"`
	// Database is the catalog database check.
	Database CheckResult `json:"database"`
	// Storage is the catalog storage check.
	Storage CheckResult `json:"storage"`
}

// Healthy reports whether no check failed.
func (r Report) Healthy() bool {
	return r.Database.Status != StatusError && r.Storage.Status != StatusError
}

// Service handles integrity checks.
type Service struct {
	source catalog.Source
	db     *gorm.DB
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new integrity service. Any backend may be nil when not configured.
func NewService(source catalog.Source, db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		db:     db,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Run executes every check.
func (s *Service) Run(ctx context.Context) Report {
	report := Report{
		Catalog:  catalog.SourceNone,
		Database: s.CheckDatabase(ctx),
		Storage:  s.CheckStorage(ctx),
	}
	if s.source != nil {
		report.Catalog = s.source.Name()
	}
	return report
}

// CheckDatabase pings the catalog database and validates the catalog table.
func (s *Service) CheckDatabase(ctx context.Context) CheckResult {
	if s.db == nil {
		return CheckResult{Status: StatusDisabled}
	}
	if err := database.Ping(s.db, pingTimeout); err != nil {
		return s.failed("database", err)
	}
	if s.source != nil && s.source.Name() == catalog.SourceDatabase {
		if err := s.source.Check(ctx); err != nil {
			return s.failed("database", err)
		}
	}
	return CheckResult{Status: StatusOK}
}

// CheckStorage verifies the catalog bucket and object.
func (s *Service) CheckStorage(ctx context.Context) CheckResult {
	if s.client == nil {
		return CheckResult{Status: StatusDisabled}
	}
	if s.source != nil && s.source.Name() == catalog.SourceStorage {
		if err := s.source.Check(ctx); err != nil {
			return s.failed("storage", err)
		}
		return CheckResult{Status: StatusOK}
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return s.failed("storage", err)
	}
	if !exists {
		return CheckResult{Status: StatusError, Error: "bucket " + s.bucket + " does not exist"}
	}
	return CheckResult{Status: StatusOK}
}

func (s *Service) failed(check string, err error) CheckResult {
	s.logger.Warn("Integrity check failed", zap.String("check", check), zap.Error(err))
	return CheckResult{Status: StatusError, Error: err.Error()}
}
