package integrity

import (
	"context"
	"errors"

	"follow-checker/core/storage"
	"follow-checker/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrStorageUnavailable is returned by storage checks when no client is configured.
	ErrStorageUnavailable = errors.New("storage is not configured")
	// ErrDatabaseUnavailable is returned by the cache check when no database is configured.
	ErrDatabaseUnavailable = errors.New("database is not configured")
)

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	region  string
	folders []string
	logger  *zap.Logger
	db      *gorm.DB
}

// NewService creates a new integrity service. client and db may be nil;
// the checks that need them then report them as unavailable.
func NewService(client storage.Client, cfg storage.Config, logger *zap.Logger, db *gorm.DB) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:  client,
		bucket:  cfg.Bucket,
		region:  cfg.Region,
		folders: checks.RequiredFolders(cfg),
		logger:  logger,
		db:      db,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrStorageUnavailable
	}
	return checks.CheckStructure(ctx, s.client, s.bucket, s.folders)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	if s.client == nil {
		return ErrStorageUnavailable
	}
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// RepairStructure creates the bucket if needed, then any missing folders,
// and returns the folders it created.
func (s *Service) RepairStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrStorageUnavailable
	}
	if _, err := checks.EnsureBucket(ctx, s.client, s.bucket, s.region, s.logger); err != nil {
		return nil, err
	}
	missing, err := s.CheckStructure(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.FixStructure(ctx, missing); err != nil {
		return nil, err
	}
	return missing, nil
}

// CheckCache verifies the result cache table schema.
func (s *Service) CheckCache() (*checks.CacheReport, error) {
	if s.db == nil {
		return nil, ErrDatabaseUnavailable
	}
	return checks.CheckCacheSchema(s.db)
}
