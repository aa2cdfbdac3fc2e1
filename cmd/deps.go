package cmd

import (
	"context"
	"fmt"

	"follow-checker/core/classify"
	"follow-checker/core/config"
	"follow-checker/core/database"
	"follow-checker/core/logger"
	"follow-checker/core/resultcache"
	"follow-checker/core/storage"
	"follow-checker/feature/relationships"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// cacheMode selects how loadDeps treats the cache database.
type cacheMode int

const (
	// cacheOff skips the database; results stay in memory.
	cacheOff cacheMode = iota
	// cacheInspect connects without migrating, for schema checks.
	cacheInspect
	// cacheUse connects and migrates the cache table.
	cacheUse
)

// runtimeDeps bundles what every command builds from configuration.
type runtimeDeps struct {
	cfg    *config.Config
	logger *zap.Logger
	client storage.Client
	db     *gorm.DB
	cache  resultcache.Store
}

// loadDeps loads configuration and connects the optional backends.
// Storage and database failures are logged and leave the field nil.
func loadDeps(ctx context.Context, mode cacheMode) (*runtimeDeps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	d := &runtimeDeps{cfg: cfg, logger: logg, cache: resultcache.NewMemoryStore()}

	if client, err := storage.NewClient(cfg.Storage); err != nil {
		logg.Warn("Storage client unavailable", zap.Error(err))
	} else {
		d.client = client
	}

	if mode == cacheOff {
		return d, nil
	}

	conn, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Warn("Cache database unavailable, results are kept in memory only", zap.Error(err))
		return d, nil
	}
	if mode == cacheInspect {
		d.db = conn
		return d, nil
	}
	store := resultcache.NewGormStore(conn)
	if err := store.Migrate(ctx); err != nil {
		logg.Warn("Cache migration failed, results are kept in memory only", zap.Error(err))
		return d, nil
	}
	d.db = conn
	d.cache = store
	logg.Debug("Connected to cache database", zap.String("driver", cfg.Database.Driver))

	return d, nil
}

// relationshipsOptions wires the relationships service from the loaded deps.
func (d *runtimeDeps) relationshipsOptions() relationships.Options {
	return relationships.Options{
		Cache:         d.cache,
		Client:        d.client,
		Bucket:        d.cfg.Storage.Bucket,
		ExportsPrefix: d.cfg.Storage.ExportsPrefix,
		ResultsPrefix: d.cfg.Storage.ResultsPrefix,
		Classifier:    classify.NewStage(nil, d.cfg.Classifier, d.logger),
		Logger:        d.logger,
	}
}
