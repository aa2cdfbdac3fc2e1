// Package database opens the connection backing the result cache.
//
// It wraps GORM and supports two drivers:
//   - sqlite (default): a local file next to the binary, or ":memory:" in tests.
//   - mysql: a shared server, for deployments running several instances.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for both dialects. The
// integrity feature uses it to verify the cache table layout.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("result cache disabled", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "result_cache")
package database
