// Package config provides configuration management for the follow checker.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (via godotenv). Defaults live in the `default` struct
// tags of each partial configuration.
//
// # Configuration Structure
//
//   - Server: HTTP port, upload body limit, swagger toggle
//   - Database: result cache driver (sqlite or mysql) and connection details
//   - Storage: S3/MinIO credentials, bucket, exports/results prefixes
//   - Log: Logging level and format
//   - Classifier: optional classification stage (disabled by default)
//
// Environment keys are the upper-cased dotted path with underscores, e.g.
// DATABASE_DRIVER or STORAGE_RESULTS_PREFIX.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
