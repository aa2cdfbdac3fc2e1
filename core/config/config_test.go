package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 32, cfg.Server.BodyLimitMB)
	assert.True(t, cfg.Server.Swagger)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "follow-checker.db", cfg.Database.Name)
	assert.Equal(t, "follow-checker", cfg.Storage.Bucket)
	assert.Equal(t, "exports", cfg.Storage.ExportsPrefix)
	assert.Equal(t, "results", cfg.Storage.ResultsPrefix)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Classifier.Enabled)
	assert.Equal(t, 10, cfg.Classifier.TimeoutSeconds)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "mysql")
	t.Setenv("CLASSIFIER_ENABLED", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.True(t, cfg.Classifier.Enabled)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("STORAGE_BUCKET=from-dotenv\nLOG_FORMAT=console\n"), 0o600)
	require.NoError(t, err)

	// godotenv.Overload writes into the process environment
	t.Setenv("STORAGE_BUCKET", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", cfg.Storage.Bucket)
	assert.Equal(t, "console", cfg.Log.Format)
}
