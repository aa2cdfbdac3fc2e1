package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		enabled zapcore.Level
		blocked zapcore.Level
	}{
		{"DebugConsole", Config{Level: "debug", Format: "console"}, zapcore.DebugLevel, zapcore.Level(-2)},
		{"InfoJSON", Config{Level: "info", Format: "json"}, zapcore.InfoLevel, zapcore.DebugLevel},
		{"Warn", Config{Level: "warn"}, zapcore.WarnLevel, zapcore.InfoLevel},
		{"DefaultLevel", Config{}, zapcore.InfoLevel, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.enabled))
			assert.False(t, l.Core().Enabled(tt.blocked))
		})
	}

	t.Run("InvalidLevel", func(t *testing.T) {
		_, err := New(&Config{Level: "loud"})
		assert.Error(t, err)
	})
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/with", func(c *fiber.Ctx) error {
		c.Locals(RayIDKey, "ray-123")
		WithRayID(base, c).Info("with")
		return nil
	})
	app.Get("/without", func(c *fiber.Ctx) error {
		WithRayID(base, c).Info("without")
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/with", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/without", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "ray-123", entries[0].ContextMap()["ray_id"])
	assert.NotContains(t, entries[1].ContextMap(), "ray_id")
}
