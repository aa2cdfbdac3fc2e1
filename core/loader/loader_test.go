package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("SkipsDisabled", func(t *testing.T) {
		on := &stubFeature{name: "relationships", enabled: true}
		off := &stubFeature{name: "integrity", enabled: false}

		m := NewManager()
		m.Register(on)
		m.Register(off)

		loaded, err := m.LoadAll(fiber.New())
		require.NoError(t, err)
		assert.Equal(t, []string{"relationships"}, loaded)
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)
	})

	t.Run("LoadError", func(t *testing.T) {
		m := NewManager()
		m.Register(&stubFeature{name: "broken", enabled: true, err: errors.New("boom")})

		_, err := m.LoadAll(fiber.New())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("DuplicateName", func(t *testing.T) {
		m := NewManager()
		m.Register(&stubFeature{name: "same", enabled: true})
		m.Register(&stubFeature{name: "same", enabled: true})

		_, err := m.LoadAll(fiber.New())
		assert.Error(t, err)
	})
}
