package loader_test

import (
	"errors"
	"testing"

	"menu-builder/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loaded = true
	return s.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	t.Run("Skips disabled features", func(t *testing.T) {
		mgr := loader.NewManager()
		enabled := &stubFeature{name: "menu", enabled: true}
		disabled := &stubFeature{name: "media", enabled: false}
		mgr.Register(enabled)
		mgr.Register(disabled)

		err := mgr.LoadAll(app)
		assert.NoError(t, err)
		assert.True(t, enabled.loaded)
		assert.False(t, disabled.loaded)
	})

	t.Run("Propagates load errors with feature name", func(t *testing.T) {
		mgr := loader.NewManager()
		mgr.Register(&stubFeature{name: "menu", enabled: true, loadErr: errors.New("boom")})

		err := mgr.LoadAll(app)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "menu")
	})
}
