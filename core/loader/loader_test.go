package loader

import (
	"errors"
	"net/http/httptest"
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
	if s.err != nil {
		return s.err
	}
	s.loaded = true
	app.Get("/"+s.name, func(c *fiber.Ctx) error { return c.SendString(s.name) })
	return nil
}

func TestManager(t *testing.T) {
	t.Run("Loads Enabled Features", func(t *testing.T) {
		on := &stubFeature{name: "on", enabled: true}
		off := &stubFeature{name: "off"}
		mgr := NewManager(nil)
		mgr.Register(on)
		mgr.Register(off)
		assert.Len(t, mgr.Features(), 2)

		app := fiber.New()
		require.NoError(t, mgr.LoadAll(app))
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)

		resp, err := app.Test(httptest.NewRequest("GET", "/on", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Stops On Failure", func(t *testing.T) {
		mgr := NewManager(nil)
		mgr.Register(&stubFeature{name: "broken", enabled: true, err: errors.New("boom")})
		after := &stubFeature{name: "after", enabled: true}
		mgr.Register(after)

		err := mgr.LoadAll(fiber.New())
		assert.EqualError(t, err, "failed to load feature broken: boom")
		assert.False(t, after.loaded)
	})
}
