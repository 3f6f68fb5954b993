package logger_test

import (
	"net/http/httptest"
	"testing"

	"flatacuties/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Run("Debug", func(t *testing.T) {
		l, err := logger.New(&logger.Config{Level: "debug", Format: "console"})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("Warn", func(t *testing.T) {
		l, err := logger.New(&logger.Config{Level: "warn", Format: "json"})
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		_, err := logger.New(&logger.Config{Level: "loud"})
		assert.Error(t, err)
	})
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("ray_id", "ray-123")
		logger.WithRayID(base, c).Info("hello")
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "ray-123", logs.All()[0].ContextMap()["ray_id"])
}
