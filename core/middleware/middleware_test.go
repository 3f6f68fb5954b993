package middleware_test

import (
	"net/http/httptest"
	"testing"

	"flatacuties/core/middleware/auth"
	"flatacuties/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(rayid.LocalsKey).(string))
	})

	t.Run("Generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		_, err = uuid.Parse(resp.Header.Get(rayid.Header))
		assert.NoError(t, err)
	})

	t.Run("Propagated", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.Header, id)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, id, resp.Header.Get(rayid.Header))
	})

	t.Run("InvalidReplaced", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.Header, "not-a-uuid")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.NotEqual(t, "not-a-uuid", resp.Header.Get(rayid.Header))
	})
}

func TestAuth(t *testing.T) {
	newApp := func(key string) *fiber.App {
		app := fiber.New()
		app.Use(auth.New(auth.Config{ApiKey: key}))
		app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
		return app
	}

	t.Run("Disabled", func(t *testing.T) {
		resp, err := newApp("").Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Missing", func(t *testing.T) {
		resp, err := newApp("secret").Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Valid", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(auth.Header, "secret")
		resp, err := newApp("secret").Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
