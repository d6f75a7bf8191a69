package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLogger(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/bad", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusBadRequest) })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })

	for _, path := range []string{"/ok", "/bad", "/boom"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		resp.Body.Close()
	}

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "/ok", fields["path"])
	assert.EqualValues(t, 200, fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestRequestLoggerFieldsSurviveLaterRequests(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	app := fiber.New()
	app.Use(RequestLogger(zap.New(core)))
	app.Get("/*", func(c *fiber.Ctx) error { return c.SendString("ok") })

	paths := []string{"/first", "/xx", "/a-much-longer-path", "/z"}
	for i, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(fiber.HeaderUserAgent, "agent-"+path)
		resp, err := app.Test(req)
		require.NoError(t, err, i)
		resp.Body.Close()
	}

	entries := logs.AllUntimed()
	require.Len(t, entries, len(paths))
	for i, path := range paths {
		fields := entries[i].ContextMap()
		assert.Equal(t, path, fields["path"])
		assert.Equal(t, http.MethodGet, fields["method"])
		assert.Equal(t, "agent-"+path, fields["user_agent"])
	}
}

func TestCORSPreflightHasEmptyBody(t *testing.T) {
	app := fiber.New()
	app.Use(CORS(nil))
	app.Post("/checkout", func(c *fiber.Ctx) error { return c.SendString("created") })

	resp, err := app.Test(httptest.NewRequest(http.MethodOptions, "/checkout", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Equal(t, corsAllowMethods, resp.Header.Get(fiber.HeaderAccessControlAllowMethods))
	assert.Equal(t, corsAllowHeaders, resp.Header.Get(fiber.HeaderAccessControlAllowHeaders))
}
