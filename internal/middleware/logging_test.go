package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-farmpet-api/internal/errs"
	"go-farmpet-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(log)})
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(log))

	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c *fiber.Ctx) error {
		return errs.NewNotFoundError("medication not found", errs.Code("MEDICATION_NOT_FOUND"))
	})
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("disk on fire") })
	return app
}

func get(t *testing.T, app *fiber.App, path string) (int, map[string]string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := map[string]string{}
	_ = json.Unmarshal(raw, &body)
	return resp.StatusCode, body
}

func TestErrorHandler(t *testing.T) {
	var buf bytes.Buffer
	app := newApp(zerolog.New(&buf))

	status, body := get(t, app, "/missing")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "MEDICATION_NOT_FOUND", body["code"])
	assert.Equal(t, "medication not found", body["error"])

	status, body = get(t, app, "/boom")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body["code"])
	assert.NotContains(t, body["error"], "disk on fire")
	assert.Contains(t, buf.String(), "disk on fire")
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := newApp(zerolog.New(&buf))

	status, _ := get(t, app, "/ok")
	require.Equal(t, http.StatusOK, status)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, float64(200), line["status"])
	assert.Equal(t, "/ok", line["path"])
	assert.NotEmpty(t, line["request_id"])

	buf.Reset()
	get(t, app, "/missing")
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"status":404`)
}
