package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cpu-catalog-be/internal/dto"
	"cpu-catalog-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
}

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger.NewNopLogger())})
	app.Use(RequestLogger(logger.NewNopLogger()))

	app.Post("/echo", func(ctx *fiber.Ctx) error {
		var p payload
		if err := ParseBody(ctx, &p); err != nil {
			return err
		}
		return ctx.JSON(p)
	})
	app.Get("/items/:id", func(ctx *fiber.Ctx) error {
		id, err := ParamID(ctx, "id")
		if err != nil {
			return err
		}
		if id == 0 {
			return NoContentOK(ctx)
		}
		return ctx.JSON(fiber.Map{"id": id})
	})
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return errors.New("constraint violated")
	})
	return app
}

func TestErrorHandling(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name        string
		method      string
		path        string
		body        string
		contentType string
		wantStatus  int
	}{
		{"malformed json", "POST", "/echo", "{", fiber.MIMEApplicationJSON, fiber.StatusBadRequest},
		{"unsupported content type", "POST", "/echo", "name=x", "text/plain", fiber.StatusUnprocessableEntity},
		{"non numeric id", "GET", "/items/abc", "", "", fiber.StatusBadRequest},
		{"negative id", "GET", "/items/-1", "", "", fiber.StatusBadRequest},
		{"id above int64 range", "GET", "/items/9223372036854775808", "", "", fiber.StatusBadRequest},
		{"id above uint64 range", "GET", "/items/18446744073709551616", "", "", fiber.StatusBadRequest},
		{"unknown route", "GET", "/nope", "", "", fiber.StatusNotFound},
		{"plain error", "GET", "/boom", "", "", fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.path, body.Path)
			assert.NotEmpty(t, body.Error)
			assert.False(t, body.Timestamp.IsZero())
		})
	}
}

func TestHappyPaths(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/echo", strings.NewReader(`{"name":"AM5"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/items/0", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body)

	resp, err = app.Test(httptest.NewRequest("GET", "/items/9223372036854775807", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "9223372036854775807")
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}
