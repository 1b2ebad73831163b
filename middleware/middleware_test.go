package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp() *fiber.App {
	app := fiber.New()
	app.Use(StructuredLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), Security())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("requestID").(string))
	})
	return app
}

func TestStructuredLoggerRequestID(t *testing.T) {
	app := setupTestApp()

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "Generated when missing", incoming: "", keep: false},
		{name: "Kept when valid", incoming: uuid.New().String(), keep: true},
		{name: "Replaced when malformed", incoming: "not-a-uuid", keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set("X-Request-ID", tt.incoming)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)

			requestID := resp.Header.Get("X-Request-ID")
			_, err = uuid.Parse(requestID)
			assert.NoError(t, err)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, requestID, string(body))

			if tt.keep {
				assert.Equal(t, tt.incoming, requestID)
			} else {
				assert.NotEqual(t, tt.incoming, requestID)
			}
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Contains(t, resp.Header.Get("Content-Security-Policy"), "default-src 'self'")
}
