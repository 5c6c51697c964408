package auth

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(token string) *fiber.App {
	app := fiber.New()
	app.Use(New(Config{Token: token}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		header string
		want   int
	}{
		{"Disabled", "", "", fiber.StatusOK},
		{"Valid", "secret", "Token secret", fiber.StatusOK},
		{"Scheme Case Insensitive", "secret", "token secret", fiber.StatusOK},
		{"Missing", "secret", "", fiber.StatusForbidden},
		{"Wrong Token", "secret", "Token nope", fiber.StatusForbidden},
		{"Wrong Scheme", "secret", "Bearer secret", fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := newApp(tt.token).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestAuthBody(t *testing.T) {
	resp, err := newApp("secret").Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"detail":"Authentication credentials were not provided."}`, string(body))
}
