package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Config holds the accepted API token.
type Config struct {
	// Token is required in "Authorization: Token <token>". Empty disables auth.
	Token string
}

// New returns a middleware rejecting requests without the configured token.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.Token == "" {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"detail": "Authentication credentials were not provided.",
			})
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Token") || strings.TrimSpace(token) != cfg.Token {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"detail": "Invalid token",
			})
		}
		return c.Next()
	}
}
