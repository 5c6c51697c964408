package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// Header carries the ray id on requests and responses.
	Header = "X-Ray-ID"
	// LocalsKey is the fiber locals key holding the ray id.
	LocalsKey = "ray_id"
)

// New returns a middleware assigning every request a ray id.
// An incoming X-Ray-ID header is kept so callers can correlate requests.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
