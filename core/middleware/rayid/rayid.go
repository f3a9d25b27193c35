// Package rayid assigns a unique request identifier to every request.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the generated ray id.
const HeaderName = "X-Ray-ID"

// New returns a middleware that stores a fresh ray id in the request locals
// and echoes it in the response headers. Incoming ids are not trusted; a new
// id is minted per request.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := uuid.NewString()
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
