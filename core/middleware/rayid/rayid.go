package rayid

import (
	"follow-checker/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName carries the ray ID on requests and responses.
const HeaderName = "X-Ray-ID"

// New returns a middleware that assigns every request a ray ID.
// An incoming X-Ray-ID header is reused, otherwise a UUID is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
