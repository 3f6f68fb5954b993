package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the request's ray id.
const Header = "X-Ray-ID"

// LocalsKey is the fiber locals key holding the ray id.
const LocalsKey = "ray_id"

// New returns middleware that assigns every request a ray id. An incoming
// X-Ray-ID header is reused so calls can be traced across services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
