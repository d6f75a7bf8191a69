package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization, X-Client-Info, Apikey"
)

// CORS stamps the allow headers on every response and answers any OPTIONS
// request with 200 and an empty body. The stock fiber cors middleware
// replies 204 to preflights, which the marketing site's clients do not
// expect.
func CORS(allowOrigins []string) fiber.Handler {
	wildcard := len(allowOrigins) == 0
	allowed := make(map[string]bool, len(allowOrigins))
	for _, o := range allowOrigins {
		if o == "*" {
			wildcard = true
		}
		allowed[strings.TrimRight(o, "/")] = true
	}

	return func(c *fiber.Ctx) error {
		if wildcard {
			c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		} else {
			c.Vary(fiber.HeaderOrigin)
			if origin := c.Get(fiber.HeaderOrigin); allowed[origin] {
				c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
			}
		}
		c.Set(fiber.HeaderAccessControlAllowMethods, corsAllowMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, corsAllowHeaders)

		if c.Method() == fiber.MethodOptions {
			c.Status(fiber.StatusOK)
			return nil
		}
		return c.Next()
	}
}
