package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const stsHeaderValue = "max-age=31536000; includeSubDomains"

type securityMiddleware struct{}

// NewSecurityMiddleware sets the response headers every JSON endpoint should
// carry. HSTS is only sent when the request reached us over HTTPS, directly
// or through a proxy that says so.
func NewSecurityMiddleware() Middleware {
	return &securityMiddleware{}
}

func (m *securityMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		if c.Protocol() == "https" || strings.EqualFold(c.Get("X-Forwarded-Proto"), "https") {
			c.Set("Strict-Transport-Security", stsHeaderValue)
		}
		return c.Next()
	}
}
