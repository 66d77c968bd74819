package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

var (
	defaultAllowMethods = []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodDelete, fiber.MethodOptions}
	defaultAllowHeaders = "Content-Type, Authorization"
)

type corsGlobalMiddleware struct {
	allowOrigins []string
	allowMethods []string
	maxAge       string
}

// NewCORSGlobalMiddleware lets the browser front end call the API. Only
// bearer tokens are used, so credentials are never allowed.
func NewCORSGlobalMiddleware(allowOrigins []string, maxAge string) Middleware {
	return &corsGlobalMiddleware{
		allowOrigins: allowOrigins,
		allowMethods: defaultAllowMethods,
		maxAge:       maxAge,
	}
}

func (m *corsGlobalMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if origin == "" || !m.allowed(origin) {
			return c.Next()
		}

		c.Vary("Origin")
		if hasStar(m.allowOrigins) {
			c.Set("Access-Control-Allow-Origin", "*")
		} else {
			c.Set("Access-Control-Allow-Origin", origin)
		}

		if c.Method() == fiber.MethodOptions && c.Get("Access-Control-Request-Method") != "" {
			c.Set("Access-Control-Allow-Methods", strings.Join(m.allowMethods, ", "))
			if reqHeaders := c.Get("Access-Control-Request-Headers"); reqHeaders != "" {
				c.Set("Access-Control-Allow-Headers", reqHeaders)
			} else {
				c.Set("Access-Control-Allow-Headers", defaultAllowHeaders)
			}
			if m.maxAge != "" {
				c.Set("Access-Control-Max-Age", m.maxAge)
			}
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}

func (m *corsGlobalMiddleware) allowed(origin string) bool {
	for _, o := range m.allowOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

func hasStar(arr []string) bool {
	for _, v := range arr {
		if v == "*" {
			return true
		}
	}
	return false
}
