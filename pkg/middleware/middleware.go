package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

type Transport struct {
	PanicRecoverMiddleware Middleware
	SecurityMiddleware     Middleware
	CORSMiddleware         Middleware
	MetricsMiddleware      Middleware
	AdminAuthMiddleware    Middleware
}

// GetMiddlewares returns the handlers applied to every route, in order.
func (t *Transport) GetMiddlewares() []fiber.Handler {
	var handlers []fiber.Handler
	for _, m := range []Middleware{
		t.PanicRecoverMiddleware,
		t.SecurityMiddleware,
		t.CORSMiddleware,
		t.MetricsMiddleware,
	} {
		if m != nil {
			handlers = append(handlers, m.Middleware())
		}
	}
	return handlers
}
