package router

import (
	"errors"

	handlers "github.com/NeuralTrust/ToolFinder/pkg/handlers/http"
	"github.com/NeuralTrust/ToolFinder/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

var ErrMissingAdminAuth = errors.New("admin routes require an auth middleware")

type apiRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    *handlers.HandlerTransport
	swaggerURL          string
}

func NewAPIRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport *handlers.HandlerTransport,
	swaggerURL string,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		swaggerURL:          swaggerURL,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	if r.middlewareTransport.AdminAuthMiddleware == nil {
		return ErrMissingAdminAuth
	}
	h := r.handlerTransport

	for _, m := range r.middlewareTransport.GetMiddlewares() {
		router.Use(m)
	}

	if r.swaggerURL != "" {
		router.Static("/swagger.json", "./docs/swagger.json")
		router.Get("/docs/*", swagger.New(swagger.Config{
			URL: r.swaggerURL,
		}))
	}

	router.Get("/version", h.GetVersionHandler.Handle)

	adminAuth := r.middlewareTransport.AdminAuthMiddleware.Middleware()

	v1 := router.Group("/api/v1")
	{
		categories := v1.Group("/categories")
		{
			categories.Get("", h.ListCategoriesHandler.Handle)
			categories.Get("/:slug", h.GetCategoryHandler.Handle)
		}

		tools := v1.Group("/tools")
		{
			// registered before /:tool_id so "trending" is not read as an ID
			tools.Get("/trending", h.ListTrendingToolsHandler.Handle)
			tools.Get("/:tool_id", h.GetToolHandler.Handle)
			tools.Post("", adminAuth, h.CreateToolHandler.Handle)
			tools.Delete("/:tool_id", adminAuth, h.DeleteToolHandler.Handle)
			tools.Post("/:tool_id/embedding", adminAuth, h.IndexToolHandler.Handle)
		}

		v1.Post("/search", h.SearchHandler.Handle)
		v1.Post("/admin/session", h.CreateSessionHandler.Handle)
	}
	return nil
}
