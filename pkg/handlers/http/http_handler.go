package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	GetVersionHandler Handler

	// Catalogue
	ListCategoriesHandler    Handler
	GetCategoryHandler       Handler
	ListTrendingToolsHandler Handler
	GetToolHandler           Handler

	// Search
	SearchHandler Handler

	// Admin
	CreateSessionHandler Handler
	CreateToolHandler    Handler
	DeleteToolHandler    Handler
	IndexToolHandler     Handler
}
