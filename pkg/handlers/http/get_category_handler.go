package http

import (
	"strings"

	appCategory "github.com/NeuralTrust/ToolFinder/pkg/app/category"
	appTool "github.com/NeuralTrust/ToolFinder/pkg/app/tool"
	"github.com/NeuralTrust/ToolFinder/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getCategoryHandler struct {
	logger         *logrus.Logger
	categoryFinder appCategory.Finder
	toolFinder     appTool.Finder
}

func NewGetCategoryHandler(
	logger *logrus.Logger,
	categoryFinder appCategory.Finder,
	toolFinder appTool.Finder,
) Handler {
	return &getCategoryHandler{
		logger:         logger,
		categoryFinder: categoryFinder,
		toolFinder:     toolFinder,
	}
}

// Handle @Summary Retrieve a category by slug
// @Description Returns the category and its tools in display order
// @Tags Categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} response.CategoryOutput "Category with tools"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Router /api/v1/categories/{slug} [get]
func (h *getCategoryHandler) Handle(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "slug is required"})
	}

	cat, err := h.categoryFinder.GetBySlug(c.Context(), slug)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	tools, err := h.toolFinder.ListByCategory(c.Context(), cat.ID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(response.CategoryOutput{
		Category: *cat,
		Tools:    response.NonNilTools(tools),
	})
}
