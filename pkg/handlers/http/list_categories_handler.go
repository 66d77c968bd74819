package http

import (
	appCategory "github.com/NeuralTrust/ToolFinder/pkg/app/category"
	"github.com/NeuralTrust/ToolFinder/pkg/domain/category"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listCategoriesHandler struct {
	logger *logrus.Logger
	finder appCategory.Finder
}

func NewListCategoriesHandler(logger *logrus.Logger, finder appCategory.Finder) Handler {
	return &listCategoriesHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary List categories
// @Description Returns every category in display order
// @Tags Categories
// @Produce json
// @Success 200 {array} category.Category "Categories"
// @Failure 500 {object} map[string]interface{} "Internal error"
// @Router /api/v1/categories [get]
func (h *listCategoriesHandler) Handle(c *fiber.Ctx) error {
	categories, err := h.finder.List(c.Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if categories == nil {
		categories = []category.Category{}
	}
	return c.Status(fiber.StatusOK).JSON(categories)
}
