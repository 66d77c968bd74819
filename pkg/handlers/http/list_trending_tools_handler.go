package http

import (
	appTool "github.com/NeuralTrust/ToolFinder/pkg/app/tool"
	"github.com/NeuralTrust/ToolFinder/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listTrendingToolsHandler struct {
	logger *logrus.Logger
	finder appTool.Finder
	limit  int
}

func NewListTrendingToolsHandler(logger *logrus.Logger, finder appTool.Finder, limit int) Handler {
	return &listTrendingToolsHandler{
		logger: logger,
		finder: finder,
		limit:  limit,
	}
}

// Handle @Summary List trending tools
// @Description Returns the trending tools shown on the home page
// @Tags Tools
// @Produce json
// @Success 200 {array} tool.Tool "Trending tools"
// @Router /api/v1/tools/trending [get]
func (h *listTrendingToolsHandler) Handle(c *fiber.Ctx) error {
	tools, err := h.finder.ListTrending(c.Context(), h.limit)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(response.NonNilTools(tools))
}
