package http

import (
	appTool "github.com/NeuralTrust/ToolFinder/pkg/app/tool"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type getToolHandler struct {
	logger *logrus.Logger
	finder appTool.Finder
}

func NewGetToolHandler(logger *logrus.Logger, finder appTool.Finder) Handler {
	return &getToolHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary Retrieve a tool by ID
// @Tags Tools
// @Produce json
// @Param tool_id path string true "Tool ID"
// @Success 200 {object} tool.Tool "Tool"
// @Failure 400 {object} map[string]interface{} "Invalid tool_id"
// @Failure 404 {object} map[string]interface{} "Tool not found"
// @Router /api/v1/tools/{tool_id} [get]
func (h *getToolHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("tool_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid tool_id"})
	}
	t, err := h.finder.Find(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(t)
}
