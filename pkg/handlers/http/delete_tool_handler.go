package http

import (
	appTool "github.com/NeuralTrust/ToolFinder/pkg/app/tool"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type deleteToolHandler struct {
	logger  *logrus.Logger
	deleter appTool.Deleter
}

func NewDeleteToolHandler(logger *logrus.Logger, deleter appTool.Deleter) Handler {
	return &deleteToolHandler{
		logger:  logger,
		deleter: deleter,
	}
}

// Handle @Summary Delete a tool
// @Tags Admin
// @Param Authorization header string true "Bearer token"
// @Param tool_id path string true "Tool ID"
// @Success 204 "Tool deleted"
// @Failure 404 {object} map[string]interface{} "Tool not found"
// @Router /api/v1/tools/{tool_id} [delete]
func (h *deleteToolHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("tool_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid tool_id"})
	}
	if err := h.deleter.Delete(c.Context(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
