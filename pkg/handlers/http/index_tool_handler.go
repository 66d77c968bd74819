package http

import (
	"errors"

	appTool "github.com/NeuralTrust/ToolFinder/pkg/app/tool"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type indexToolHandler struct {
	logger  *logrus.Logger
	indexer appTool.Indexer
}

func NewIndexToolHandler(logger *logrus.Logger, indexer appTool.Indexer) Handler {
	return &indexToolHandler{
		logger:  logger,
		indexer: indexer,
	}
}

// Handle @Summary Re-index a tool
// @Description Recomputes the stored embedding of one tool
// @Tags Admin
// @Param Authorization header string true "Bearer token"
// @Param tool_id path string true "Tool ID"
// @Success 204 "Tool indexed"
// @Failure 404 {object} map[string]interface{} "Tool not found"
// @Failure 409 {object} map[string]interface{} "Semantic search disabled"
// @Router /api/v1/tools/{tool_id}/embedding [post]
func (h *indexToolHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("tool_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid tool_id"})
	}
	if err := h.indexer.Index(c.Context(), id); err != nil {
		if errors.Is(err, appTool.ErrIndexingDisabled) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return respondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
