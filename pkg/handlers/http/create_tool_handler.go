package http

import (
	appTool "github.com/NeuralTrust/ToolFinder/pkg/app/tool"
	"github.com/NeuralTrust/ToolFinder/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createToolHandler struct {
	logger  *logrus.Logger
	creator appTool.Creator
}

func NewCreateToolHandler(logger *logrus.Logger, creator appTool.Creator) Handler {
	return &createToolHandler{
		logger:  logger,
		creator: creator,
	}
}

// Handle @Summary Create a tool
// @Description Adds a tool to the catalogue. Indexing for semantic search runs asynchronously.
// @Tags Admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param request body request.CreateToolRequest true "Tool data"
// @Success 201 {object} tool.Tool "Tool created"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /api/v1/tools [post]
func (h *createToolHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateToolRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Debug("failed to parse create tool body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return respondError(c, h.logger, err)
	}

	created, err := h.creator.Create(c.Context(), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	h.logger.WithField("tool_id", created.ID).Info("tool created")
	return c.Status(fiber.StatusCreated).JSON(created)
}
