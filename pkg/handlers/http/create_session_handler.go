package http

import (
	"github.com/NeuralTrust/ToolFinder/pkg/app/admin"
	"github.com/NeuralTrust/ToolFinder/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createSessionHandler struct {
	logger  *logrus.Logger
	creator admin.SessionCreator
}

func NewCreateSessionHandler(logger *logrus.Logger, creator admin.SessionCreator) Handler {
	return &createSessionHandler{
		logger:  logger,
		creator: creator,
	}
}

// Handle @Summary Open an admin session
// @Description Exchanges the admin password for a bearer token
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request.CreateSessionRequest true "Admin password"
// @Success 201 {object} admin.Session "Session token"
// @Failure 400 {object} map[string]interface{} "Missing password"
// @Failure 401 {object} map[string]interface{} "Wrong password"
// @Router /api/v1/admin/session [post]
func (h *createSessionHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return respondError(c, h.logger, err)
	}

	session, err := h.creator.Create(c.Context(), req.Password)
	if err != nil {
		h.logger.WithField("ip", c.IP()).Warn("admin session rejected")
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}
