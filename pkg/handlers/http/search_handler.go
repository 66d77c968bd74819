package http

import (
	"time"

	"github.com/NeuralTrust/ToolFinder/pkg/app/search"
	"github.com/NeuralTrust/ToolFinder/pkg/handlers/http/request"
	"github.com/NeuralTrust/ToolFinder/pkg/handlers/http/response"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/metrics"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/metrics/metric_events"
	"github.com/NeuralTrust/ToolFinder/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type searchHandler struct {
	logger   *logrus.Logger
	searcher search.Searcher
	messages *search.MessageSelector
	worker   metrics.Worker
}

func NewSearchHandler(
	logger *logrus.Logger,
	searcher search.Searcher,
	messages *search.MessageSelector,
	worker metrics.Worker,
) Handler {
	return &searchHandler{
		logger:   logger,
		searcher: searcher,
		messages: messages,
		worker:   worker,
	}
}

// Handle @Summary Search tools
// @Description Ranks the catalogue against a free-text request
// @Tags Search
// @Accept json
// @Produce json
// @Param request body request.SearchRequest true "Search query"
// @Success 200 {object} response.SearchOutput "Ranked tools"
// @Failure 400 {object} map[string]interface{} "Empty or malformed query"
// @Router /api/v1/search [post]
func (h *searchHandler) Handle(c *fiber.Ctx) error {
	start := time.Now()
	evt := metric_events.NewSearchEvent(start)
	evt.Path = c.Path()
	evt.Method = c.Method()
	evt.IP = c.IP()
	if ua := utils.ParseUserAgent(c.Get(fiber.HeaderUserAgent), c.Get(fiber.HeaderAcceptLanguage)); ua != nil {
		evt.Device = ua.Device
		evt.Os = ua.OS
		evt.Browser = ua.Browser
		evt.Locale = ua.Locale
	}

	req, err := request.ParseSearchRequest(c.Body())
	if err != nil {
		h.logger.WithError(err).Debug("malformed search body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	evt.Query = req.Query

	result, err := h.searcher.Search(c.Context(), req.Query)
	if err != nil {
		evt.Error = err.Error()
		respErr := respondError(c, h.logger, err)
		evt.StatusCode = c.Response().StatusCode()
		h.emit(evt, start)
		return respErr
	}

	evt.Mode = string(result.Mode)
	evt.FallbackReason = result.FallbackReason
	evt.Fallback = result.FallbackReason != ""
	evt.ResultCount = len(result.Tools)
	for _, t := range result.Tools {
		evt.ToolIDs = append(evt.ToolIDs, t.ID.String())
	}
	evt.StatusCode = fiber.StatusOK
	h.emit(evt, start)

	return c.Status(fiber.StatusOK).JSON(response.SearchOutput{
		Tools:   response.NonNilTools(result.Tools),
		Mode:    string(result.Mode),
		Message: h.messages.Select(len(result.Tools)),
	})
}

func (h *searchHandler) emit(evt *metric_events.Event, start time.Time) {
	if h.worker == nil {
		return
	}
	evt.Finish(start, time.Now())
	h.worker.Process(evt)
}
