package middleware

import (
	"strconv"
	"time"

	"github.com/NeuralTrust/ToolFinder/pkg/infra/metrics"
	"github.com/NeuralTrust/ToolFinder/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
)

const aggregatedRoute = "all"

type metricsMiddleware struct{}

// NewMetricsMiddleware records request counts and latency per route
// pattern, never per concrete path, to keep label cardinality bounded.
func NewMetricsMiddleware() Middleware {
	return &metricsMiddleware{}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := aggregatedRoute
		if prometheus.Config.EnablePerRoute {
			route = c.Route().Path
		}
		prometheus.RequestTotal.WithLabelValues(route, c.Method(), metrics.StatusClass(status)).Inc()
		if prometheus.Config.EnableLatency {
			prometheus.RequestLatency.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
		}
		c.Set("X-Response-Time", strconv.FormatInt(time.Since(start).Milliseconds(), 10)+"ms")
		return err
	}
}
