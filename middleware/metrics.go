package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"simata/metrics"
)

// MetricsMiddleware counts requests per registered route pattern.
// Register it before LoggerMiddleware: the logger resolves handler errors into
// the final response status on the way back up.
func MetricsMiddleware(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		route := c.Route().Path
		if route == "" || route == "/" && c.Path() != "/" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(c.Response().StatusCode())).Inc()
		return err
	}
}
