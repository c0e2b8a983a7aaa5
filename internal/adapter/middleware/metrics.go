package middleware

import (
	"strconv"
	"time"

	"agrimarket-backend/internal/infrastructure/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records request count and latency per route template, so path
// params never explode label cardinality.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil {
				return next(c)
			}
			m.RequestInFlight.Inc()
			defer m.RequestInFlight.Dec()

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)
			m.RequestTotal.WithLabelValues(c.Request().Method, route, status).Inc()
			m.RequestDuration.WithLabelValues(c.Request().Method, route, status).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
