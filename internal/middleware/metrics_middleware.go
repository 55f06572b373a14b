package middleware

import (
	"errors"
	"log/slog"
	"time"

	"go-pharmacy-pos/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// Observe records every request in m, labelled by the matched route
// pattern, and logs server errors.
func Observe(m *metrics.Metrics, log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// the app error handler has not run yet
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		route := c.Route().Path
		m.ObserveRequest(c.Method(), route, status, time.Since(start))

		if status >= 500 {
			log.Error("request failed",
				"method", c.Method(),
				"route", route,
				"status", status,
				"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
				"err", err,
			)
		}
		return err
	}
}
