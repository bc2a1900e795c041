package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"arangodoc/internal/logging"
)

// Logger logs each HTTP request with the fields request_id, method, path, status and latency
// (in milliseconds). The request scoped logger is stored in the user context so handlers and
// the client log with the same request_id.
func Logger(logger logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		reqLogger := logger.With("request_id", rid)
		c.SetUserContext(logging.With(c.UserContext(), reqLogger))

		err := c.Next()

		status := c.Response().StatusCode()
		if fiberErr, ok := err.(*fiber.Error); ok {
			status = fiberErr.Code
		}
		fields := []interface{}{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", float64(time.Since(start).Microseconds()) / 1000,
		}

		if status >= fiber.StatusInternalServerError {
			reqLogger.Warnw("request", fields...)
		} else {
			reqLogger.Infow("request", fields...)
		}
		return err
	}
}
