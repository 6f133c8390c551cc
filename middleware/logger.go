package middleware

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

var httpLog = slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("component", "http")

// LoggerMiddleware mencatat setiap request dalam JSON terstruktur:
// method, path, status, durasi, dan request id dari middleware requestid.
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		attrs := []any{
			"request_id", c.Locals(requestid.ConfigDefault.ContextKey),
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if err != nil {
			attrs = append(attrs, "error", err.Error())
		}
		switch {
		case status >= 500:
			httpLog.Error("request", attrs...)
		case status >= 400:
			httpLog.Warn("request", attrs...)
		default:
			httpLog.Info("request", attrs...)
		}
		return err
	}
}
