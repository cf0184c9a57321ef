package serverutils

import (
	"time"

	"cpu-catalog-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

func RequestLogger(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		log.Info(httpModule, "request", map[string]interface{}{
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     StatusCode(ctx, err),
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": ctx.Locals("requestid"),
		})
		return err
	}
}
