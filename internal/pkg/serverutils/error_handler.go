// FILE: internal/pkg/serverutils/error_handler.go
package serverutils

import (
	"errors"
	"time"

	"cpu-catalog-be/internal/dto"
	"cpu-catalog-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const httpModule = "http"

// StatusCode is the status a request ends with once err has been handled.
func StatusCode(ctx *fiber.Ctx, err error) int {
	if err == nil {
		return ctx.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// ErrorHandler answers every failure with the same unclassified body. Store
// errors (constraint violations included) become 500.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := StatusCode(ctx, err)

		details := map[string]interface{}{
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     code,
			"request_id": ctx.Locals("requestid"),
			"error":      err,
		}
		if code >= fiber.StatusInternalServerError {
			log.Error(httpModule, "request failed", details)
		} else {
			log.Warn(httpModule, "request rejected", details)
		}

		return ctx.Status(code).JSON(dto.ErrorResponse{
			Timestamp: time.Now().UTC(),
			Status:    code,
			Error:     utils.StatusMessage(code),
			Path:      ctx.Path(),
		})
	}
}
