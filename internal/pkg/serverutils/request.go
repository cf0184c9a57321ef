package serverutils

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParseBody decodes the request body into out. Decoding failures are
// reported as 400; Fiber's own errors (unsupported content type) keep their
// status.
func ParseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

// ParamID reads a non-negative integer path parameter. Ids are capped at
// 2^63-1, the largest key the store accepts.
func ParamID(ctx *fiber.Ctx, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Params(name), 10, 63)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// NoContentOK ends the request with 200 and an empty body, the response for
// a lookup that found nothing.
func NoContentOK(ctx *fiber.Ctx) error {
	ctx.Status(fiber.StatusOK)
	return nil
}
