package controller

import (
	"cpu-catalog-be/internal/dto"
	"cpu-catalog-be/internal/pkg/serverutils"
	"cpu-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISocketController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
}

type socketController struct {
	service service.ISocketService
}

func NewSocketController(service service.ISocketService) ISocketController {
	return &socketController{service: service}
}

// RegisterRoutes exposes read and create only; sockets have no update or
// delete endpoint.
func (c *socketController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/sockets")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
}

func (c *socketController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *socketController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NoContentOK(ctx)
	}

	return ctx.JSON(res)
}

func (c *socketController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSocketRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
