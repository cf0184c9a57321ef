package controller

import (
	"cpu-catalog-be/internal/dto"
	"cpu-catalog-be/internal/pkg/serverutils"
	"cpu-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICpuController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type cpuController struct {
	service service.ICpuService
}

func NewCpuController(service service.ICpuService) ICpuController {
	return &cpuController{service: service}
}

func (c *cpuController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/cpus")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *cpuController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *cpuController) Show(ctx *fiber.Ctx) error {
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

func (c *cpuController) Create(ctx *fiber.Ctx) error {
	var req dto.CpuRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *cpuController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.CpuRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), id, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NoContentOK(ctx)
	}

	return ctx.JSON(res)
}

func (c *cpuController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}

	return serverutils.NoContentOK(ctx)
}
