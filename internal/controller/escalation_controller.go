package controller

import (
	"hr-assist-be/internal/dto"
	"hr-assist-be/internal/pkg/serverutils"
	"hr-assist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEscalationController interface {
	RegisterRoutes(r fiber.Router)
	ListPending(ctx *fiber.Ctx) error
	Resolve(ctx *fiber.Ctx) error
}

type escalationController struct {
	escalationService service.IEscalationService
}

func NewEscalationController(escalationService service.IEscalationService) IEscalationController {
	return &escalationController{
		escalationService: escalationService,
	}
}

func (c *escalationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/escalation/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.HRRoleMiddleware)
	h.Get("pending", c.ListPending)
	h.Put(":id/resolve", c.Resolve)
}

func (c *escalationController) ListPending(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.escalationService.ListPending(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list pending escalations", res))
}

func (c *escalationController) Resolve(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid escalation id")
	}

	var req dto.ResolveEscalationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.escalationService.Resolve(ctx.Context(), uint(id), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success resolve escalation", res))
}
