package controller

import (
	"errors"

	"hr-assist-be/internal/dto"
	"hr-assist-be/internal/pkg/serverutils"
	"hr-assist-be/internal/service"
	"hr-assist-be/pkg/pipeline"

	"github.com/gofiber/fiber/v2"
)

type IQueryController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	Feedback(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Recent(ctx *fiber.Ctx) error
}

type queryController struct {
	queryService service.IQueryService
}

func NewQueryController(queryService service.IQueryService) IQueryController {
	return &queryController{
		queryService: queryService,
	}
}

func (c *queryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/query/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Ask)
	h.Post("feedback", c.Feedback)
	h.Get("history/:session_id", c.History)
	h.Get("recent", serverutils.HRRoleMiddleware, c.Recent)
}

func (c *queryController) Ask(ctx *fiber.Ctx) error {
	var req dto.QueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	// Identity claims win over whatever the body says.
	if employeeId, ok := ctx.Locals("employee_id").(string); ok && employeeId != "" {
		req.EmployeeId = employeeId
	}
	if role, ok := ctx.Locals("role").(string); ok && role != "" {
		req.Role = role
	}

	res, err := c.queryService.ProcessQuery(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, pipeline.ErrEmptyQuery) {
			return fiber.NewError(fiber.StatusBadRequest, "Query must not be empty")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process query", res))
}

func (c *queryController) Feedback(ctx *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	employeeId, _ := ctx.Locals("employee_id").(string)

	if err := c.queryService.SubmitFeedback(ctx.Context(), employeeId, &req); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse[any]("Success record feedback", nil))
}

func (c *queryController) History(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("session_id")

	res, err := c.queryService.History(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show history", res))
}

func (c *queryController) Recent(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.queryService.Recent(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list recent queries", res))
}
