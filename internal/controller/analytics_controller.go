package controller

import (
	"hr-assist-be/internal/pkg/serverutils"
	"hr-assist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAnalyticsController interface {
	RegisterRoutes(r fiber.Router)
	Summary(ctx *fiber.Ctx) error
	TopFAQs(ctx *fiber.Ctx) error
}

type analyticsController struct {
	analyticsService service.IAnalyticsService
}

func NewAnalyticsController(analyticsService service.IAnalyticsService) IAnalyticsController {
	return &analyticsController{
		analyticsService: analyticsService,
	}
}

func (c *analyticsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/analytics/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.HRRoleMiddleware)
	h.Get("summary", c.Summary)
	h.Get("faqs", c.TopFAQs)
}

func (c *analyticsController) Summary(ctx *fiber.Ctx) error {
	windowDays := ctx.QueryInt("window_days", 7)

	res, err := c.analyticsService.Summary(ctx.Context(), windowDays)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show analytics summary", res))
}

func (c *analyticsController) TopFAQs(ctx *fiber.Ctx) error {
	category := ctx.Query("category", "")
	limit := ctx.QueryInt("limit", 10)

	res, err := c.analyticsService.TopFAQs(ctx.Context(), category, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list FAQ patterns", res))
}
