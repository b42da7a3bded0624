package controller

import (
	"eva-support-be/internal/dto"
	"eva-support-be/internal/pkg/serverutils"
	"eva-support-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWellbeingController interface {
	RegisterRoutes(r fiber.Router)
	LogMood(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	GetWeeklyAnalytics(ctx *fiber.Ctx) error
	GetMonthlyScores(ctx *fiber.Ctx) error
}

type wellbeingController struct {
	wellbeingService service.IWellbeingService
}

func NewWellbeingController(wellbeingService service.IWellbeingService) IWellbeingController {
	return &wellbeingController{
		wellbeingService: wellbeingService,
	}
}

func (c *wellbeingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wellbeing/v1")
	h.Post("moods", c.LogMood)
	h.Get("moods", c.GetHistory)
	h.Get("analytics/weekly", c.GetWeeklyAnalytics)
	h.Get("analytics/monthly", c.GetMonthlyScores)
}

func (c *wellbeingController) LogMood(ctx *fiber.Ctx) error {
	var req dto.LogMoodRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.wellbeingService.LogMood(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success log mood", res))
}

func (c *wellbeingController) GetHistory(ctx *fiber.Ctx) error {
	res := c.wellbeingService.GetHistory(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get mood history", res))
}

func (c *wellbeingController) GetWeeklyAnalytics(ctx *fiber.Ctx) error {
	res := c.wellbeingService.GetWeeklyAnalytics(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get weekly analytics", res))
}

func (c *wellbeingController) GetMonthlyScores(ctx *fiber.Ctx) error {
	res := c.wellbeingService.GetMonthlyScores(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get monthly scores", res))
}
