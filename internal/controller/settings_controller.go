package controller

import (
	"eva-support-be/internal/dto"
	"eva-support-be/internal/pkg/serverutils"
	"eva-support-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISettingsController interface {
	RegisterRoutes(r fiber.Router)
	GetSettings(ctx *fiber.Ctx) error
	UpdateSettings(ctx *fiber.Ctx) error
}

type settingsController struct {
	settingsService service.ISettingsService
}

func NewSettingsController(settingsService service.ISettingsService) ISettingsController {
	return &settingsController{
		settingsService: settingsService,
	}
}

func (c *settingsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/settings/v1")
	h.Get("", c.GetSettings)
	h.Patch("", c.UpdateSettings)
}

func (c *settingsController) GetSettings(ctx *fiber.Ctx) error {
	res := c.settingsService.GetSettings(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get settings", res))
}

func (c *settingsController) UpdateSettings(ctx *fiber.Ctx) error {
	var req dto.UpdateUserSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.settingsService.UpdateSettings(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update settings", res))
}
