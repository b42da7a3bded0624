package controller

import (
	"eva-support-be/internal/pkg/serverutils"
	"eva-support-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITrashController interface {
	RegisterRoutes(r fiber.Router)
	GetAllRecords(ctx *fiber.Ctx) error
	DeleteConversation(ctx *fiber.Ctx) error
	DeleteMessage(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
	Purge(ctx *fiber.Ctx) error
	PurgeAll(ctx *fiber.Ctx) error
}

type trashController struct {
	trashService service.ITrashService
}

func NewTrashController(trashService service.ITrashService) ITrashController {
	return &trashController{
		trashService: trashService,
	}
}

func (c *trashController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/trash/v1")
	h.Get("records", c.GetAllRecords)
	h.Delete("conversations/:id", c.DeleteConversation)
	h.Delete("conversations/:id/messages/:messageId", c.DeleteMessage)
	h.Post("records/:id/restore", c.Restore)
	h.Delete("records/:id", c.Purge)
	h.Delete("records", c.PurgeAll)
}

func (c *trashController) GetAllRecords(ctx *fiber.Ctx) error {
	res := c.trashService.GetAllRecords(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get trash records", res))
}

func (c *trashController) DeleteConversation(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	if err := c.trashService.DeleteConversation(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete conversation", nil))
}

func (c *trashController) DeleteMessage(ctx *fiber.Ctx) error {
	conversationId, _ := uuid.Parse(ctx.Params("id"))
	messageId, _ := uuid.Parse(ctx.Params("messageId"))

	if err := c.trashService.DeleteMessage(ctx.Context(), conversationId, messageId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete message", nil))
}

func (c *trashController) Restore(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.trashService.Restore(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success restore record", res))
}

func (c *trashController) Purge(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	if err := c.trashService.Purge(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success purge record", nil))
}

func (c *trashController) PurgeAll(ctx *fiber.Ctx) error {
	if err := c.trashService.PurgeAll(ctx.Context()); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success purge trash", nil))
}
