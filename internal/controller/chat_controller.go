package controller

import (
	"eva-support-be/internal/dto"
	"eva-support-be/internal/pkg/serverutils"
	"eva-support-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	GetAllConversations(ctx *fiber.Ctx) error
	GetConversation(ctx *fiber.Ctx) error
	CreateConversation(ctx *fiber.Ctx) error
	SelectConversation(ctx *fiber.Ctx) error
	RenameConversation(ctx *fiber.Ctx) error
	SendChat(ctx *fiber.Ctx) error
}

type chatController struct {
	conversationService service.IConversationService
}

func NewChatController(conversationService service.IConversationService) IChatController {
	return &chatController{
		conversationService: conversationService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Get("conversations", c.GetAllConversations)
	h.Post("conversations", c.CreateConversation)
	h.Get("conversations/:id", c.GetConversation)
	h.Put("conversations/:id/title", c.RenameConversation)
	h.Post("conversations/select", c.SelectConversation)
	h.Post("send", c.SendChat)
}

func (c *chatController) GetAllConversations(ctx *fiber.Ctx) error {
	res := c.conversationService.GetAllConversations(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get conversations", res))
}

func (c *chatController) GetConversation(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.conversationService.GetConversation(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get conversation", res))
}

func (c *chatController) CreateConversation(ctx *fiber.Ctx) error {
	res, err := c.conversationService.CreateConversation(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create conversation", res))
}

func (c *chatController) SelectConversation(ctx *fiber.Ctx) error {
	var req dto.SelectConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.conversationService.SelectConversation(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success select conversation", nil))
}

func (c *chatController) RenameConversation(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.RenameConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.conversationService.RenameConversation(ctx.Context(), id, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success rename conversation", nil))
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.conversationService.SendChat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}
