package controller

import (
	"github.com/gofiber/fiber/v2"

	"complaint-assistant-be/internal/dto"
	"complaint-assistant-be/internal/pkg/serverutils"
	"complaint-assistant-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	Draft(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	sessionMW   fiber.Handler
}

func NewChatController(chatService service.IChatService, sessionMW fiber.Handler) IChatController {
	return &chatController{
		chatService: chatService,
		sessionMW:   sessionMW,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(c.sessionMW)
	h.Post("ask", c.Ask)
	h.Post("draft", c.Draft)
}

func (c *chatController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Ask(ctx.Context(), sessionIdFrom(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("답변이 생성되었습니다.", res))
}

func (c *chatController) Draft(ctx *fiber.Ctx) error {
	res, err := c.chatService.Draft(ctx.Context(), sessionIdFrom(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("카카오톡 메시지 초안이 생성되었습니다.", res))
}
