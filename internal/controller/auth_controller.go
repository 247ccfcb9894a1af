package controller

import (
	"github.com/gofiber/fiber/v2"

	"complaint-assistant-be/internal/dto"
	"complaint-assistant-be/internal/pkg/serverutils"
	"complaint-assistant-be/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
	sessionMW   fiber.Handler
}

func NewAuthController(authService service.IAuthService, sessionMW fiber.Handler) IAuthController {
	return &authController{
		authService: authService,
		sessionMW:   sessionMW,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("login", c.Login)
	h.Post("logout", c.sessionMW, c.Logout)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("로그인되었습니다.", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals(serverutils.LocalsSessionId).(string)

	if err := c.authService.Logout(ctx.Context(), sessionId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("로그아웃되었습니다.", nil))
}
