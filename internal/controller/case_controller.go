package controller

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"complaint-assistant-be/internal/dto"
	"complaint-assistant-be/internal/pkg/serverutils"
	"complaint-assistant-be/internal/service"
)

type ICaseController interface {
	RegisterRoutes(r fiber.Router)
	Intake(ctx *fiber.Ctx) error
	Current(ctx *fiber.Ctx) error
	NewCase(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Load(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	RandomCustomer(ctx *fiber.Ctx) error
	ToggleChecklist(ctx *fiber.Ctx) error
}

type caseController struct {
	caseService service.ICaseService
	chatService service.IChatService
	sessionMW   fiber.Handler
}

func NewCaseController(caseService service.ICaseService, chatService service.IChatService, sessionMW fiber.Handler) ICaseController {
	return &caseController{
		caseService: caseService,
		chatService: chatService,
		sessionMW:   sessionMW,
	}
}

func (c *caseController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/case/v1")
	h.Use(c.sessionMW)
	h.Post("intake", c.Intake)
	h.Get("current", c.Current)
	h.Post("new", c.NewCase)
	h.Post("save", c.Save)
	h.Get("saved", c.List)
	h.Post("load", c.Load)
	h.Delete("saved/:file", c.Delete)
	h.Post("random", c.RandomCustomer)
	h.Post("checklist", c.ToggleChecklist)
}

func sessionIdFrom(ctx *fiber.Ctx) string {
	return ctx.Locals(serverutils.LocalsSessionId).(string)
}

func (c *caseController) Intake(ctx *fiber.Ctx) error {
	var req dto.IntakeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Intake(ctx.Context(), sessionIdFrom(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("상담 스크립트가 생성되었습니다.", res))
}

func (c *caseController) Current(ctx *fiber.Ctx) error {
	res, err := c.caseService.Current(ctx.Context(), sessionIdFrom(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("현재 상담 상태입니다.", res))
}

func (c *caseController) NewCase(ctx *fiber.Ctx) error {
	res, err := c.caseService.NewCase(ctx.Context(), sessionIdFrom(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("새 상담을 시작합니다.", res))
}

func (c *caseController) Save(ctx *fiber.Ctx) error {
	res, err := c.caseService.Save(ctx.Context(), sessionIdFrom(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("상담 내역이 저장되었습니다.", res))
}

func (c *caseController) List(ctx *fiber.Ctx) error {
	filter := ctx.Query("q")

	res, err := c.caseService.List(ctx.Context(), sessionIdFrom(ctx), filter)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("저장된 상담 목록입니다.", res))
}

func (c *caseController) Load(ctx *fiber.Ctx) error {
	var req dto.LoadCaseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.caseService.Load(ctx.Context(), sessionIdFrom(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("상담 내역을 불러왔습니다.", res))
}

func (c *caseController) Delete(ctx *fiber.Ctx) error {
	file, err := url.PathUnescape(ctx.Params("file"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "파일 이름이 올바르지 않습니다.")
	}

	if err := c.caseService.Delete(ctx.Context(), sessionIdFrom(ctx), file); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("파일이 삭제되었습니다.", nil))
}

func (c *caseController) RandomCustomer(ctx *fiber.Ctx) error {
	res, err := c.chatService.RandomCustomer(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("가상 고객 정보입니다.", res))
}

func (c *caseController) ToggleChecklist(ctx *fiber.Ctx) error {
	var req dto.ChecklistToggleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.caseService.ToggleChecklist(ctx.Context(), sessionIdFrom(ctx), req.Open)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("체크리스트 상태가 변경되었습니다.", res))
}
