package controller

import (
	"github.com/gofiber/fiber/v2"

	"complaint-assistant-be/internal/constant"
	"complaint-assistant-be/internal/pkg/serverutils"
)

type IChecklistController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
}

// checklistController serves the fixed complaint-handling checklist. The
// content is static; the per-session open/closed flag lives on the session.
type checklistController struct {
	sessionMW fiber.Handler
}

func NewChecklistController(sessionMW fiber.Handler) IChecklistController {
	return &checklistController{sessionMW: sessionMW}
}

func (c *checklistController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/checklist/v1")
	h.Get("", c.sessionMW, c.Show)
}

func (c *checklistController) Show(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("민원 응대 체크리스트입니다.", constant.ComplaintChecklist))
}
