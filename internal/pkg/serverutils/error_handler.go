package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"complaint-assistant-be/internal/pkg/logger"
	"complaint-assistant-be/internal/prompt"
	"complaint-assistant-be/internal/repository/contract"
	"complaint-assistant-be/internal/service"
)

// ErrorHandlerMiddleware maps service and repository errors to HTTP
// responses so controllers can just return errors upward.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		switch {
		case errors.Is(err, service.ErrInvalidLogin):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse("이름과 4자리 숫자 코드를 입력해 주세요."))
		case errors.Is(err, service.ErrNotLoggedIn):
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("로그인이 필요합니다."))
		case errors.Is(err, service.ErrWrongState):
			return c.Status(fiber.StatusConflict).JSON(ErrorResponse("현재 단계에서 사용할 수 없는 요청입니다."))
		case errors.Is(err, service.ErrNoScript):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse("상담 스크립트가 없습니다. 먼저 스크립트를 생성해 주세요."))
		case errors.Is(err, service.ErrNoTurns):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse("저장할 대화가 없습니다."))
		case errors.Is(err, contract.ErrCaseFileNotFound):
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse("이미 삭제된 파일입니다."))
		case errors.Is(err, contract.ErrInvalidFileName):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse("파일 이름이 올바르지 않습니다."))
		case errors.Is(err, contract.ErrCaseFileCorrupt):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse("불러온 파일 형식이 잘못되었습니다."))
		case errors.Is(err, prompt.ErrMissingField):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse("필수 입력값이 비어 있습니다."))
		case errors.Is(err, service.ErrProviderUnavailable):
			return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse("응답 생성에 실패했습니다. 잠시 후 다시 시도해 주세요."))
		}

		log.Error("Server", "Unhandled error", map[string]interface{}{
			"path":  c.Path(),
			"error": err.Error(),
		})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("서버 내부 오류가 발생했습니다."))
	}
}
