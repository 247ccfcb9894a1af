package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest runs struct validation on an already-parsed request body
// and reports failures as a 400 with the offending fields.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fields []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, ve := range verrs {
			fields = append(fields, fmt.Sprintf("%s(%s)", ve.Field(), ve.Tag()))
		}
	}
	if len(fields) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "요청 값이 올바르지 않습니다.")
	}
	return fiber.NewError(fiber.StatusBadRequest, "요청 값이 올바르지 않습니다: "+strings.Join(fields, ", "))
}
