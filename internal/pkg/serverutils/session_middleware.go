package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	LocalsSessionId = "session_id"
	LocalsAgentName = "agent_name"
	LocalsAgentCode = "agent_code"
)

// SessionMiddleware validates the Bearer token and stores the session claims
// in fiber Locals for downstream handlers.
func SessionMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("로그인이 필요합니다."))
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("로그인이 필요합니다."))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("로그인이 필요합니다."))
		}

		sessionId, _ := claims[LocalsSessionId].(string)
		if sessionId == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("로그인이 필요합니다."))
		}

		c.Locals(LocalsSessionId, sessionId)
		if name, ok := claims[LocalsAgentName].(string); ok {
			c.Locals(LocalsAgentName, name)
		}
		if code, ok := claims[LocalsAgentCode].(string); ok {
			c.Locals(LocalsAgentCode, code)
		}

		return c.Next()
	}
}
