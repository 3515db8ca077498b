package middleware

import (
	"Coffee-Shop-API/domain"
	"Coffee-Shop-API/internal/api/presenters"
	"Coffee-Shop-API/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		RequirePermission(authService auth.AuthService, permission string) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New()
}

// RequirePermission verifies the bearer token and the required
// permission before the wrapped handler runs. The store is never
// touched when authorization fails.
func (m *middleware) RequirePermission(authService auth.AuthService, permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := authService.ExtractToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, err.Error())
		}

		claims, err := authService.VerifyToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, err.Error())
		}

		if err := authService.CheckPermission(claims, permission); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessagePermissionNotFound)
		}

		c.Locals("permissions", claims.Permissions)
		return c.Next()
	}
}
