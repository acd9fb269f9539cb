package middleware

import (
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/services"
	"github.com/gofiber/fiber/v2"
)

// RequireRole lets through only identities whose role equals role.
func RequireRole(authorizer *services.Authorizer, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := authorizer.RequireRole(CurrentUser(c), role); err != nil {
			return err
		}
		return c.Next()
	}
}
