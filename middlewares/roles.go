package middlewares

import (
	"hvac-backoffice/models"

	"github.com/gofiber/fiber/v2"
)

// RequireAdminOrSubAdmin gates write access to sensitive collections
// (staff records, role assignments). Run after IsAuthenticated().
func RequireAdminOrSubAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !models.IsAdminOrSubAdmin(CurrentUser(c)) {
			return fiber.NewError(fiber.StatusForbidden, "admin or sub-admin role required")
		}
		return c.Next()
	}
}

// RequireAdminLike allows only superusers and "admin" role holders.
func RequireAdminLike() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !models.IsAdminLike(CurrentUser(c)) {
			return fiber.NewError(fiber.StatusForbidden, "admin role required")
		}
		return c.Next()
	}
}
