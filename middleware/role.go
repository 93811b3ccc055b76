package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinichq/clinic-app/models"
)

// RequireRole rejects requests whose acting user's role is not in the
// allowed set. Must run after Protected.
func RequireRole(roles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := CurrentUser(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Authentication required",
			})
		}

		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "You don't have permission to perform this action",
		})
	}
}
