package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinichq/clinic-app/controllers"
	"github.com/clinichq/clinic-app/middleware"
	"github.com/clinichq/clinic-app/models"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/login", controllers.Login)
	auth.Post("/verify-email", controllers.VerifyEmail)
	auth.Post("/forgot-password", controllers.ForgotPassword)
	auth.Post("/reset-password/:token", controllers.ResetPassword)

	// Protected routes
	auth.Post("/signup", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.Signup)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
	auth.Get("/check-auth", middleware.Protected(), controllers.CheckAuth)
	auth.Post("/update-password", middleware.Protected(), controllers.UpdatePassword)
}
