package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinichq/clinic-app/controllers"
	"github.com/clinichq/clinic-app/middleware"
)

// SetupUploadRoutes configures the media upload proxy for any signed-in staff.
func SetupUploadRoutes(app *fiber.App) {
	upload := app.Group("/upload", middleware.Protected())

	upload.Post("/", controllers.UploadFile)
}
