package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinichq/clinic-app/controllers"
	"github.com/clinichq/clinic-app/middleware"
	"github.com/clinichq/clinic-app/models"
)

// SetupAdminRoutes configures staff administration, all admin-only.
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	admin.Post("/doctors", controllers.RegisterDoctor)
	admin.Post("/receptionists", controllers.RegisterReceptionist)
	admin.Post("/pharmacists/dispenser", controllers.RegisterPharmacistDispenser)
	admin.Post("/pharmacists/inventory", controllers.RegisterPharmacistInventory)

	admin.Get("/staff/:role", controllers.ListStaff)
	admin.Get("/staff/:role/:id", controllers.GetStaff)
	admin.Put("/staff/:role/:id", controllers.UpdateStaff)
	admin.Delete("/staff/:role/:id", controllers.DeleteStaff)
}
