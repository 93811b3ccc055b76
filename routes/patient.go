package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinichq/clinic-app/controllers"
	"github.com/clinichq/clinic-app/middleware"
	"github.com/clinichq/clinic-app/models"
)

// SetupPatientRoutes configures patient records, managed by the front desk.
func SetupPatientRoutes(app *fiber.App) {
	patients := app.Group("/patients", middleware.Protected())

	patients.Get("/", middleware.RequireRole(models.RoleReceptionist, models.RoleDoctor), controllers.GetAllPatients)
	patients.Get("/:id", middleware.RequireRole(models.RoleReceptionist, models.RoleDoctor), controllers.GetPatient)
	patients.Post("/", middleware.RequireRole(models.RoleReceptionist), controllers.RegisterPatient)
	patients.Put("/:id", middleware.RequireRole(models.RoleReceptionist), controllers.UpdatePatient)
	patients.Delete("/:id", middleware.RequireRole(models.RoleReceptionist), controllers.DeletePatient)
}
