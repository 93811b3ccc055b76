package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinichq/clinic-app/controllers"
	"github.com/clinichq/clinic-app/middleware"
	"github.com/clinichq/clinic-app/models"
)

// SetupClinicalRoutes configures prescriptions and appointments.
func SetupClinicalRoutes(app *fiber.App) {
	prescriptions := app.Group("/prescriptions", middleware.Protected())
	prescriptions.Post("/", middleware.RequireRole(models.RoleDoctor), controllers.CreatePrescription)
	prescriptions.Get("/", middleware.RequireRole(models.RoleDoctor, models.RolePharmacistDispenser), controllers.GetPrescriptions)
	prescriptions.Patch("/:id/status", middleware.RequireRole(models.RolePharmacistDispenser), controllers.UpdatePrescriptionStatus)

	appointments := app.Group("/appointments", middleware.Protected())
	appointments.Post("/", middleware.RequireRole(models.RoleReceptionist), controllers.CreateAppointment)
	appointments.Get("/", middleware.RequireRole(models.RoleReceptionist, models.RoleDoctor), controllers.GetAppointments)
	appointments.Patch("/:id/status", middleware.RequireRole(models.RoleReceptionist, models.RoleDoctor), controllers.UpdateAppointmentStatus)
}
