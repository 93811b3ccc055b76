package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinichq/clinic-app/controllers"
	"github.com/clinichq/clinic-app/middleware"
	"github.com/clinichq/clinic-app/models"
)

// SetupInventoryRoutes configures stock batches for the inventory pharmacist.
func SetupInventoryRoutes(app *fiber.App) {
	inventory := app.Group("/inventory", middleware.Protected(), middleware.RequireRole(models.RolePharmacistInventory))

	inventory.Post("/batches", controllers.CreateBatch)
	inventory.Get("/batches", controllers.GetAllBatches)
	inventory.Get("/batches/:id", controllers.GetBatch)
	inventory.Put("/batches/:id", controllers.UpdateBatch)
	inventory.Delete("/batches/:id", controllers.DeleteBatch)

	inventory.Get("/stock", controllers.GetStockSummary)
}
