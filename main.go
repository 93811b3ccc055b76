package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	clinicron "github.com/clinichq/clinic-app/cron"
	"github.com/clinichq/clinic-app/db"
	"github.com/clinichq/clinic-app/routes"
)

func main() {
	app := fiber.New()
	db.Migrate()

	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowCredentials: origin != "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Clinic API is running")
	})

	routes.SetupAuthRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupPatientRoutes(app)
	routes.SetupInventoryRoutes(app)
	routes.SetupUploadRoutes(app)
	routes.SetupClinicalRoutes(app)

	clinicron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
