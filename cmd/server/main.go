package main

import (
	"log"

	"github.com/abishekkprasad/health-journal/internal/config"
	"github.com/abishekkprasad/health-journal/internal/database"
	"github.com/abishekkprasad/health-journal/internal/routes"
	"github.com/abishekkprasad/health-journal/internal/views"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Connect to storage. Without DB_URL the journal runs on the
	// embedded file store instead.
	if cfg.DBUrl != "" {
		if err := database.ConnectDB(cfg.DBUrl); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.CloseDB()
	} else {
		log.Printf("DB_URL not set, using file store at %s", cfg.DataFile)
	}

	// 3. Setup Fiber
	app := fiber.New(fiber.Config{
		Views: views.Engine(),
	})

	// Middleware
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(recover.New())

	// Routes
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	if err := routes.RegisterRoutes(app, cfg, database.DB); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// 4. Start Server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
