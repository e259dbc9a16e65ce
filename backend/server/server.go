// Package server assembles the Fiber application.
package server

import (
	"log"

	"fluidos/backend/config"
	"fluidos/backend/middleware"
	"fluidos/backend/routes"
	"fluidos/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func New(cfg *config.Config, repos routes.Repositories, logger *log.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Fluidos para todos API",
		ErrorHandler: utils.ErrorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger, cfg.LogFormat != "json"))

	routes.SetupRoutes(app, repos, cfg)

	return app
}
