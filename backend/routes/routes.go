package routes

import (
	"fluidos/backend/config"
	"fluidos/backend/controllers"
	"fluidos/backend/repository"

	"github.com/gofiber/fiber/v2"
)

// Repositories are the data-access handles shared by the controllers.
type Repositories struct {
	Users   repository.UserRepository
	Results repository.ResultRepository
}

func SetupRoutes(app *fiber.App, repos Repositories, cfg *config.Config) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes
	authController := controllers.NewAuthController(repos.Users, cfg)
	app.Post("/registro", authController.Register)
	app.Post("/login", authController.Login)

	// Results routes
	resultsController := controllers.NewResultsController(repos.Results, cfg)
	app.Post("/guardar_resultado/", resultsController.SaveResult)
	app.Get("/resultados/", resultsController.ListResults)
	app.Get("/ejercicios/", resultsController.ListExercises)
}
