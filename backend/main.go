package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"fluidos/backend/config"
	"fluidos/backend/repository"
	"fluidos/backend/routes"
	"fluidos/backend/server"
	"fluidos/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger(utils.LoggerConfig{
		Format:       cfg.LogFormat,
		EnableColors: cfg.LogFormat != "json",
	})

	// Initialize storage
	var repos routes.Repositories
	switch cfg.Storage {
	case config.StorageMemory:
		store := repository.NewMemoryStore()
		repos = routes.Repositories{Users: store.Users(), Results: store.Results()}
		logger.Println("Using in-memory storage")
	default:
		db, err := utils.InitDB(cfg, logger)
		if err != nil {
			logger.Fatalf("Error initializing database: %v", err)
		}
		defer utils.CloseDB(db)
		repos = routes.Repositories{
			Users:   repository.NewGormUserRepository(db),
			Results: repository.NewGormResultRepository(db),
		}
	}

	app := server.New(cfg, repos, logger)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Println("Shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Printf("Error shutting down: %v", err)
		}
	}()

	// Start server
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logger.Printf("Server stopped: %v", err)
	}
}
