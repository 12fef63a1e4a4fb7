package main

import (
	"log"
	"os"

	"riftrank/api/modules"
	"riftrank/api/routes"
	"riftrank/pkg/config"
	"riftrank/pkg/database"
	"riftrank/pkg/redis"

	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading the configuration: %v", err)
	}

	db, err := database.NewConnection(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	redisClient := redis.NewClient(cfg)
	defer redisClient.Close()

	// Create a module with all necessary handlers.
	module := modules.NewModule(&modules.ModuleDependencies{
		DB:    db,
		Redis: redisClient,
	})

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.LeaderboardHandler,
		module.HallOfFameHandler,
		module.DuoHandler,
		module.PlayerHandler,
	)

	// Start the server.
	if err := router.Run(":8080"); err != nil {
		log.Fatalf("Error running the server: %v", err)
	}
}
