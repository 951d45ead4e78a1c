package main

import (
	"log"

	"github.com/JahvoL/mall-end/auth"
	"github.com/JahvoL/mall-end/config"
	"github.com/JahvoL/mall-end/controllers"
	"github.com/JahvoL/mall-end/repository"
	"github.com/JahvoL/mall-end/routes"
	"github.com/JahvoL/mall-end/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		utils.LogError("Failed to initialize database: %v", err)
		log.Fatal("Failed to initialize database:", err)
	}

	// Seed a demo user so a fresh database can resolve tokens
	if err := controllers.CreateSampleUser(db); err != nil {
		utils.LogError("Failed to create sample user: %v", err)
		log.Fatal("Failed to create sample user:", err)
	}

	// Wire repositories, resolver and controller
	addressRepo := repository.NewAddressGormRepository(db)
	userRepo := repository.NewUserGormRepository(db)
	resolver := auth.NewResolver(userRepo)
	addressCtl := controllers.NewAddressController(addressRepo, resolver)

	// Set up router with middleware
	router := routes.SetupRouter(addressCtl)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	utils.LogInfo("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
