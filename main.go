package main

import (
	"encoding/gob"
	"log"
	"os"

	"github.com/Nikhil-527/VidyaSetu/config"
	"github.com/Nikhil-527/VidyaSetu/controllers"
	"github.com/Nikhil-527/VidyaSetu/gateway"
	"github.com/Nikhil-527/VidyaSetu/repository"
	"github.com/Nikhil-527/VidyaSetu/routes"
	"github.com/Nikhil-527/VidyaSetu/services"
	"github.com/Nikhil-527/VidyaSetu/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Register types for session serialization
	gob.Register(controllers.RegistrationData{})

	// Load environment variables
	_, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Create sample admin
	if err := controllers.CreateSampleAdmin(); err != nil {
		utils.LogError("Failed to create sample admin: %v", err)
		log.Fatal("Failed to create sample admin:", err)
	}

	// Initialize Google OAuth
	config.InitGoogleOAuth()

	// Wire the payment reconciliation service to the database and the
	// live gateway client
	services.InitPaymentService(repository.NewPaymentRepository(config.DB), gateway.Default())

	// Set up router with the full middleware chain
	router := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = utils.DefaultPort
	}

	utils.LogInfo("Server starting on port %s", port)
	// Start server
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
