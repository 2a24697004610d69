package main

import (
	"log"

	"github.com/smartlink-edu/campus-payments/config"
	"github.com/smartlink-edu/campus-payments/controllers"
	"github.com/smartlink-edu/campus-payments/routes"
	"github.com/smartlink-edu/campus-payments/services"
	"github.com/smartlink-edu/campus-payments/store"
	"github.com/smartlink-edu/campus-payments/utils"
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

	// Wire the relay
	paymentStore := store.NewGormStore(db)
	gateway := services.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	events := services.NewEventPublisher(cfg.KafkaBrokers)
	defer events.Close()
	mailer := services.NewMailer(cfg)

	handler := controllers.NewRelayHandler(paymentStore, gateway, cfg.RazorpayKeyID, cfg.RazorpayKeySecret, events, mailer)

	// Set up router
	router := routes.SetupRouter(handler, cfg.JWTSecret)

	utils.LogInfo("Server starting on port %s", cfg.Port)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
