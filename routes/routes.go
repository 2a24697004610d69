package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/smartlink-edu/campus-payments/controllers"
	"github.com/smartlink-edu/campus-payments/middleware"
	"github.com/smartlink-edu/campus-payments/utils"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(handler *controllers.RelayHandler, jwtSecret string) *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(middleware.OptionalAuth(jwtSecret))

	// The relay keeps the legacy edge-function path so the dashboard client
	// needs no changes.
	functions := router.Group("/functions/v1")
	{
		functions.POST("/razorpay-payment", handler.HandleRelay)
		functions.OPTIONS("/razorpay-payment", handler.HandlePreflight)
	}

	// Finance endpoints
	api := router.Group("/v1")
	{
		api.GET("/payments/:id/receipt", handler.DownloadReceipt)
		api.GET("/reports/payments", handler.ExportPaymentsExcel)
	}

	return router
}
