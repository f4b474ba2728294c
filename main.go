package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/vedant-kerulkar07/Fin-View/handlers"
	"github.com/vedant-kerulkar07/Fin-View/logger"
	"github.com/vedant-kerulkar07/Fin-View/middleware"
	"github.com/vedant-kerulkar07/Fin-View/mongodb"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	development := os.Getenv("GIN_MODE") != "release"
	if err := logger.Init(development, os.Getenv("LOG_LEVEL")); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := mongodb.InitMongoDB(); err != nil {
		logger.Get().Fatal("failed to initialize MongoDB", zap.Error(err))
	}
	defer mongodb.CloseMongoDB()

	router := gin.Default()
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})
	router.Use(middleware.CorsMiddleware)

	api := router.Group("/api")
	{
		// Public reference data
		api.GET("/location/locationapi", handlers.HandleGetLocations)

		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware)
		{
			authed.GET("/users/me", handlers.HandleGetMe)
			authed.PUT("/users/update", handlers.HandleUpdateUser)

			authed.POST("/budget/save", handlers.HandleSaveBudget)
			authed.GET("/budget/me", handlers.HandleGetMyBudget)
			authed.GET("/budget/all", handlers.HandleGetAllBudgets)
			authed.POST("/budget/add-expense", handlers.HandleAddExpense)

			authed.POST("/transactions/upload-csv", handlers.HandleUploadCsv)
			authed.GET("/transactions/csv-data", handlers.HandleGetCsvData)

			authed.POST("/chat/ask", handlers.HandleAsk)
			authed.GET("/chat/history", handlers.HandleGetChatHistory)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Get().Info("server starting", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Get().Fatal("failed to start server", zap.Error(err))
	}
}
