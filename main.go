package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/codexx-academy/api/v1"
	"github.com/codexx-academy/config"
	"github.com/codexx-academy/database"
	"github.com/codexx-academy/logger"
	"github.com/codexx-academy/utils"
)

func main() {
	// Load environment variables before anything reads them
	config.LoadEnv()

	env := config.GetEnv("ENV", "development")
	log, err := logger.Init(env, config.GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to the database and run migrations
	database.Initialize()

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Per-request IP activity log for the security trail
	router.Use(func(c *gin.Context) {
		utils.RecordIPActivity(c)
		c.Next()
	})

	// Root health endpoint
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "codexx-academy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	v1.RegisterRoutes(apiV1)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("codexx academy starting", zap.String("port", port), zap.String("env", env))
	if err := router.Run(":" + port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
