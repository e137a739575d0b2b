package v1

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codexx-academy/config"
	"github.com/codexx-academy/database"
	"github.com/codexx-academy/lib/jsonstore"
	"github.com/codexx-academy/middleware"
	"github.com/codexx-academy/services"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	store := jsonstore.New(config.DataFile())
	notifier := services.NewNotificationService(database.DB)
	portfolios := services.NewPortfolioService(database.DB, store)
	messages := services.NewMessageService(database.DB, notifier)
	clients := services.NewClientService(database.DB, notifier)
	stats := services.NewStatsService(database.DB, messages, clients)
	users := services.NewUserService(database.DB, store)
	backups := services.NewBackupService(config.DataFile(), config.BackupDir())

	publicController := NewPublicController(portfolios, messages)
	dashboardController := NewDashboardController(portfolios, stats, messages, notifier)
	clientController := NewClientController(clients, messages)
	messageController := NewMessageController(messages)
	userController := NewUserController(users, notifier)
	backupController := NewBackupController(backups)
	serviceController := NewServiceController()

	// Contact forms share one limiter: 10 submissions per address per minute.
	contactLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Public surface
	router.GET("/", publicController.Home)
	router.GET("/catalog", publicController.Catalog)
	router.GET("/portfolio/:username", publicController.Portfolio)
	router.GET("/portfolio/:username/project/:id", publicController.ProjectDetail)
	router.GET("/services/:username", publicController.ServicesList)
	router.GET("/services/:username/:id", publicController.ServiceDetail)
	router.POST("/contact/academy", middleware.RateLimit(contactLimiter), publicController.AcademyContact)
	router.POST("/contact/:username", middleware.RateLimit(contactLimiter), publicController.Contact)
	router.GET("/sitemap.xml", publicController.Sitemap)
	router.GET("/robots.txt", publicController.Robots)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}
	router.POST("/dashboard/login", Login)
	router.POST("/dashboard/logout", Logout)
	router.POST("/dashboard/change-password", middleware.AuthMiddleware(), ChangePassword)

	// Dashboard endpoints - authenticated, demo accounts read-only
	dashboardGroup := router.Group("/dashboard")
	dashboardGroup.Use(middleware.AuthMiddleware(), middleware.DemoGuard())
	{
		dashboardGroup.GET("", dashboardController.Index)
		dashboardGroup.PUT("/general", dashboardController.UpdateGeneral)
		dashboardGroup.PUT("/about", dashboardController.UpdateAbout)
		dashboardGroup.PUT("/skills", dashboardController.UpdateSkills)

		dashboardGroup.GET("/projects", dashboardController.ListProjects)
		dashboardGroup.POST("/projects", dashboardController.CreateProject)
		dashboardGroup.PUT("/projects/:id", dashboardController.UpdateProject)
		dashboardGroup.DELETE("/projects/:id", dashboardController.DeleteProject)

		dashboardGroup.PUT("/contact", dashboardController.UpdateContact)
		dashboardGroup.PUT("/social", dashboardController.UpdateSocial)
		dashboardGroup.PUT("/settings", dashboardController.UpdateSettings)

		dashboardGroup.PUT("/settings/telegram", dashboardController.UpdateTelegramSettings)
		dashboardGroup.DELETE("/settings/telegram", dashboardController.DeleteTelegramSettings)
		dashboardGroup.POST("/settings/telegram/test", dashboardController.TestTelegramSettings)
		dashboardGroup.PUT("/settings/smtp", dashboardController.UpdateSMTPSettings)
		dashboardGroup.DELETE("/settings/smtp", dashboardController.DeleteSMTPSettings)
		dashboardGroup.POST("/settings/smtp/test", dashboardController.TestSMTPSettings)

		dashboardGroup.GET("/notifications/latest", dashboardController.LatestNotifications)

		dashboardGroup.GET("/clients", clientController.List)
		dashboardGroup.GET("/clients/prefill", clientController.Prefill)
		dashboardGroup.POST("/clients", clientController.Create)
		dashboardGroup.GET("/clients/:id", clientController.Get)
		dashboardGroup.PUT("/clients/:id", clientController.Update)
		dashboardGroup.DELETE("/clients/:id", clientController.Delete)

		dashboardGroup.GET("/messages", messageController.Inbox)
		dashboardGroup.GET("/messages/internal", messageController.InternalInbox)
		dashboardGroup.POST("/messages/internal", messageController.Send)
		dashboardGroup.GET("/messages/platform", middleware.AdminMiddleware(), messageController.PlatformInbox)
		dashboardGroup.GET("/messages/:id", messageController.View)
		dashboardGroup.POST("/messages/:id/reply", messageController.Reply)
		dashboardGroup.DELETE("/messages/:id", messageController.Delete)

		dashboardGroup.GET("/services", serviceController.List)
		dashboardGroup.POST("/services", serviceController.Create)
		dashboardGroup.GET("/services/:id", serviceController.Get)
		dashboardGroup.PUT("/services/:id", serviceController.Update)
		dashboardGroup.POST("/services/:id/toggle", serviceController.ToggleActive)
		dashboardGroup.DELETE("/services/:id", serviceController.Delete)

		// Backups live under the dashboard but are admin only.
		backupGroup := dashboardGroup.Group("/backups")
		backupGroup.Use(middleware.AdminMiddleware())
		{
			backupGroup.GET("", backupController.List)
			backupGroup.POST("", backupController.Create)
			backupGroup.POST("/:id/restore", backupController.Restore)
			backupGroup.DELETE("/:id", backupController.Delete)
		}
	}

	// Admin account management
	userGroup := router.Group("/users")
	userGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		userGroup.GET("", userController.List)
		userGroup.POST("", userController.Create)
		userGroup.GET("/:id", userController.Get)
		userGroup.DELETE("/:id", userController.Delete)
		userGroup.POST("/:id/toggle-demo", userController.ToggleDemo)
		userGroup.POST("/:id/toggle-verification", userController.ToggleVerification)
		userGroup.POST("/:id/toggle-active", userController.ToggleActive)
		userGroup.POST("/:id/test-notifications", userController.TestNotifications)
		userGroup.GET("/:id/diagnostics", userController.Diagnostics)
	}
}
