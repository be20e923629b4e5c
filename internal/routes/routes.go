package routes

import (
	"github.com/gin-gonic/gin"

	"project-tracker-api/internal/auth"
	"project-tracker-api/internal/handlers"
	"project-tracker-api/internal/middleware"
)

func SetupRoutes(h *handlers.Handler, gate *auth.Gate) *gin.Engine {
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		api.POST("/auth/login", h.Login)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.AuthMiddleware(gate))
	{
		// User endpoints
		protectedRoutes.GET("/users/me", h.Me)
		protectedRoutes.GET("/users", h.ListUsers)
		protectedRoutes.POST("/users", h.CreateUser)
		protectedRoutes.DELETE("/users/:id", h.DeleteUser)

		// Task endpoints
		protectedRoutes.GET("/tasks", h.ListTasks)
		protectedRoutes.POST("/tasks", h.CreateTask)
		protectedRoutes.PATCH("/tasks/:id", h.UpdateTask)
		protectedRoutes.DELETE("/tasks/:id", h.DeleteTask)

		// Project endpoints
		protectedRoutes.GET("/projects", h.ListProjects)
		protectedRoutes.POST("/projects", h.CreateProject)
		protectedRoutes.PATCH("/projects/:id", h.UpdateProject)
		protectedRoutes.DELETE("/projects/:id", h.DeleteProject)
		protectedRoutes.GET("/projects/:id/stats", h.ProjectStats)

		// Aggregate statistics
		protectedRoutes.GET("/stats", h.GlobalStats)

		// Notification endpoints
		protectedRoutes.GET("/notifications", h.ListNotifications)
		protectedRoutes.GET("/notifications/unread-count", h.UnreadNotificationCount)
		protectedRoutes.PATCH("/notifications/:id", h.UpdateNotification)
		protectedRoutes.POST("/notifications/read-all", h.MarkAllNotificationsRead)
		protectedRoutes.DELETE("/notifications/:id", h.DeleteNotification)

		// Event stream
		protectedRoutes.GET("/ws", h.WebSocket)
	}

	return ginRouter
}
