package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/freelancetrack/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Project endpoints - protected by AuthMiddleware
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware())
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", CreateProject)
		projectGroup.GET("/:id", GetProject)
		projectGroup.PUT("/:id", UpdateProject)
		projectGroup.DELETE("/:id", DeleteProject)

		// Kanban board
		projectGroup.GET("/:id/tasks", ListTasks)
		projectGroup.POST("/:id/tasks", CreateTask)
		projectGroup.PUT("/:id/tasks/:taskId", UpdateTask)
		projectGroup.DELETE("/:id/tasks/:taskId", DeleteTask)
		projectGroup.POST("/:id/tasks/:taskId/move", MoveTask)
		projectGroup.PUT("/:id/tasks/:taskId/subtasks", ReplaceSubTasks)
	}

	// Time log endpoints - protected by AuthMiddleware
	timeLogGroup := router.Group("/timelogs")
	timeLogGroup.Use(middleware.AuthMiddleware())
	{
		timeLogGroup.GET("", ListTimeLogs)
		timeLogGroup.POST("", CreateTimeLog)
		timeLogGroup.PUT("/:id", UpdateTimeLog)
		timeLogGroup.DELETE("/:id", DeleteTimeLog)
	}

	// Aggregated views - protected by AuthMiddleware
	viewsGroup := router.Group("")
	viewsGroup.Use(middleware.AuthMiddleware())
	{
		viewsGroup.GET("/dashboard/stats", GetDashboardStats)
		viewsGroup.GET("/roadmap", GetRoadmap)
	}
}
