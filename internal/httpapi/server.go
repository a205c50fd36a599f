// Package httpapi exposes the application services over the HTTP/JSON
// API both front ends consume.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wzbwan/ADHD-homeworks/internal/ports/primary"
)

// Server is the household tracker API server.
type Server struct {
	tasks     primary.TaskService
	habits    primary.HabitService
	score     primary.ScoreService
	dashboard primary.DashboardService
	router    *gin.Engine
}

// NewServer creates a new API server and registers all routes.
func NewServer(tasks primary.TaskService, habits primary.HabitService, score primary.ScoreService, dashboard primary.DashboardService) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())

	s := &Server{
		tasks:     tasks,
		habits:    habits,
		score:     score,
		dashboard: dashboard,
		router:    router,
	}

	api := router.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.GET("/dashboard", s.handleDashboard)

		api.POST("/tasks", s.handleCreateTask)
		api.POST("/tasks/common", s.handleAddFromCommon)
		api.GET("/tasks/common", s.handleListCommon)
		api.DELETE("/tasks/common/:title", s.handleDeleteCommon)
		api.POST("/tasks/:id/complete", s.handleCompleteTask)
		api.DELETE("/tasks/:id", s.handleDeleteTask)

		api.GET("/habits", s.handleListHabits)
		api.POST("/habits", s.handleAddHabit)
		api.DELETE("/habits/:id", s.handleDeleteHabit)
		api.POST("/habits/:id/toggle", s.handleToggleHabit)

		api.POST("/redeem", s.handleRedeem)
	}

	return s
}

// Run starts the API server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler returns the underlying http.Handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// corsMiddleware allows the browser front ends on other origins to
// reach the API.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
