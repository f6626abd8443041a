package http

import (
	"github.com/gin-gonic/gin"

	"github.com/splitwing/splitwing/api"
	"github.com/splitwing/splitwing/guard"
	"github.com/splitwing/splitwing/service"
)

// SetupRouter sets up the Gin router for the session facade
func SetupRouter(sessions *service.SessionService, resources *api.Client) *gin.Engine {
	router := gin.Default()

	handlers := NewSessionHandlers(sessions, resources)
	routeGuard := guard.New(guard.DefaultLoginRoute, "/auth/login", "/auth/register")

	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/login", handlers.Login)
		auth.POST("/register", handlers.Register)
		auth.POST("/logout", handlers.Logout)
	}

	// Protected routes mirroring the dashboard pages
	protected := router.Group("/api")
	protected.Use(SessionGuard(sessions, routeGuard))
	{
		protected.GET("/me", handlers.Me)
		protected.GET("/products", handlers.Products)
		protected.GET("/creatives", handlers.Creatives)
		protected.GET("/tests", handlers.ABTests)
		protected.GET("/performance/:testID", handlers.Performance)
	}

	return router
}
