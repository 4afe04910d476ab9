package api

import (
	"github.com/gin-gonic/gin"

	"faultmesh/internal/api/handlers"
	"faultmesh/internal/api/middleware"
	"faultmesh/internal/repository"
	"faultmesh/internal/service"
	"faultmesh/pkg/database"
)

// SetupRoutes wires repositories, services, and handlers and registers
// every route. The gin handlers never touch internal/algorithm
// directly; they go through internal/service.
func SetupRoutes(router *gin.Engine) {
	db := database.GetDB()

	userRepo := repository.NewUserRepository(db)
	runRepo := repository.NewRunRepository(db)

	userService := service.NewUserService(userRepo)
	runService := service.NewRunService(runRepo)
	monitorService := service.NewMonitorService()

	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	runHandler := handlers.NewRunHandler(runService)
	healthHandler := handlers.NewHealthHandler()
	monitorHandler := handlers.NewMonitorHandler(monitorService)

	public := router.Group("/api/v1")
	{
		public.GET("/health", healthHandler.CheckHealth)

		auth := public.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
		}
	}

	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware())
	{
		auth := protected.Group("/auth")
		{
			auth.GET("/me", authHandler.GetCurrentUser)
		}

		users := protected.Group("/users")
		{
			users.GET("/:id", userHandler.GetUser)
		}

		runs := protected.Group("/runs")
		{
			runs.POST("", runHandler.SubmitRun)
			runs.GET("", runHandler.ListRuns)
			runs.GET("/:id", runHandler.GetRun)
		}

		protected.GET("/monitor", monitorHandler.GetSystemMetrics)

		admin := protected.Group("/admin")
		admin.Use(middleware.AdminMiddleware())
		{
			adminUsers := admin.Group("/users")
			{
				adminUsers.GET("", userHandler.ListUsers)
				adminUsers.POST("", userHandler.CreateUser)
			}
		}
	}
}
