package routes

import (
	"MediHome/cache"
	"MediHome/config"
	"MediHome/controllers"
	"MediHome/handlers"
	"MediHome/middlewares"
	"MediHome/models"
	"MediHome/repositories"
	"MediHome/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Components bundles the stateful pieces the routes are built over, so the
// caller can also drive them outside the HTTP surface (session restore at
// startup, demo seeding).
type Components struct {
	AuthService services.AuthService
	ServiceRepo *repositories.ServiceRepository
}

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, components *Components) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://app.medihome.example"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	serviceService := services.NewServiceService(components.ServiceRepo)
	dashboardService := services.NewDashboardService(components.ServiceRepo)

	serviceHandler := handlers.NewServiceHandler(serviceService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	authHandler := handlers.NewAuthHandler(components.AuthService)

	controllers.SetupServiceRoutes(router, serviceHandler, dashboardHandler)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}

// BuildComponents wires the identity store and the service repository over
// the shared cache.
func BuildComponents(cache *cache.Cache, config *config.AppConfig) *Components {
	userRepo := repositories.NewUserRepository(models.SeedUsers())
	sessionRepo := repositories.NewSessionRepository(cache)

	return &Components{
		AuthService: services.NewAuthService(userRepo, sessionRepo, config.SimulatedLatency),
		ServiceRepo: repositories.NewServiceRepository(config.SimulatedLatency),
	}
}
