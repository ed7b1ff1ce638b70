// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"time"

	"vigil/internal/config"
	"vigil/internal/handlers"
	"vigil/internal/metrics"
	"vigil/internal/middleware"
	"vigil/internal/repositories"
	"vigil/internal/services/auth"
	"vigil/internal/services/fraud"
	"vigil/internal/services/geo"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const geoCacheTTL = 24 * time.Hour

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)
	transactionRepo := repositories.NewTransactionRepository(db)
	blacklistRepo := repositories.NewBlacklistRepository(db)

	// Initialize auth service and handler
	authService := auth.NewService(userRepo)
	authHandler := handlers.NewAuthHandler(authService)

	// Geocoding: Nominatim behind the Redis cache
	resolver := geo.NewCachedResolver(
		geo.NewNominatimResolver(config.GetEnv("NOMINATIM_BASE_URL", geo.DefaultBaseURL)),
		repositories.CacheService,
		geoCacheTTL,
	)

	// Fraud engine and its handlers
	engine := fraud.NewService(blacklistRepo, transactionRepo, resolver, metrics.NewFraudMetrics(nil))
	fraudHandler := handlers.NewFraudHandler(engine, transactionRepo)
	transactionHandler := handlers.NewTransactionHandler(transactionRepo)
	blacklistHandler := handlers.NewBlacklistHandler(blacklistRepo)

	// Root welcome route and operational endpoints
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Vigil Fraud Screening API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})
	app.Get("/health", handlers.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/register", authHandler.RegisterUser) // This becomes /api/register
	api.Post("/login", authHandler.LoginUser)       // This becomes /api/login
	api.Post("/refresh", authHandler.RefreshToken)  // This becomes /api/refresh

	// Create middleware instance
	authMiddleware := middleware.NewAuthMiddleware(authService)

	// Protected routes with auth middleware
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.LogoutUser)
	protected.Post("/fraud/check", fraudHandler.CheckTransaction)
	protected.Get("/transactions", transactionHandler.List)
	protected.Get("/transactions/flagged", transactionHandler.ListFlagged)
	protected.Get("/transactions/:transactionID", transactionHandler.Get)
	protected.Get("/blacklist", blacklistHandler.List)

	// Cache statistics for operators
	protected.Get("/cache-stats", handlers.CacheStats)
}
