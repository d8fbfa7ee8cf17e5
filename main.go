package main

import (
	"log"
	"time"

	"ecotrack-be/internal/cache"
	"ecotrack-be/internal/config"
	"ecotrack-be/internal/controllers"
	"ecotrack-be/internal/database"
	"ecotrack-be/internal/jwt"
	"ecotrack-be/internal/middleware"
	"ecotrack-be/internal/repository"
	"ecotrack-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// The signing secret and store address have no workable defaults;
	// refuse to start without them.
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTLHours)*time.Hour,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	activityService := service.NewActivityService(activityRepo, cacheClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	activityController := controllers.NewActivityController(activityService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Auth routes with stricter rate limiting
	router.POST("/register", authRateLimiter.LimitMiddleware(), authController.Register)
	router.POST("/login", authRateLimiter.LimitMiddleware(), authController.Login)

	// Protected routes - require a valid bearer token
	protected := router.Group("")
	protected.Use(generalRateLimiter.LimitMiddleware(), middleware.AuthMiddleware(jwtService))
	{
		protected.GET("/profile", authController.Profile)
		protected.POST("/activities", activityController.Create)
		protected.GET("/activities", activityController.List)
		protected.GET("/dashboard", activityController.Dashboard)
	}

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
