// main.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"cosmicclicker/database"
	"cosmicclicker/handlers"
	"cosmicclicker/middleware"
	"cosmicclicker/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	validateEnvironment()

	// Initialize database (optional: without it, saves stay local-only)
	var cloud *services.CloudStore
	if os.Getenv("DATABASE_URL") != "" || os.Getenv("DB_HOST") != "" {
		database.InitDB()
		cloud = services.NewCloudStore(database.GetDB())
	} else {
		log.Println("Warning: no database configured, cloud saves and leaderboard disabled")
	}

	local, err := services.NewLocalStore(getEnv("SAVE_DIR", "./data/saves"))
	if err != nil {
		log.Fatalf("FATAL: could not create save directory: %v", err)
	}

	sessions := services.NewSessionManager(local, cloud, services.RealClock{})
	defer sessions.StopAll()
	handlers.Init(sessions)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.RateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/guest", handlers.GuestSession)
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/login", handlers.Login)
	authGroup.Post("/logout", middleware.AuthMiddleware, handlers.Logout)

	// Game routes: authenticated players get cloud saves, guests play on
	// the local store via a session cookie
	gameGroup := api.Group("/game")
	gameGroup.Use(middleware.OptionalAuthMiddleware)
	gameGroup.Get("/state", handlers.GetState)
	gameGroup.Get("/catalog", handlers.GetCatalog)
	gameGroup.Get("/stats", handlers.GetStats)
	gameGroup.Post("/click", handlers.Click)
	gameGroup.Post("/upgrades/:id/buy", handlers.BuyUpgrade)
	gameGroup.Get("/prestige", handlers.PrestigeInfo)
	gameGroup.Post("/prestige", handlers.DoPrestige)
	gameGroup.Post("/username", handlers.SetUsername)

	// Leaderboard (read-only, no auth required)
	api.Get("/leaderboard", handlers.GetLeaderboard)

	// Live state stream
	app.Use("/ws", handlers.StreamUpgrade)
	app.Get("/ws/state", handlers.StateStream)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Flush saves on SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down, flushing game saves...")
		sessions.StopAll()
		_ = app.Shutdown()
	}()

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")
	log.Printf("🌌 Live state stream available at ws://localhost:%s/ws/state", port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
