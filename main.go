package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/viper"

	"catalogo/internal/api"
	"catalogo/internal/handlers"
	"catalogo/internal/middleware"
	"catalogo/internal/services"
	"catalogo/internal/web"
)

// NewApp wires the admin panel: configuration, the remote API clients, the
// session service and every page handler. Integration tests call this too.
func NewApp() (*fiber.App, error) {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("API_BASE_URL", "https://api3-1-0spe.onrender.com/api")
	viper.SetDefault("JWT_SECRET", "catalogo_dev_secret")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin")
	viper.AutomaticEnv()

	// --- Remote API clients ---
	client, err := api.NewClient(viper.GetString("API_BASE_URL"))
	if err != nil {
		return nil, err
	}
	productClient := api.NewProductClient(client)
	supplierClient := api.NewSupplierClient(client)

	// --- Services ---
	authService, err := services.NewAuthService(
		viper.GetString("ADMIN_USERNAME"),
		viper.GetString("ADMIN_PASSWORD"),
		viper.GetString("JWT_SECRET"),
	)
	if err != nil {
		return nil, err
	}

	// --- Rendering ---
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	// --- Fiber app ---
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	// --- Health check ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Public routes ---
	authHandler := handlers.NewAuthHandler(authService, renderer)
	authHandler.RegisterRoutes(app)

	// --- Admin pages (session required) ---
	adminPages := app.Group("", middleware.SessionRequired(authService))
	handlers.NewDashboardHandler(productClient, renderer).RegisterRoutes(adminPages)
	handlers.NewProductHandler(productClient, supplierClient, renderer).RegisterRoutes(adminPages)
	handlers.NewSupplierHandler(supplierClient, renderer).RegisterRoutes(adminPages)

	return app, nil
}

func main() {
	app, err := NewApp()
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	appPort := viper.GetString("APP_PORT")
	log.Printf("Starting admin panel on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
