package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pasar/internal/config"
	"pasar/internal/handlers"
	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"
	"pasar/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Initialize RabbitMQ Client ---
	mqConfig := rabbitmq.Config{URL: cfg.RabbitMQURL}
	mqClient, err := rabbitmq.NewClient(mqConfig)
	if err != nil {
		log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
	}
	defer mqClient.Close() // Ensure the connection is closed on exit

	// --- Initialize Database ---
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{}, &models.Vendor{}, &models.Rider{}, &models.Address{},
		&models.Product{}, &models.Cart{}, &models.ShippingFee{},
		&models.Order{}, &models.OrderHistory{}, &models.OrderCompleted{}, &models.Dispute{},
		&models.UserTransaction{}, &models.VendorTransaction{}, &models.RiderTransaction{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	vendorRepo := repositories.NewGORMVendorRepository(db)
	riderRepo := repositories.NewGORMRiderRepository(db)
	addressRepo := repositories.NewGORMAddressRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	shippingRepo := repositories.NewGORMShippingFeeRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	settlementRepo := repositories.NewGORMSettlementRepository(db)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, vendorRepo, riderRepo, cfg.JWTSecret)
	catalogService := services.NewCatalogService(productRepo, cartRepo, shippingRepo)
	accountService := services.NewAccountService(userRepo, addressRepo, orderRepo)
	checkoutService := services.NewCheckoutService(settlementRepo, cfg.Rates, mqClient)
	settlementService := services.NewSettlementService(settlementRepo, cfg.Rates, mqClient)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService, cfg.AdminUsername, cfg.AdminPassword)
	catalogHandler := handlers.NewCatalogHandler(catalogService, accountService)
	orderHandler := handlers.NewOrderHandler(checkoutService, settlementService, accountService)
	shippingHandler := handlers.NewShippingHandler(settlementService)
	adminHandler := handlers.NewAdminHandler(settlementService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")

	authHandler.RegisterRoutes(apiV1)
	catalogHandler.RegisterPublicRoutes(apiV1)

	customerOnly := middleware.AuthRequired(authService, models.RoleCustomer)
	catalogHandler.RegisterCustomerRoutes(apiV1, customerOnly)
	orderHandler.RegisterRoutes(apiV1, customerOnly)

	vendor := apiV1.Group("/vendor", middleware.AuthRequired(authService, models.RoleVendor))
	catalogHandler.RegisterVendorRoutes(vendor)
	shippingHandler.RegisterVendorRoutes(vendor)

	rider := apiV1.Group("/rider", middleware.AuthRequired(authService, models.RoleRider))
	catalogHandler.RegisterRiderRoutes(rider)
	shippingHandler.RegisterRiderRoutes(rider)

	admin := apiV1.Group("/admin", middleware.AuthRequired(authService, models.RoleAdmin))
	adminHandler.RegisterRoutes(admin)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	// The consumer drains settlement events; downstream processing (emails,
	// analytics) would hang off this.
	go func() {
		log.Println("Starting RabbitMQ consumer for settlement events...")
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received Settlement Event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil // Return nil to acknowledge
		}
		if consumerErr := mqClient.ConsumeSettlementEvents(messageHandler); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}()

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
