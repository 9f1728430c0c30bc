package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/jayisaacai/checkout-backend/internal/config"
	"github.com/jayisaacai/checkout-backend/internal/controller"
	"github.com/jayisaacai/checkout-backend/internal/handler"
	"github.com/jayisaacai/checkout-backend/internal/models"
	"github.com/jayisaacai/checkout-backend/internal/service"
	"github.com/jayisaacai/checkout-backend/pkg/email"
	"github.com/jayisaacai/checkout-backend/pkg/payment"
	"github.com/jayisaacai/checkout-backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg := config.LoadConfig()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	// Stripe service
	stripeService := payment.NewStripeService(cfg.Stripe.SecretKey)

	// Email service
	emailService := email.NewEmailService()

	// Services
	checkoutService := service.NewCheckoutService(
		stripeService,
		emailService,
		models.ReceiptCompany{
			Name:  cfg.Company.Name,
			Email: cfg.Company.SupportEmail,
		},
		zapLogger,
	)

	// Controllers
	checkoutController := controller.NewCheckoutController(checkoutService)

	validator := utils.NewValidator()

	// Handlers
	checkoutHandler := handler.NewCheckoutHandler(checkoutController, validator)
	statusHandler := handler.NewStatusHandler(cfg)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST",
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	api.Get("/", statusHandler.Health)
	api.Get("/debug", statusHandler.Debug)
	api.Get("/success", statusHandler.Success)
	api.Get("/cancel", statusHandler.Cancel)
	api.Get("/config", statusHandler.ClientConfig)

	// Method filtering happens inside the handlers so non-POST requests
	// get the JSON 405 body the checkout page expects.
	api.All("/stripe", checkoutHandler.CreatePaymentIntent)
	api.All("/subscribe", checkoutHandler.CreateSubscription)
	api.All("/receipt", checkoutHandler.SendReceipt)

	// Catch-all
	app.Use(statusHandler.NotFound)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Fatal(app.Listen(":" + port))
}
