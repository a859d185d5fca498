package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sefazor/pricing-web/internal/config"
	"github.com/sefazor/pricing-web/internal/handler"
	"github.com/sefazor/pricing-web/internal/middleware"
	"github.com/sefazor/pricing-web/internal/repository"
	"github.com/sefazor/pricing-web/internal/service"
	"github.com/sefazor/pricing-web/internal/view"
	"github.com/sefazor/pricing-web/pkg/backend"
	"github.com/sefazor/pricing-web/pkg/email"
	"github.com/sefazor/pricing-web/pkg/logger"
	"github.com/sefazor/pricing-web/pkg/payment"
	"github.com/sefazor/pricing-web/pkg/theme"
	"github.com/sefazor/pricing-web/pkg/utils"
)

func main() {
	// .env is optional, the environment wins
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded")
	}

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zl.Sync() //nolint:errcheck

	validator := utils.NewValidator()

	// Plan catalog
	planRepo, err := repository.NewPlanRepository(cfg.PlansFile, validator)
	if err != nil {
		zl.Fatal("Failed to load plans", zap.Error(err))
	}

	// Theme stylesheet
	th, err := theme.Load(cfg.ThemeFile)
	if err != nil {
		zl.Fatal("Failed to load theme", zap.Error(err))
	}
	themeCSS, err := th.CSS()
	if err != nil {
		zl.Fatal("Failed to compile theme", zap.Error(err))
	}

	// Backend and payment provider
	backendClient := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout, zl)
	provider, err := payment.NewProvider(cfg.Stripe.SecretKey, cfg.Stripe.PublishableKey)
	if err != nil {
		zl.Fatal("Failed to initialize payment provider", zap.Error(err))
	}

	// Contact mail
	var notifier service.ContactNotifier
	if cfg.Email.ResendAPIKey != "" {
		notifier = email.NewContactMailer(cfg.Email.ResendAPIKey, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.ContactTo, zl)
	} else {
		zl.Warn("RESEND_API_KEY is not set, contact requests are only logged")
		notifier = email.NewLogMailer(zl)
	}

	// Services
	pricingService := service.NewPricingService(planRepo)
	checkoutService := service.NewCheckoutService(backendClient, provider, validator, cfg.ContactRoute, zl)
	contactService := service.NewContactService(notifier, validator, zl)

	// Handlers
	pricingHandler := handler.NewPricingHandler(pricingService, checkoutService, planRepo, validator)
	contactHandler := handler.NewContactHandler(contactService)
	categoryHandler := handler.NewCategoryHandler(backendClient)
	assetHandler := handler.NewAssetHandler(themeCSS)

	// Router
	app := fiber.New(fiber.Config{
		Views:        view.New(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New())

	postLimiter := limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/pricing")
	})
	app.Get("/assets/theme.css", assetHandler.ThemeCSS)

	// Public pages
	app.Get("/pricing", pricingHandler.GetPricing)
	app.Post("/pricing/checkout", postLimiter, pricingHandler.Checkout)
	app.Get(cfg.ContactRoute, contactHandler.GetContact)
	app.Post(cfg.ContactRoute, postLimiter, contactHandler.SubmitContact)

	// Scoped routes
	scoped := app.Group("/app", middleware.ScopeMiddleware())
	scoped.Get("/categories", categoryHandler.GetCategories)
	scoped.Delete("/categories/:id", categoryHandler.DeleteCategory)

	zl.Info("Starting server", zap.String("port", cfg.Port), zap.String("backend", cfg.BackendURL))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zl.Fatal("Server stopped", zap.Error(err))
	}
}
