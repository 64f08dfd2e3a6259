package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/kapehan/pos-api/internal/application/service"
	"github.com/kapehan/pos-api/internal/config"
	"github.com/kapehan/pos-api/internal/infrastructure/database"
	"github.com/kapehan/pos-api/internal/infrastructure/repository"
	"github.com/kapehan/pos-api/internal/presentation/http/handler"
	"github.com/kapehan/pos-api/internal/presentation/http/routes"
	"github.com/kapehan/pos-api/pkg/email"
	"github.com/kapehan/pos-api/pkg/metrics"
	"github.com/kapehan/pos-api/pkg/oauth"
	"github.com/kapehan/pos-api/pkg/printer"
	"github.com/kapehan/pos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)
	addOnRepo := repository.NewAddOnRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	checkoutRepo := repository.NewCheckoutRepository(db)
	counterRepo := repository.NewCounterRepository(db)
	restockRepo := repository.NewRestockRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	txManager := repository.NewGormTxManager(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.SMTP.Host,
		SMTPPort:     cfg.SMTP.Port,
		SMTPUsername: cfg.SMTP.Username,
		SMTPPassword: cfg.SMTP.Password,
		FromName:     cfg.SMTP.FromName,
		FromEmail:    cfg.SMTP.FromEmail,
		FrontendURL:  cfg.SMTP.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize Prometheus metrics
	serverMetrics := metrics.NewServerMetrics("api")

	// Initialize services
	authService := service.NewAuthService(userRepo, passwordResetRepo, jwtManager, emailService, googleOAuthService)
	menuService := service.NewMenuService(menuItemRepo, addOnRepo, ingredientRepo)
	inventoryService := service.NewInventoryService(ingredientRepo, emailService, cfg.SMTP.AlertEmail)
	customerService := service.NewCustomerService(customerRepo, checkoutRepo)
	checkoutService := service.NewCheckoutService(
		checkoutRepo,
		menuItemRepo,
		addOnRepo,
		ingredientRepo,
		customerRepo,
		counterRepo,
		txManager,
		cfg.Loyalty,
		serverMetrics,
	)
	restockService := service.NewRestockService(restockRepo, ingredientRepo, supplierRepo, txManager)
	dashboardService := service.NewDashboardService(analyticsRepo, checkoutRepo, ingredientRepo, customerRepo, restockRepo)
	userService := service.NewUserService(userRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(
		thermalPrinter,
		checkoutRepo,
		cfg.Store,
		cfg.Printer.Type,
		cfg.Printer.CharWidth,
		serverMetrics,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, cfg.OAuth),
		Menu:      handler.NewMenuHandler(menuService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Customer:  handler.NewCustomerHandler(customerService),
		Checkout:  handler.NewCheckoutHandler(checkoutService),
		Restock:   handler.NewRestockHandler(restockService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Staff:     handler.NewStaffHandler(userService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		Metrics:         serverMetrics,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
