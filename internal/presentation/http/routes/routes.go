package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kapehan/pos-api/internal/config"
	"github.com/kapehan/pos-api/internal/domain/enum"
	domainRepo "github.com/kapehan/pos-api/internal/domain/repository"
	"github.com/kapehan/pos-api/internal/presentation/http/handler"
	"github.com/kapehan/pos-api/internal/presentation/http/middleware"
	"github.com/kapehan/pos-api/pkg/metrics"
	"github.com/kapehan/pos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Menu      *handler.MenuHandler
	Inventory *handler.InventoryHandler
	Customer  *handler.CustomerHandler
	Checkout  *handler.CheckoutHandler
	Restock   *handler.RestockHandler
	Dashboard *handler.DashboardHandler
	Staff     *handler.StaffHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	Metrics         *metrics.ServerMetrics
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))
	if deps.Metrics != nil {
		router.Use(middleware.MetricsMiddleware(deps.Metrics))
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	manager := enum.StaffRoleManager.String()

	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetStats)

	// Menu catalog: reads for all staff, writes for managers
	menu := protected.Group("/menu-items")
	{
		menu.GET("", h.Menu.List)
		menu.GET("/:id", h.Menu.Get)
		menu.GET("/slug/:slug", h.Menu.GetBySlug)

		menu.POST("", middleware.RequireRole(manager), h.Menu.Create)
		menu.PUT("/:id", middleware.RequireRole(manager), h.Menu.Update)
		menu.PUT("/:id/recipe", middleware.RequireRole(manager), h.Menu.ReplaceRecipe)
		menu.PUT("/:id/availability", h.Menu.SetAvailability)
		menu.DELETE("/:id", middleware.RequireRole(manager), h.Menu.Delete)
	}

	// Add-ons
	addons := protected.Group("/addons")
	{
		addons.GET("", h.Menu.ListAddOns)
		addons.GET("/:id", h.Menu.GetAddOn)

		addons.POST("", middleware.RequireRole(manager), h.Menu.CreateAddOn)
		addons.PUT("/:id", middleware.RequireRole(manager), h.Menu.UpdateAddOn)
		addons.DELETE("/:id", middleware.RequireRole(manager), h.Menu.DeleteAddOn)
	}

	// Ingredient inventory
	ingredients := protected.Group("/ingredients")
	{
		ingredients.GET("", h.Inventory.List)
		ingredients.GET("/low-stock", h.Inventory.GetLowStock)
		ingredients.GET("/:id", h.Inventory.Get)

		ingredients.POST("", middleware.RequireRole(manager), h.Inventory.Create)
		ingredients.PUT("/:id", middleware.RequireRole(manager), h.Inventory.Update)
		ingredients.DELETE("/:id", middleware.RequireRole(manager), h.Inventory.Delete)
		ingredients.POST("/:id/adjust", middleware.RequireRole(manager), h.Inventory.AdjustStock)
		ingredients.POST("/low-stock/alert", middleware.RequireRole(manager), h.Inventory.SendLowStockAlert)
	}

	// Customers
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.GET("/:id/checkouts", h.Customer.GetCheckouts)

		customers.POST("/:id/points", middleware.RequireRole(manager), h.Customer.GrantPoints)
		customers.DELETE("/:id", middleware.RequireRole(manager), h.Customer.Delete)
	}

	// Checkouts
	checkouts := protected.Group("/checkouts")
	{
		checkouts.GET("", h.Checkout.List)
		// Checkout creation uses idempotency middleware so a retried
		// request never burns stock or a receipt number twice
		checkouts.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Checkout.Create)
		checkouts.GET("/receipt/:receipt_no", h.Checkout.GetByReceiptNo)
		checkouts.GET("/:id", h.Checkout.Get)
		checkouts.PUT("/:id/payment", h.Checkout.UpdatePayment)
		checkouts.POST("/:id/print", h.Printer.PrintReceipt)
	}

	// Restocks: creation by any staff, approval by managers
	restocks := protected.Group("/restocks")
	{
		restocks.GET("", h.Restock.List)
		restocks.POST("", h.Restock.Create)
		restocks.GET("/pending", h.Restock.GetPending)
		restocks.GET("/:id", h.Restock.Get)

		restocks.POST("/:id/approve", middleware.RequireRole(manager), h.Restock.Approve)
		restocks.POST("/:id/cancel", middleware.RequireRole(manager), h.Restock.Cancel)
		restocks.DELETE("/:id", middleware.RequireRole(manager), h.Restock.Delete)
	}

	// Suppliers
	suppliers := protected.Group("/suppliers")
	{
		suppliers.GET("", h.Restock.ListSuppliers)
		suppliers.GET("/:id", h.Restock.GetSupplier)

		suppliers.POST("", middleware.RequireRole(manager), h.Restock.CreateSupplier)
		suppliers.PUT("/:id", middleware.RequireRole(manager), h.Restock.UpdateSupplier)
		suppliers.DELETE("/:id", middleware.RequireRole(manager), h.Restock.DeleteSupplier)
	}

	// Staff management (managers only)
	staff := protected.Group("/staff")
	staff.Use(middleware.RequireRole(manager))
	{
		staff.GET("", h.Staff.List)
		staff.POST("", h.Staff.Create)
		staff.GET("/:id", h.Staff.Get)
		staff.PUT("/:id", h.Staff.Update)
		staff.DELETE("/:id", h.Staff.Delete)
	}

	// Printer
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
