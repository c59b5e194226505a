package routes

import (
	"time"

	"github.com/Ajoe62/Pharmjam-sub001/internal/config"
	"github.com/Ajoe62/Pharmjam-sub001/internal/domain/enum"
	domainRepo "github.com/Ajoe62/Pharmjam-sub001/internal/domain/repository"
	"github.com/Ajoe62/Pharmjam-sub001/internal/presentation/http/handler"
	"github.com/Ajoe62/Pharmjam-sub001/internal/presentation/http/middleware"
	"github.com/Ajoe62/Pharmjam-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Staff     *handler.StaffHandler
	Product   *handler.ProductHandler
	Sale      *handler.SaleHandler
	Inventory *handler.InventoryHandler
	Dashboard *handler.DashboardHandler
	Export    *handler.ExportHandler
	Receipt   *handler.ReceiptHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	Logger          *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-staff rate limiter
		rateLimiter := middleware.NewStaffRateLimiter(middleware.RateLimiterConfig{
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
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/auth/change-password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetStats)

	registerProductRoutes(protected, h)
	registerSaleRoutes(protected, h, deps)
	registerInventoryRoutes(protected, h)
	registerExportRoutes(protected, h)
	registerStaffRoutes(protected, h)
	registerReceiptRoutes(protected, h)
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/barcode/:barcode", h.Product.GetByBarcode)
		products.GET("/:slug", h.Product.Get)
	}

	// Mutations require inventory management roles
	manage := protected.Group("/products")
	manage.Use(middleware.RequireRole(string(enum.RoleAdmin), string(enum.RolePharmacist)))
	{
		manage.POST("", h.Product.Create)
		manage.POST("/import", h.Product.Import)
		manage.PUT("/:slug", h.Product.Update)
		manage.DELETE("/:slug", h.Product.Delete)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		// Checkout uses idempotency middleware to prevent duplicate sales
		sales.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Sale.Checkout)
		sales.GET("/receipt/:receiptNo", h.Sale.GetByReceiptNo)
		sales.GET("/:id", h.Sale.Get)
		sales.POST("/:id/void", h.Sale.Void)
	}
}

func registerInventoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	inventory := protected.Group("/inventory")
	{
		inventory.GET("/low-stock", h.Inventory.GetLowStock)
		inventory.GET("/expiring", h.Inventory.GetExpiring)
	}

	restocks := protected.Group("/restocks")
	restocks.Use(middleware.RequireRole(string(enum.RoleAdmin), string(enum.RolePharmacist)))
	{
		restocks.GET("", h.Inventory.ListRestocks)
		restocks.POST("", h.Inventory.CreateRestock)
		restocks.GET("/:id", h.Inventory.GetRestock)
		restocks.POST("/:id/receive", h.Inventory.ReceiveRestock)
		restocks.POST("/:id/cancel", h.Inventory.CancelRestock)
	}
}

func registerExportRoutes(protected *gin.RouterGroup, h *Handlers) {
	exports := protected.Group("/exports")
	{
		exports.POST("", h.Export.Create)
		exports.GET("/preview", h.Export.Preview)
		exports.GET("/download", h.Export.Download)
		exports.POST("/share", h.Export.Share)
		exports.DELETE("", h.Export.Delete)
	}
}

func registerStaffRoutes(protected *gin.RouterGroup, h *Handlers) {
	staff := protected.Group("/staff")
	staff.Use(middleware.RequireRole(string(enum.RoleAdmin)))
	{
		staff.GET("", h.Staff.List)
		staff.POST("", h.Staff.Create)
		staff.GET("/:id", h.Staff.Get)
		staff.PUT("/:id", h.Staff.Update)
		staff.POST("/:id/deactivate", h.Staff.Deactivate)
	}
}

func registerReceiptRoutes(protected *gin.RouterGroup, h *Handlers) {
	receipts := protected.Group("/receipts")
	{
		receipts.GET("/printer/status", h.Receipt.Status)
		receipts.POST("/printer/test", h.Receipt.TestPrint)
		receipts.POST("/print", h.Receipt.Print)
		receipts.GET("/:id", h.Receipt.Get)
	}
}
