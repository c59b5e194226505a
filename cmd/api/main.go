package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ajoe62/Pharmjam-sub001/internal/application/export"
	"github.com/Ajoe62/Pharmjam-sub001/internal/application/service"
	"github.com/Ajoe62/Pharmjam-sub001/internal/config"
	"github.com/Ajoe62/Pharmjam-sub001/internal/infrastructure/database"
	"github.com/Ajoe62/Pharmjam-sub001/internal/infrastructure/repository"
	"github.com/Ajoe62/Pharmjam-sub001/internal/presentation/http/handler"
	"github.com/Ajoe62/Pharmjam-sub001/internal/presentation/http/routes"
	"github.com/Ajoe62/Pharmjam-sub001/pkg/printer"
	"github.com/Ajoe62/Pharmjam-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set up the logger before anything else
	var logger *zap.Logger
	var err error
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Seed default data
	if err := database.SeedDefaultData(db, logger); err != nil {
		logger.Warn("Failed to seed default data", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	staffRepo := repository.NewStaffRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	saleItemRepo := repository.NewSaleItemRepository(db)
	restockRepo := repository.NewRestockRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize export file store
	exportStore, err := export.NewLocalStore(cfg.Export.Dir)
	if err != nil {
		logger.Fatal("Failed to initialize export directory", zap.Error(err))
	}

	// Initialize services
	authService := service.NewAuthService(staffRepo, jwtManager)
	staffService := service.NewStaffService(staffRepo)
	productService := service.NewProductService(productRepo)
	saleService := service.NewSaleService(saleRepo, saleItemRepo, productRepo)
	inventoryService := service.NewInventoryService(productRepo, restockRepo)
	dashboardService := service.NewDashboardService(saleRepo, restockRepo, productRepo, analyticsRepo)
	exportService := export.NewService(
		export.NewLiveSource(saleRepo),
		export.NewStaffDirectory(staffRepo),
		exportStore,
		cfg.Export.UseSampleData,
		cfg.Export.PreviewRows,
		logger,
	)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		logger.Warn("Failed to initialize printer", zap.Error(err))
		thermalPrinter = printer.NewNullPrinter()
	}
	receiptService := service.NewReceiptService(thermalPrinter, saleRepo, cfg.Pharmacy, cfg.Printer.Type, logger)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Staff:     handler.NewStaffHandler(staffService),
		Product:   handler.NewProductHandler(productService),
		Sale:      handler.NewSaleHandler(saleService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Export:    handler.NewExportHandler(exportService),
		Receipt:   handler.NewReceiptHandler(receiptService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		Logger:          logger,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting server",
			zap.String("service", cfg.App.Name),
			zap.String("port", port),
			zap.String("env", cfg.App.Env),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt, then drain in-flight requests before exiting
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
	_ = thermalPrinter.Close()
	logger.Info("Server stopped")
}
