package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mithuncards/cardpos/internal/application/service"
	"github.com/mithuncards/cardpos/internal/application/session"
	"github.com/mithuncards/cardpos/internal/config"
	"github.com/mithuncards/cardpos/internal/infrastructure/localstore"
	"github.com/mithuncards/cardpos/internal/infrastructure/upstream"
	"github.com/mithuncards/cardpos/internal/presentation/http/handler"
	"github.com/mithuncards/cardpos/internal/presentation/http/middleware"
	"github.com/mithuncards/cardpos/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Local shop settings
	settingsRepo := localstore.NewSettingsRepository(cfg.Settings.FilePath)
	settingsService, err := service.NewSettingsService(settingsRepo)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	// Upstream backend client and repositories
	client := upstream.NewClient(&cfg.Upstream)
	orderRepo := upstream.NewOrderRepository(client)
	customerRepo := upstream.NewCustomerRepository(client)
	inventoryRepo := upstream.NewInventoryRepository(client)
	expenseRepo := upstream.NewExpenseRepository(client)

	// Session cache over the upstream collections
	store := session.NewStore(orderRepo, customerRepo, inventoryRepo, expenseRepo)
	client.OnUnauthorized(store.Clear)

	// Warm the cache; the gateway still starts when the backend is down.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := store.Refresh(ctx); err != nil {
		log.Printf("Warning: initial session refresh failed: %v", err)
	}
	cancel()

	// Initialize services
	orderService := service.NewOrderService(store, settingsService)
	customerService := service.NewCustomerService(store)
	inventoryService := service.NewInventoryService(store)
	expenseService := service.NewExpenseService(store)
	reportService := service.NewReportService(store)
	dashboardService := service.NewDashboardService(store)
	invoiceService := service.NewInvoiceService(store, settingsService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Session:   handler.NewSessionHandler(store),
		Draft:     handler.NewDraftHandler(orderService),
		Order:     handler.NewOrderHandler(orderService, invoiceService),
		Customer:  handler.NewCustomerHandler(customerService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Expense:   handler.NewExpenseHandler(expenseService),
		Report:    handler.NewReportHandler(reportService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Settings:  handler.NewSettingsHandler(settingsService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:              cfg,
		IdempotencyStore: middleware.NewIdempotencyStore(0),
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)
	log.Printf("Upstream: %s", cfg.Upstream.BaseURL)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
