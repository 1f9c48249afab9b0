package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mithuncards/cardpos/internal/config"
	"github.com/mithuncards/cardpos/internal/presentation/http/handler"
	"github.com/mithuncards/cardpos/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Session   *handler.SessionHandler
	Draft     *handler.DraftHandler
	Order     *handler.OrderHandler
	Customer  *handler.CustomerHandler
	Inventory *handler.InventoryHandler
	Expense   *handler.ExpenseHandler
	Report    *handler.ReportHandler
	Dashboard *handler.DashboardHandler
	Settings  *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg              *config.Config
	IdempotencyStore *middleware.IdempotencyStore
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
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
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerRoutes(v1, h, deps)
	}

	return router
}

func registerRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Session cache
	v1.POST("/session/refresh", h.Session.Refresh)
	v1.DELETE("/session", h.Session.Clear)

	// Settings
	v1.GET("/settings", h.Settings.GetSettings)
	v1.PUT("/settings", h.Settings.UpdateSettings)

	// Dashboard
	v1.GET("/dashboard", h.Dashboard.GetStats)

	// Reports
	v1.GET("/reports", h.Report.Get)

	registerDraftRoutes(v1, h)
	registerOrderRoutes(v1, h, deps)
	registerCustomerRoutes(v1, h)
	registerInventoryRoutes(v1, h)
	registerExpenseRoutes(v1, h)
}

func registerDraftRoutes(v1 *gin.RouterGroup, h *Handlers) {
	drafts := v1.Group("/drafts")
	{
		drafts.POST("", h.Draft.Create)
		drafts.GET("/:id", h.Draft.Get)
		drafts.DELETE("/:id", h.Draft.Discard)
		drafts.PATCH("/:id", h.Draft.Update)
		drafts.POST("/:id/items/catalog", h.Draft.AddCatalogItem)
		drafts.POST("/:id/items/quick", h.Draft.AddQuickItem)
		drafts.PATCH("/:id/items/:item_id/quantity", h.Draft.UpdateItemQuantity)
		drafts.DELETE("/:id/items/:item_id", h.Draft.RemoveItem)
		drafts.POST("/:id/save", h.Draft.Save)
	}
}

func registerOrderRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := v1.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.GET("/:id/invoice", h.Order.Invoice)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.DELETE("/:id", h.Order.Delete)
		// Bulk deletion replays under the same idempotency key
		orders.POST("/bulk-delete", middleware.Idempotency(deps.IdempotencyStore), h.Order.BulkDelete)
	}
}

func registerCustomerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	customers := v1.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.GET("/:id/orders", h.Customer.Orders)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerInventoryRoutes(v1 *gin.RouterGroup, h *Handlers) {
	inventory := v1.Group("/inventory")
	{
		inventory.GET("", h.Inventory.List)
		inventory.GET("/low-stock", h.Inventory.GetLowStock)
		inventory.GET("/subtypes", h.Inventory.Subtypes)
		inventory.GET("/:id", h.Inventory.Get)
		inventory.POST("/quick-add", h.Inventory.QuickAdd)
	}
}

func registerExpenseRoutes(v1 *gin.RouterGroup, h *Handlers) {
	expenses := v1.Group("/expenses")
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.DELETE("/:id", h.Expense.Delete)
	}
}
