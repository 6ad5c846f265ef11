// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"instock/internal/domain/audit"
	"instock/internal/domain/inventory"
	"instock/internal/domain/warehouse"
	"instock/internal/infrastructure/http/v1/handlers"
	"instock/internal/infrastructure/http/v1/middleware"
	"instock/internal/infrastructure/storage/postgres"
	"instock/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool, constructed once at startup
	// and passed down explicitly.
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// Auditor records entity mutations. Optional; nil disables auditing.
	Auditor audit.Recorder
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// Repositories share the one pool.
	warehouseRepo := postgres.NewWarehouseRepo(cfg.Pool)
	inventoryRepo := postgres.NewInventoryRepo(cfg.Pool)

	warehouseService := warehouse.NewService(warehouseRepo, cfg.Auditor)
	inventoryService := inventory.NewService(inventoryRepo, warehouseRepo, cfg.Auditor)

	base := handlers.NewBaseHandler()
	RegisterResourceRoutes(router,
		handlers.NewWarehouseHandler(base, warehouseService),
		handlers.NewInventoryHandler(base, inventoryService),
	)

	return router
}

// RegisterResourceRoutes mounts the warehouse and inventory resources
// under /api.
func RegisterResourceRoutes(router *gin.Engine, wh *handlers.WarehouseHandler, ih *handlers.InventoryHandler) {
	api := router.Group("/api")

	warehouses := api.Group("/warehouses")
	{
		warehouses.GET("", wh.List)
		warehouses.POST("", wh.Create)
		warehouses.GET("/:id", wh.Get)
		warehouses.PUT("/:id", wh.Update)
		warehouses.DELETE("/:id", wh.Delete)
		warehouses.GET("/:id/inventories", wh.ListInventories)
	}

	inventories := api.Group("/inventories")
	{
		inventories.GET("", ih.List)
		inventories.POST("", ih.Create)
		inventories.GET("/:id", ih.Get)
		inventories.PUT("/:id", ih.Update)
		inventories.DELETE("/:id", ih.Delete)
	}
}
