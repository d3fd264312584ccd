package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/salesledger/internal/config"
	"github.com/sangkips/salesledger/internal/infrastructure/logger"
	"github.com/sangkips/salesledger/internal/presentation/http/dto/response"
	"github.com/sangkips/salesledger/internal/presentation/http/handler"
	"github.com/sangkips/salesledger/internal/presentation/http/middleware"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Category  *handler.CategoryHandler
	Product   *handler.ProductHandler
	Sale      *handler.SaleHandler
	Revenue   *handler.RevenueHandler
	Inventory *handler.InventoryHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg    *config.Config
	Logger *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(logger.Recovery(deps.Logger))
	router.Use(middleware.RequestID())
	router.Use(logger.GinMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(
		middleware.RateLimiterConfigFrom(deps.Cfg.RateLimit.Requests, deps.Cfg.RateLimit.Duration),
	)
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})

	registerCategoryRoutes(router, h)
	registerProductRoutes(router, h)
	registerSaleRoutes(router, h)
	registerRevenueRoutes(router, h)
	registerInventoryRoutes(router, h)

	return router
}

func registerCategoryRoutes(r gin.IRouter, h *Handlers) {
	categories := r.Group("/categories")
	{
		categories.POST("/", h.Category.Create)
		categories.GET("/", h.Category.List)
		categories.GET("/:id", h.Category.Get)
		categories.PUT("/:id", h.Category.Update)
	}
}

func registerProductRoutes(r gin.IRouter, h *Handlers) {
	products := r.Group("/products")
	{
		products.POST("/", h.Product.Create)
		products.GET("/", h.Product.List)
		products.GET("/:id", h.Product.Get)
	}
}

func registerSaleRoutes(r gin.IRouter, h *Handlers) {
	sales := r.Group("/sales")
	{
		sales.POST("/", h.Sale.Create)
		sales.GET("/", h.Sale.List)
	}
}

func registerRevenueRoutes(r gin.IRouter, h *Handlers) {
	r.GET("/revenue/", h.Revenue.Analyze)
}

func registerInventoryRoutes(r gin.IRouter, h *Handlers) {
	inventory := r.Group("/inventory")
	{
		inventory.POST("/", h.Inventory.Create)
		inventory.GET("/", h.Inventory.List)
		inventory.GET("/:product_id", h.Inventory.Get)
		inventory.PUT("/:product_id", h.Inventory.Update)
	}
}
