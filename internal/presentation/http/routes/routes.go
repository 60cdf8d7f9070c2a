package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zaiqahq/zaiqa-dashboard/internal/config"
	"github.com/zaiqahq/zaiqa-dashboard/internal/presentation/http/handler"
	"github.com/zaiqahq/zaiqa-dashboard/internal/presentation/http/middleware"
	"github.com/zaiqahq/zaiqa-dashboard/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Order   *handler.OrderHandler
	Printer *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
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
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-tenant rate limiter
		rateLimiter := middleware.NewTenantRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerOrderRoutes(protected, h)
		registerPrinterRoutes(protected, h)
	}

	return router
}

func registerOrderRoutes(g *gin.RouterGroup, h *Handlers) {
	orders := g.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("/refresh", h.Order.List)
		orders.PATCH("/:id/status", h.Order.UpdateStatus)
		orders.POST("/:id/cancel", h.Order.Cancel)
		orders.POST("/:id/payment", h.Order.RecordPayment)
		orders.DELETE("/:id", h.Order.Delete)
		orders.POST("/:id/print", h.Printer.PrintOrder)
	}
}

func registerPrinterRoutes(g *gin.RouterGroup, h *Handlers) {
	printer := g.Group("/printer")
	{
		printer.GET("/status", h.Printer.Status)
		printer.POST("/test", h.Printer.Test)
	}
}
