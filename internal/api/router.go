package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/VGuerra123/TiendaOnline-sub000/internal/api/handlers"
	"github.com/VGuerra123/TiendaOnline-sub000/internal/api/middleware"
	"github.com/VGuerra123/TiendaOnline-sub000/internal/config"
	"github.com/VGuerra123/TiendaOnline-sub000/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, catalogSvc *service.CatalogService, cartSvc *service.CartService, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))
	router.Use(middleware.NewMetrics().Handler())

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "TiendaOnline Storefront API",
			"endpoints": []string{
				"GET /health",
				"GET /metrics",
				"GET /v1/catalog/products",
				"GET /v1/catalog/facets",
				"GET /v1/cart",
				"POST /v1/cart/lines",
				"PATCH /v1/cart/lines",
				"DELETE /v1/cart/lines",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/v1")
	{
		catalogRoutes := v1.Group("/catalog")
		{
			catalogRoutes.GET("/products", handlers.HandleListProducts(catalogSvc, logger))
			catalogRoutes.GET("/facets", handlers.HandleGetFacets(catalogSvc, logger))
		}

		cartRoutes := v1.Group("/cart")
		cartRoutes.Use(middleware.SessionMiddleware(logger))
		{
			cartRoutes.GET("", handlers.HandleGetCart(cartSvc, logger))
			cartRoutes.POST("/lines", handlers.HandleAddLines(cartSvc, logger))
			cartRoutes.PATCH("/lines", handlers.HandleUpdateLines(cartSvc, logger))
			cartRoutes.DELETE("/lines", handlers.HandleRemoveLines(cartSvc, logger))
		}
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
