package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/stocklens/internal/config"
	apihandlers "github.com/stocklens/internal/http/handlers/api"
	"github.com/stocklens/internal/http/response"
	"github.com/stocklens/internal/logger"
	"github.com/stocklens/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.Z()
	r := gin.New()
	r.HandleMethodNotAllowed = true

	apiHandler := apihandlers.New(c)

	var redisClient *redis.Client
	redisPrefix := "stocklens"
	if c.Redis.Enabled() {
		redisClient = c.Redis.Client()
		redisPrefix = c.Redis.Key("")
	}
	bulkRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:bulk", redisPrefix),
		WindowSeconds: cfg.Security.BulkRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.BulkRateLimit.MaxRequests,
		Message:       "Too many bulk imports, retry in %d seconds",
	}
	bulkLimiter := RateLimitMiddleware(redisClient, bulkRule, KeyBySubjectOrIP)

	var metrics *Metrics
	if cfg.Metrics.Enabled {
		metrics = NewMetrics()
	}

	// 中间件
	r.Use(RecoveryMiddleware(log))
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(metrics.Middleware())
	r.Use(SecureMiddleware(cfg.Security, strings.EqualFold(cfg.Server.Mode, gin.DebugMode)))
	r.Use(CORSMiddleware(cfg.CORS))

	r.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Not Found")
	})
	r.NoMethod(func(ctx *gin.Context) {
		response.Error(ctx, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.GET("/healthz", apiHandler.Health)
	if metrics != nil {
		r.GET(cfg.Metrics.Path, metrics.Handler())
	}

	api := r.Group("/api")
	api.Use(BearerAuthMiddleware(cfg.Auth))
	{
		products := api.Group("/products")
		{
			products.GET("", apiHandler.ListProducts)
			products.GET("/search", apiHandler.SearchProducts)
			products.POST("", apiHandler.CreateProduct)
			products.POST("/bulk", bulkLimiter, apiHandler.BulkCreateProducts)
			products.POST("/bulk/upload", bulkLimiter, apiHandler.UploadProducts)
			products.GET("/bulk/template", apiHandler.DownloadProductTemplate)
			products.GET("/:id", apiHandler.GetProduct)
			products.PUT("/:id", apiHandler.UpdateProduct)
			products.DELETE("/:id", apiHandler.DeleteProduct)
		}

		api.GET("/sell-ins", apiHandler.ListSellIns)
		api.POST("/sell-ins", apiHandler.CreateSellIn)
		api.GET("/sell-throughs", apiHandler.ListSellThroughs)
		api.POST("/sell-throughs", apiHandler.CreateSellThrough)

		analytics := api.Group("/analytics")
		{
			analytics.GET("/products", apiHandler.GetProductAnalytics)
			analytics.GET("/products/export", apiHandler.ExportProductAnalytics)
			analytics.GET("/overall", apiHandler.GetOverallAnalytics)
			analytics.GET("/months", apiHandler.GetAnalyticsMonths)
		}
	}

	return r
}
