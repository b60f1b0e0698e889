package router

import (
	"context"
	"strings"
	"time"

	"github.com/marketfee-next/internal/cache"
	"github.com/marketfee-next/internal/config"
	adminhandlers "github.com/marketfee-next/internal/http/handlers/admin"
	publichandlers "github.com/marketfee-next/internal/http/handlers/public"
	"github.com/marketfee-next/internal/http/response"
	"github.com/marketfee-next/internal/i18n"
	"github.com/marketfee-next/internal/logger"
	"github.com/marketfee-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	limitClient := cache.Client()
	if !cfg.RateLimit.Enabled {
		limitClient = nil
	}
	publicRule := NewRateLimitRule("public", cfg.RateLimit)
	storeRule := NewRateLimitRule("store", cfg.RateLimit)

	// 中间件
	r.Use(RequestIDMiddleware())
	r.Use(RecoveryMiddleware())
	r.Use(LoggerMiddleware(logger.Z()))
	r.Use(CORSMiddleware(cfg.CORS))

	if cfg.Metrics.Enabled && c.Metrics != nil {
		path := strings.TrimSpace(cfg.Metrics.Path)
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(c.Metrics.Handler()))
	}

	r.GET("/health", healthHandler)

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		public.Use(RateLimitMiddleware(limitClient, publicRule, KeyByIP))
		{
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:id", publicHandler.GetProductByID)
		}

		// 顾客接口（X-Customer-ID 标识顾客）
		store := apiV1.Group("/store")
		store.Use(RateLimitMiddleware(limitClient, storeRule, KeyByCustomerOrIP))
		{
			store.GET("/cart", publicHandler.GetCart)
			store.GET("/orders", publicHandler.ListOrders)
			store.GET("/orders/:id", publicHandler.GetOrder)
		}

		// 管理接口
		admin := apiV1.Group("/admin")
		{
			admin.GET("/orders", adminHandler.AdminListOrders)
			admin.GET("/orders/:id", adminHandler.AdminGetOrder)
			admin.POST("/orders/:id/complete", adminHandler.AdminCompleteOrder)

			admin.GET("/snapshots", adminHandler.ListSnapshots)
			admin.GET("/snapshots/:order_id", adminHandler.GetSnapshot)
			admin.POST("/snapshots/:order_id", adminHandler.CreateSnapshot)

			admin.GET("/service-fees", adminHandler.ListServiceFees)
			admin.GET("/service-fees/:id", adminHandler.GetServiceFee)
			admin.POST("/service-fees", adminHandler.CreateServiceFee)
			admin.PUT("/service-fees/:id", adminHandler.UpdateServiceFee)
			admin.DELETE("/service-fees/:id", adminHandler.DeleteServiceFee)
		}
	}

	r.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, i18n.T(i18n.ResolveLocale(ctx), "error.not_found"))
	})

	return r
}

// healthHandler 数据库与 Redis 探活，Redis 不可用时标记为 degraded
func healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	status := "ok"
	redisStatus := "disabled"
	if cache.Enabled() {
		redisStatus = "ok"
		if err := cache.Ping(ctx); err != nil {
			logger.Ctx(ctx).Warnw("health_redis_ping_failed", "error", err)
			status, redisStatus = "degraded", "unreachable"
		}
	}
	response.Success(c, gin.H{"status": status, "redis": redisStatus})
}
