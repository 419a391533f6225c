package handler

import (
	"pix-notify/internal/adapter/http/middleware"
	redisStore "pix-notify/internal/adapter/storage/redis"
	"pix-notify/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Pipeline       ports.IngestionPipeline
	Registry       ports.DeviceRegistry
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	SharedSecret   string // empty = device intake runs open
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies the configured dedup backend)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// --- Gateway webhook (the gateway authenticates via redelivery, not headers) ---
	webhookHandler := NewWebhookHandler(deps.Pipeline)
	r.POST("/webhook", rl("webhook"), webhookHandler.Handle)

	// --- Device intake (shared-secret authenticated) ---
	deviceHandler := NewDeviceHandler(deps.Registry)
	secretAuth := middleware.SharedSecretAuth(deps.SharedSecret)
	intake := r.Group("/devices", secretAuth)
	{
		intake.POST("/heartbeat", rl("device_intake"), deviceHandler.Heartbeat)
		intake.POST("/events", rl("device_intake"), deviceHandler.Event)
		intake.POST("/logs", rl("device_intake"), deviceHandler.Log)
	}

	// --- Status read side (public) ---
	r.GET("/devices", rl("status"), deviceHandler.List)
	r.GET("/devices/:id", rl("status"), deviceHandler.Get)

	return r
}
