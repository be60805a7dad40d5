// Package api assembles the Gin engine: middleware stack, routes, swagger.
package api

import (
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/d60-Lab/agent-match/config"
	"github.com/d60-Lab/agent-match/internal/api/handler"
	"github.com/d60-Lab/agent-match/pkg/logger"
	"github.com/d60-Lab/agent-match/pkg/response"
)

// requestLogger logs one line per request through the shared zap logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// recovery converts panics into 500s and forwards them to sentry when it is
// configured.
func recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		sentry.CurrentHub().Recover(recovered)
		logger.Error("panic recovered", zap.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	})
}

// askRateLimit throttles the LLM-backed endpoint; everything else is cheap
// in-memory work and stays unthrottled.
func askRateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(cfg.AskPerSecond), cfg.AskBurst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			response.TooManyRequests(c, "too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}

// NewRouter builds the engine with the full middleware stack and routes.
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(requestLogger(), recovery(), gzip.Gzip(gzip.DefaultCompression))
	if cfg.Telemetry.Enabled {
		r.Use(otelgin.Middleware("agent-match"))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/categories", h.Categories)
		v1.GET("/categories/:id/bootstrap", h.Bootstrap)
		v1.GET("/recommendations", h.Recommend)
		v1.POST("/listings", h.PublishListing)

		v1.POST("/actions", h.RequestAction)
		v1.GET("/actions", h.ListActions)
		v1.POST("/actions/:id/transition", h.TransitionAction)

		agent := v1.Group("/agent")
		agent.POST("/ask", askRateLimit(cfg.RateLimit), h.Ask)
		agent.POST("/route", h.Route)

		admin := v1.Group("/admin")
		admin.POST("/seed", h.SeedBoard)
		admin.GET("/board/counts", h.BoardCounts)
	}
	return r
}
