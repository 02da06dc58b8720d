package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"harmony-match/internal/service"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	zodiacH *ZodiacHandler,
	healthH *HealthHandler,
	limiter service.RateLimiter,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: request id, logging, recovery y JSON content-type.
	r.Use(requestIDMiddleware(), zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/health", healthH.Health)

	api := r.Group("/api")
	api.GET("/health", healthH.Health)

	zodiac := api.Group("/zodiac")
	zodiac.GET("", zodiacH.GetData)
	zodiac.GET("/profile/:year", rateLimitMiddleware(logger, limiter, "profile"), zodiacH.GetProfile)
	zodiac.GET("/animals/:animal/years", rateLimitMiddleware(logger, limiter, "years"), zodiacH.GetYearsForAnimal)

	api.POST("/compatibility", rateLimitMiddleware(logger, limiter, "compatibility"), zodiacH.PostCompatibility)

	return r
}

// requestIDMiddleware propaga X-Request-ID o genera uno nuevo.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(requestIDKey)),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}

// rateLimitMiddleware corta con 429 cuando el cliente agota la cuota de la ruta.
// Un limiter nil deja pasar todo.
func rateLimitMiddleware(logger *zap.Logger, limiter service.RateLimiter, route string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		d := limiter.Allow(c.Request.Context(), route, c.ClientIP())
		c.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		if !d.Allowed {
			retry := retryAfterSeconds(d.RetryAfter)
			c.Header("Retry-After", strconv.Itoa(retry))
			logger.Warn("rate limited",
				zap.String("route", route),
				zap.String("client_ip", c.ClientIP()),
				zap.Int("retry_after_s", retry),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":               "too many requests",
				"retry_after_seconds": retry,
			})
			return
		}
		c.Next()
	}
}

// retryAfterSeconds redondea hacia arriba; nunca menos de 1.
func retryAfterSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}
