package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"harmony-match/internal/config"
	"harmony-match/internal/domain"
	apihttp "harmony-match/internal/http"
	"harmony-match/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	if cfg.IsDevelopment() {
		logger, _ = zap.NewDevelopment()
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	defer logger.Sync()

	engine, err := service.NewCompatibilityEngine(domain.DefaultTables())
	if err != nil {
		logger.Fatal("zodiac tables", zap.Error(err))
	}
	validator := service.NewYearValidator(cfg.MinBirthYear, time.Now)

	limiter := service.NewMemoryRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMax)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory rate limiter", zap.Error(err))
		} else {
			limiter = service.NewRedisRateLimiter(redisClient, logger, cfg.RateLimitWindow, cfg.RateLimitMax)
		}
		cancel()
	}

	zodiacHandler := apihttp.NewZodiacHandler(logger, engine, validator)
	healthHandler := apihttp.NewHealthHandler(cfg.ServiceName, time.Now)
	router := apihttp.NewRouter(logger, zodiacHandler, healthHandler, limiter)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.String("service", cfg.ServiceName),
		zap.Int("min_birth_year", validator.MinYear()),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
