// Package main is the entry point for the application.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"xpressairtime/internal/config"
	"xpressairtime/internal/handlers"
	"xpressairtime/internal/middleware"
	"xpressairtime/internal/models"
	"xpressairtime/internal/repositories"
	"xpressairtime/internal/repositories/cache"
	"xpressairtime/internal/routes"
	"xpressairtime/internal/services/airtime"
	"xpressairtime/internal/services/user"
	"xpressairtime/internal/services/wallet"
	"xpressairtime/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

const version = "1.0.0"

// main initializes and starts the HTTP server.
// It performs the following setup:
// - Loads configuration
// - Initializes database and redis connections
// - Sets up dependency injection
// - Configures routes
// - Serves until SIGINT/SIGTERM, then shuts down gracefully
func main() {
	config.LoadEnv()
	models.UseNumericAmounts()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := config.NewLogger(cfg.LogLevel, config.IsProduction())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := repositories.Open(cfg.DB, zlog)
	if err != nil {
		zlog.Fatal("database initialization failed", zap.Error(err))
	}

	redisClient := cache.NewRedisClient(&cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	cacheService := cache.NewCacheService(redisClient, cfg.Redis.TTL)
	if err := cacheService.HealthCheck(context.Background()); err != nil {
		zlog.Warn("redis unavailable, user lookups will hit the database", zap.Error(err))
	}

	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				zlog.Warn("failed to close database connection", zap.Error(err))
			}
		}
		if err := cacheService.Close(); err != nil {
			zlog.Warn("failed to close redis connection", zap.Error(err))
		}
	}()

	tokens, err := utils.NewTokenProvider(cfg.JWT.Secret, cfg.JWT.Expiration)
	if err != nil {
		zlog.Fatal("token provider initialization failed", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Initialize repositories and services
	userRepo := repositories.NewUserRepository(db, cacheService, zlog)
	userService := user.NewService(userRepo, tokens, zlog)
	walletService := wallet.NewService(userRepo, wallet.NewPrometheusMetrics(reg), zlog)
	airtimeService := airtime.NewService(
		cfg.Airtime,
		airtime.NewClient(cfg.Airtime.Timeout),
		airtime.NewPrometheusMetrics(reg),
		zlog,
	)

	app := fiber.New(fiber.Config{
		AppName:      "xpressairtime " + version,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Airtime.Timeout + 5*time.Second,
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowHeaders: "Authorization, Cache-Control, Content-Type, X-Requested-With",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/user/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	routes.SetupRoutes(app, routes.Dependencies{
		Auth:    middleware.NewAuthMiddleware(tokens, userRepo, zlog),
		Users:   handlers.NewUserHandler(userService, zlog),
		Wallets: handlers.NewWalletHandler(walletService, zlog),
		Airtime: handlers.NewAirtimeHandler(airtimeService, zlog),
		Health: handlers.NewHealthHandler(version, map[string]handlers.HealthCheckFunc{
			"database": handlers.DatabaseCheck(db),
			"redis":    cacheService.HealthCheck,
		}),
		Gatherer: reg,
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			zlog.Error("server stopped", zap.Error(err))
		}
	}()
	zlog.Info("server started", zap.String("port", cfg.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
}
