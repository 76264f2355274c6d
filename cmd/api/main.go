package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"qr-menu/config"
	_ "qr-menu/docs" // Swagger docs
	"qr-menu/internal/httpserver"
	"qr-menu/internal/middleware"
	"qr-menu/pkg/log"
)

// @title       QR Menu API
// @description Restaurant QR menu: public filtered menu and admin catalog management.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey AdminKey
// @in          header
// @name        X-Admin-Key
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting QR menu API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	if cfg.Admin.APIKey == "" {
		logger.Warn(ctx, "admin.api_key is empty, admin endpoints will reject every request")
	}

	// 3. Storage
	store, err := openStorage(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open storage: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		CatalogRepo:     store.repo,
		DB:              store.pinger(),
		Middleware: middleware.Config{
			AdminAPIKey:     cfg.Admin.APIKey,
			RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
			RateLimitBurst:  cfg.RateLimit.Burst,
		},
		MenuCacheSize: cfg.Menu.CacheSize,
		MenuCacheTTL:  cfg.Menu.CacheTTL,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}
