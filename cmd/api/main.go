// ABOUTME: Main entry point for the TeleScout API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"telescout-api/api"
	"telescout-api/api/handlers"
	"telescout-api/api/middleware"
	"telescout-api/infrastructure/ratelimit/memory"
	"telescout-api/infrastructure/ratelimit/redis"
	"telescout-api/internal/bootstrap"
	"telescout-api/pkg/config"
	"telescout-api/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	app, err := bootstrap.New(context.Background(), cfg, nil)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer app.Close()

	logger := app.Logger
	logger.Info("Starting TeleScout API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"locale":     app.Catalog.Code,
		"model":      app.Generator.Model(),
		"rate_limit": cfg.RateLimit.Limit,
	})

	flags := featureflags.NewEnvManager("FEATURE_", map[featureflags.FeatureFlag]bool{
		featureflags.HTMLFrontend:     true,
		featureflags.RateLimitEnabled: cfg.RateLimit.Enabled(),
	})

	// Create rate limiter
	var limiter middleware.Limiter
	if flags.IsEnabled(context.Background(), featureflags.RateLimitEnabled) && cfg.RateLimit.Enabled() {
		limiter, err = newLimiter(cfg.RateLimit)
		if err != nil {
			logger.Error("Failed to create rate limiter, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			limiter, err = memory.NewLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window())
			if err != nil {
				log.Fatalf("Failed to create rate limiter: %v", err)
			}
		}
		if closer, ok := limiter.(io.Closer); ok {
			defer closer.Close()
		}
		logger.Info("Rate limiting enabled", map[string]interface{}{
			"backend": cfg.RateLimit.Backend,
			"limit":   limiter.Limit(),
			"window":  limiter.Window().String(),
		})
	}

	// Create API with middleware
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:  logger,
		Limiter: limiter,
		Flags:   flags,
	})

	// Create and register handlers
	suffix := app.Catalog.Page.JoinSearchSuffix

	handlers.NewHealthHandler(app.Catalog.Code, app.Generator.Model()).RegisterRoutes(humaAPI)
	handlers.NewSearchHandler(app.Controller, suffix).RegisterRoutes(humaAPI)

	if flags.IsEnabled(context.Background(), featureflags.DirectSearchAPI) {
		handlers.NewFindHandler(app.Search, suffix).RegisterRoutes(humaAPI)
	}

	if flags.IsEnabled(context.Background(), featureflags.HTMLFrontend) {
		handlers.NewPageHandler(app.Controller, app.Catalog, logger).RegisterRoutes(router)
	}

	// Searches run as long as the AI timeout allows, so the write timeout follows it
	errorLog := logger.Writer()
	defer errorLog.Close()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AI.Timeout() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     log.New(errorLog, "", 0),
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

// newLimiter builds the configured rate limiter backend
func newLimiter(cfg config.RateLimitConfig) (middleware.Limiter, error) {
	switch cfg.Backend {
	case "redis":
		return redis.NewLimiter(cfg.Redis, cfg.Limit, cfg.Window())
	default:
		return memory.NewLimiter(cfg.Limit, cfg.Window())
	}
}

func init() {
	// Print banner
	fmt.Println(`
  _____    _      ____                  _
 |_   _|__| | ___/ ___|  ___ ___  _   _| |_
   | |/ _ \ |/ _ \___ \ / __/ _ \| | | | __|
   | |  __/ |  __/___) | (_| (_) | |_| | |_
   |_|\___|_|\___|____/ \___\___/ \__,_|\__|
	`)
}
