package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"tokengate/internal/config"
	"tokengate/internal/handler"
	"tokengate/internal/repository"
	"tokengate/internal/service"
)

func main() {
	// 1. Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize logger
	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	// 3. Initialize token store (Redis or in-memory)
	var tokenStore repository.TokenStore
	switch cfg.Store.Backend {
	case config.BackendRedis:
		redisClient := config.NewRedisClient(cfg.Database.Redis)
		defer redisClient.Close()
		tokenStore = repository.NewRedisTokenStore(redisClient)
		logger.Info("using Redis token store",
			zap.String("addr", cfg.Database.Redis.Addr()),
			zap.Int("db", cfg.Database.Redis.DB),
		)
	case config.BackendMemory:
		tokenStore = repository.NewMemoryTokenStore(cfg.Store.SeedMap())
		logger.Info("using in-memory token store", zap.Int("records", len(cfg.Store.Seed)))
	default:
		logger.Fatal("unknown store backend", zap.String("backend", cfg.Store.Backend))
	}

	// 4. Initialize service and handlers
	tokenService := service.NewTokenService(tokenStore, cfg.Store.LookupTimeout)

	// An unreachable store at boot only degrades lookups; /readyz reports it.
	if err := tokenService.Ready(context.Background()); err != nil {
		logger.Warn("token store not reachable at startup", zap.Error(err))
	}

	tokenHandler := handler.NewTokenHandler(tokenService, logger)
	healthHandler := handler.NewHealthHandler(tokenService, logger)

	// 5. Setup router
	router := handler.SetupRouter(cfg, logger, tokenHandler, healthHandler)

	// 6. Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 7. Start server with graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// 8. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return
	}
	logger.Info("server exited gracefully")
}
