// cmd/signup-server/main.go
package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"activity-signup/internal/common/config"
	"activity-signup/internal/common/database"
	"activity-signup/internal/common/logger"
	"activity-signup/internal/common/observability"
	"activity-signup/internal/registry"
	"activity-signup/internal/server"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		zapLog := logger.New("info", "console")
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting activity signup server...")

	obs := observability.New("signup-server")
	defer obs.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Seed the registry ---
	reg, err := registry.FromSeed(log)
	if err != nil {
		zapLog.Fatal("seed catalog load failed", zap.Error(err))
	}
	zapLog.Info("Registry seeded", zap.Int("activities", reg.Len()))

	// --- Optional Redis list cache ---
	var cache *registry.ListCache
	if cfg.Cache.Enabled() {
		var redisClient *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = database.NewRedis(cfg.Cache)
			if err != nil {
				return err
			}
			return redisClient.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Warn("redis unavailable, list cache disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			cache = registry.NewListCache(redisClient, config.GetDuration(cfg.Cache.TTL), log)
			zapLog.Info("List cache enabled", zap.String("address", cfg.Cache.Address))
		}
	}

	// --- HTTP server ---
	srv, err := server.New(server.Config{
		Address:           cfg.Server.Address,
		ReadHeaderTimeout: config.GetDuration(cfg.Server.ReadHeaderTimeout),
		ShutdownTimeout:   config.GetDuration(cfg.Server.ShutdownTimeout),
	}, reg, cache, obs, log)
	if err != nil {
		zapLog.Fatal("server setup failed", zap.Error(err))
	}

	if err := srv.ListenAndServe(ctx); err != nil {
		zapLog.Fatal("server exited", zap.Error(err))
	}

	zapLog.Info("Shutdown complete")
}
