package main

import (
	ads "ad-ledger/internal/adService"
	"ad-ledger/internal/config"
	"ad-ledger/internal/events"
	"ad-ledger/internal/repository"
	"ad-ledger/internal/server"
	"ad-ledger/internal/snapshot"
	"ad-ledger/utils"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := utils.SetLevel(cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.Server.Mode)

	utils.Info("configuration loaded", map[string]any{"config": cfg.GetConfigString()})

	var (
		store     repository.AdStore
		scheduler *snapshot.CronScheduler
		rdb       *redis.Client
	)

	switch cfg.Store.Backend {
	case config.BackendRedis:
		rdb, err = connectRedis(cfg.Redis)
		if err != nil {
			utils.Fatal("failed to connect to redis", map[string]any{"address": cfg.Redis.Address, "error": err.Error()})
		}
		defer rdb.Close()
		store = repository.NewRedisRepo(rdb, cfg.Redis.KeyPrefix)
	default:
		mem := repository.NewMemoryRepo()
		scheduler, err = restoreMemoryStore(mem, cfg.Store)
		if err != nil {
			utils.Fatal("failed to restore memory store", map[string]any{"path": cfg.Store.SnapshotPath, "error": err.Error()})
		}
		store = mem
	}

	opts := []ads.Option{}
	if cfg.Events.Enabled {
		opts = append(opts, ads.WithEventPublisher(newPublisher(cfg, rdb)))
	}
	adSvc := ads.NewAdService(store, opts...)

	router := server.SetupRouter(adSvc, cfg.Store.Backend)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	go func() {
		utils.Info("starting ad ledger server", map[string]any{"address": srv.Addr, "backend": cfg.Store.Backend})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("server failed to start", map[string]any{"error": err.Error()})
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Info("shutting down ad ledger server", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.Error("server forced to shutdown", map[string]any{"error": err.Error()})
	}

	// final snapshot once no more requests are in flight, with its own deadline
	if scheduler != nil {
		saveCtx, saveCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer saveCancel()
		if err := scheduler.Stop(saveCtx); err != nil {
			utils.Error("final snapshot failed", map[string]any{"error": err.Error()})
		}
	}

	utils.Info("ad ledger server stopped", nil)
}

// loadConfig reads CONFIG_FILE when set, otherwise searches the default locations
func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func connectRedis(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}
	return rdb, nil
}

// restoreMemoryStore loads the last snapshot and starts periodic saves.
// Returns a nil scheduler when no snapshot path is configured.
func restoreMemoryStore(mem *repository.MemoryRepo, cfg config.StoreConfig) (*snapshot.CronScheduler, error) {
	if cfg.SnapshotPath == "" {
		return nil, nil
	}

	n, err := mem.LoadSnapshot(cfg.SnapshotPath)
	if err != nil {
		return nil, err
	}
	utils.Info("snapshot restored", map[string]any{"path": cfg.SnapshotPath, "ads": n})

	scheduler, err := snapshot.NewCronScheduler(mem, cfg.SnapshotPath, cfg.SnapshotSchedule)
	if err != nil {
		return nil, err
	}
	if err := scheduler.Start(); err != nil {
		return nil, err
	}
	return scheduler, nil
}

// newPublisher publishes to redis pub/sub when a client is available, otherwise to the log
func newPublisher(cfg *config.Config, rdb *redis.Client) ads.EventPublisher {
	if rdb != nil {
		return events.NewRedisPublisher(rdb, cfg.Events.Channel)
	}
	utils.Warn("events enabled without a redis backend, logging events instead", nil)
	return events.LogPublisher{}
}
