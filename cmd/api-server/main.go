package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"novelhub/database"
	"novelhub/internal/config"
	"novelhub/internal/microservices/http-api/repository"
	"novelhub/internal/microservices/http-api/router"
	"novelhub/internal/microservices/http-api/service"
	"novelhub/internal/shared"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := shared.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	db, err := database.OpenGorm(cfg, logger)
	if err != nil {
		logger.Error("database_unavailable", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	// the API works without Redis, rankings are then read from the database
	rdb := connectCache(cfg, logger)
	if rdb != nil {
		defer rdb.Close()
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router.NewRouter(buildDeps(cfg, db, rdb, logger)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting_http_server", "addr", srv.Addr, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		logger.Info("received_shutdown_signal")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown_failed", "error", err)
		}
		logger.Info("server_stopped_gracefully")
	case err := <-errChan:
		logger.Error("server_error", "error", err.Error())
		database.Close(db)
		os.Exit(1)
	}
}

func connectCache(cfg *config.Config, logger *slog.Logger) *redis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rdb, err := database.ConnectRedis(ctx, cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		logger.Warn("redis_unavailable_cache_disabled", "error", err)
		return nil
	}
	return rdb
}

func buildDeps(cfg *config.Config, db *gorm.DB, rdb *redis.Client, logger *slog.Logger) router.Deps {
	users := repository.NewUserRepository(db)
	admins := repository.NewAdminRepository(db)
	novels := repository.NewNovelRepository(db)
	chapters := repository.NewChapterRepository(db)
	shelf := repository.NewBookshelfRepository(db)
	rewards := repository.NewRewardRepository(db)
	cache := repository.NewRedisNovelCache(rdb, cfg.CacheTTL, logger)

	return router.Deps{
		Config:    cfg,
		Logger:    logger,
		Auth:      service.NewAuthService(users, admins, cfg),
		Catalog:   service.NewCatalogService(novels, chapters, cache),
		Bookshelf: service.NewBookshelfService(shelf, rewards, cache),
		Profile:   service.NewProfileService(users),
		Admin:     service.NewAdminService(users, novels, cache),
		Ping: func(ctx context.Context) error {
			return database.Ping(ctx, db)
		},
	}
}
