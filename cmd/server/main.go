package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taxi_service/internal/config"
	"taxi_service/internal/logger"
	"taxi_service/internal/middleware"
	"taxi_service/internal/routes"
	"taxi_service/internal/storage"
	"taxi_service/internal/storage/memory"
	"taxi_service/internal/storage/postgres"
)

func main() {
	cfg := config.Load()

	// Initialize structured logging to file
	out := logger.Setup(logger.Options{
		File:    cfg.LogFile,
		Level:   cfg.LogLevel,
		Console: cfg.GinMode != gin.ReleaseMode,
	})
	gin.SetMode(cfg.GinMode)

	store, err := openStore(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open storage")
	}
	defer store.Close()

	ctx := context.Background()
	created, err := storage.EnsureDriver(ctx, store, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		logrus.WithError(err).Fatal("failed to seed admin driver")
	}
	if created {
		logrus.WithField("username", cfg.AdminUsername).Info("admin driver created")
	}

	r, err := routes.SetupRouter(routes.Options{
		Store:        store,
		Sessions:     middleware.NewSessions(cfg.JWTSecret, cfg.SessionTTL, cfg.CookieSecure),
		LoginLimiter: middleware.NewRateLimiter(cfg.LoginRatePerMinute, cfg.LoginRateBurst),
		AccessLog:    out,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to set up router")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", cfg.HTTPPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("🚀 %s running at %s (storage=%s)", cfg.ServiceName, srv.Addr, cfg.Storage)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}

func openStore(cfg config.Config) (storage.IStorage, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		logrus.Warn("using in-memory storage, data is lost on restart")
		return memory.New(), nil
	case config.StoragePostgres:
		db, err := config.OpenDB(cfg, logger.GormLogger())
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(db); err != nil {
			return nil, err
		}
		return postgres.New(db), nil
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}
