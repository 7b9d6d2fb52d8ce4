package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/DexBinder_Go/internal/binder"
	"github.com/osse101/DexBinder_Go/internal/config"
	"github.com/osse101/DexBinder_Go/internal/database"
	"github.com/osse101/DexBinder_Go/internal/database/postgres"
	"github.com/osse101/DexBinder_Go/internal/dex"
	"github.com/osse101/DexBinder_Go/internal/logger"
	"github.com/osse101/DexBinder_Go/internal/server"
	"github.com/osse101/DexBinder_Go/internal/session"
)

// @title DexBinder API
// @version 1.0
// @description Personal card binder tracker: one slot per national dex number, with a current card and an append-only upgrade history.
// @BasePath /api/v1

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	logger.Info("Starting dexbinder", "version", cfg.Version, "environment", cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLife)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	binderService := binder.NewService(postgres.NewSlotRepository(pool))
	dexService := dex.NewService(postgres.NewCatalogRepository(pool))
	sessions := session.NewStore(cfg.SessionCacheSize, cfg.SessionTTL)

	srv := server.NewServer(server.Config{
		Port:              cfg.Port,
		SessionCookieName: cfg.SessionCookieName,
		AuthDisabled:      cfg.AuthDisabled,
		TrustedProxies:    cfg.TrustedProxies,
	}, pool, binderService, dexService, sessions)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errCh:
		logger.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped")
}
