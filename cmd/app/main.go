package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/concretemix/smartmix/internal/config"
	"github.com/concretemix/smartmix/internal/cost"
	"github.com/concretemix/smartmix/internal/database"
	"github.com/concretemix/smartmix/internal/database/postgres"
	"github.com/concretemix/smartmix/internal/erp"
	"github.com/concretemix/smartmix/internal/handler"
	"github.com/concretemix/smartmix/internal/material"
	"github.com/concretemix/smartmix/internal/mix"
	"github.com/concretemix/smartmix/internal/server"
	"github.com/concretemix/smartmix/internal/task"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	connString := cfg.GetDBConnString()
	if err := database.RunMigrations(connString); err != nil {
		slog.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(connString, cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Repositories
	materialRepo := postgres.NewMaterialRepo(dbPool)
	mixRepo := postgres.NewMixRepo(dbPool)
	taskRepo := postgres.NewTaskRepo(dbPool)
	costRepo := postgres.NewCostRepo(dbPool)
	syncLogRepo := postgres.NewSyncLogRepo(dbPool)

	// Services
	materialService := material.NewService(materialRepo, cfg.PriceCacheSize, cfg.PriceCacheTTL)
	mixService := mix.NewService(mixRepo, materialRepo)
	costService := cost.NewService(costRepo, mixRepo)
	taskService := task.NewService(taskRepo, mixRepo, costService)
	erpService := erp.NewService(materialRepo, taskRepo, syncLogRepo, materialService)

	srv := server.NewServer(
		cfg.Port,
		cfg.APIKey,
		cfg.ErpWebhookToken,
		cfg.TrustedProxies,
		dbPool,
		materialService,
		mixService,
		taskService,
		costService,
		erpService,
	)

	// Run until interrupted, then drain in-flight requests.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			slog.Error("Server forced to shut down", "error", err)
		}
	}

	slog.Info("Server stopped")
}
