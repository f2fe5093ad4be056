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

	"github.com/wmateusz/mealweek/internal/catalog"
	"github.com/wmateusz/mealweek/internal/category"
	"github.com/wmateusz/mealweek/internal/config"
	"github.com/wmateusz/mealweek/internal/database"
	"github.com/wmateusz/mealweek/internal/database/postgres"
	"github.com/wmateusz/mealweek/internal/plan"
	"github.com/wmateusz/mealweek/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.EnsureSchema(context.Background(), pool); err != nil {
		slog.Error("Failed to initialize schema", "error", err)
		os.Exit(1)
	}

	planSvc := plan.NewService(postgres.NewWeekPlanRepository(pool))
	catalogSvc := catalog.NewService(postgres.NewRecipeRepository(pool))

	srv := server.NewServer(cfg.Port, pool, planSvc, catalogSvc, category.Default())

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
