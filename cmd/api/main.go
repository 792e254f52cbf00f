// Command api is the Roster Balance API server.
//
// Usage:
//
//	rosterbalance-api
//	ROSTER_FILE=roster.yaml API_PORT=8080 rosterbalance-api

// @title Roster Balance API
// @version 1.0.0
// @description Splits a player roster into an even number of teams with one goalie each and near-equal average rankings.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name Roster Balance
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/rosterbalance/internal/api"
	"github.com/albapepper/rosterbalance/internal/api/handler"
	"github.com/albapepper/rosterbalance/internal/cache"
	"github.com/albapepper/rosterbalance/internal/config"
	"github.com/albapepper/rosterbalance/internal/db"
	"github.com/albapepper/rosterbalance/internal/listener"
	"github.com/albapepper/rosterbalance/internal/metrics"
	"github.com/albapepper/rosterbalance/internal/roster"
	"github.com/albapepper/rosterbalance/internal/roster/postgres"

	_ "github.com/albapepper/rosterbalance/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Debug {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	appCache := cache.New(cfg.CacheEnabled, time.Minute, ctx.Done())
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	deps := handler.Deps{Cache: appCache, Logger: logger}

	// Roster source: a file when ROSTER_FILE is set, Postgres otherwise
	if cfg.UseDatabase() {
		if err := cfg.RequireDatabase(); err != nil {
			logger.Error("Invalid configuration", "error", err)
			os.Exit(1)
		}
		logger.Info("Connecting to database...")
		pool, err := db.New(ctx, cfg)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		logger.Info("Database connected",
			"min_conns", cfg.DBPoolMinConns,
			"max_conns", cfg.DBPoolMaxConns)
		deps.Pool = pool
		deps.Source = postgres.New(pool.Pool, logger)

		// Drop cached balances when the roster is re-imported
		go listener.Start(ctx, cfg.DatabaseURL, appCache, logger)
	} else {
		mem, err := roster.LoadFile(cfg.RosterFile)
		if err != nil {
			logger.Error("Failed to load roster", "file", cfg.RosterFile, "error", err)
			os.Exit(1)
		}
		logger.Info("Roster loaded", "file", cfg.RosterFile, "players", len(mem.Players()))
		deps.Source = mem
	}

	router := api.NewRouter(deps, metrics.NewRecorder(), cfg)

	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting Roster Balance API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
