// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

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

	"github.com/tomtom215/fpminer/internal/api"
	"github.com/tomtom215/fpminer/internal/config"
	"github.com/tomtom215/fpminer/internal/database"
	"github.com/tomtom215/fpminer/internal/events"
	"github.com/tomtom215/fpminer/internal/logging"
	"github.com/tomtom215/fpminer/internal/mining"
	"github.com/tomtom215/fpminer/internal/store"
	"github.com/tomtom215/fpminer/internal/supervisor"
	"github.com/tomtom215/fpminer/internal/supervisor/services"
	"github.com/tomtom215/fpminer/internal/transactions"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	shutdownTimeout = 10 * time.Second
	auditCapacity   = 100
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("version", version).
		Str("input", cfg.Mining.InputPath).
		Int("min_support", cfg.Mining.MinSupport).
		Str("store_path", cfg.Store.Path).
		Bool("store_in_memory", cfg.Store.InMemory).
		Msg("Starting fpminer")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("fpminer stopped with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

// run wires the components, serves until SIGINT or SIGTERM and closes
// storage once the supervisor tree has stopped.
//
//nolint:gocyclo // sequential setup steps
func run(cfg *config.Config) error {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	runStore, err := store.Open(cfg.Store)
	if err != nil {
		return fmt.Errorf("open run store: %w", err)
	}
	defer func() {
		if err := runStore.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing run store")
		}
	}()

	bus, err := events.NewBus(events.DefaultConfig(), logging.NewWatermillLogger(logging.WithComponent("events")))
	if err != nil {
		return fmt.Errorf("create event bus: %w", err)
	}
	audit := events.NewAuditHandler(auditCapacity)
	bus.AddConsumer("run-audit", events.TopicRunCompleted, audit.Handle)

	engine := mining.NewEngine(cfg.Mining, cfg.Cache, runStore)
	engine.SetLoader(transactions.NewBreakerLoader(db, transactions.DefaultBreakerSettings()))
	engine.SetFrequencySource(db)
	engine.SetPublisher(bus)

	handler := api.NewHandler(engine)
	handler.SetAudit(audit)
	handler.SetVersion(version)
	handler.AddHealthCheck("store", runStore)
	handler.AddHealthCheck("duckdb", db)

	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security)))
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  shutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	if cfg.Mining.InputPath != "" {
		tree.AddDataService(services.NewMiningService(engine, services.MiningServiceConfig{
			RunOnStartup: cfg.Mining.RunOnStartup,
			Interval:     cfg.Mining.Interval,
			OutputPath:   cfg.Mining.OutputPath,
		}, logging.Logger()))
	} else {
		logging.Info().Msg("No mining input configured, batch mining disabled (MINING_INPUT_PATH)")
	}
	if cfg.Cache.CleanupInterval > 0 {
		tree.AddDataService(services.NewCacheJanitorService(engine, cfg.Cache.CleanupInterval, logging.Logger()))
	}
	tree.AddMessagingService(bus)
	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	if ctx.Err() == nil {
		return serveErr
	}
	return nil
}
