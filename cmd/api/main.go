// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Newsdesk HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Run database migrations (idempotent).
//  5. Wire repositories, services and HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/taibuivan/newsdesk/internal/api"
	"github.com/taibuivan/newsdesk/internal/core/article"
	"github.com/taibuivan/newsdesk/internal/core/comment"
	"github.com/taibuivan/newsdesk/internal/core/topic"
	"github.com/taibuivan/newsdesk/internal/core/user"
	"github.com/taibuivan/newsdesk/internal/platform/config"
	"github.com/taibuivan/newsdesk/internal/platform/constants"
	"github.com/taibuivan/newsdesk/internal/platform/metrics"
	"github.com/taibuivan/newsdesk/internal/platform/middleware"
	"github.com/taibuivan/newsdesk/internal/platform/migration"
	pgstore "github.com/taibuivan/newsdesk/internal/platform/postgres"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	log.Info("[Newsdesk] service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup with a deadline so misconfiguration fails fast.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	if cfg.RunMigrations {
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
	}

	// ── 5. Metrics ────────────────────────────────────────────────────────
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	topicRepository := topic.NewPostgresRepository(pool)
	userRepository := user.NewPostgresRepository(pool)
	articleRepository := article.NewPostgresRepository(pool)
	commentRepository := comment.NewPostgresRepository(pool)

	topicService := topic.NewService(topicRepository, collector, log)
	userService := user.NewService(userRepository)
	articleService := article.NewService(articleRepository, topicRepository, userRepository, collector, log)
	commentService := comment.NewService(commentRepository, articleService, userRepository, collector, log)

	liveness, readiness := api.NewHealthHandlers([]api.DependencyCheck{
		{Name: "postgres", Probe: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }},
	}, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Topic:     topic.NewHandler(topicService),
		Article:   article.NewHandler(articleService),
		Comment:   comment.NewHandler(commentService),
		User:      user.NewHandler(userService),
	}

	options := api.Options{Limiter: middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)}
	if cfg.MetricsEnabled {
		handlers.Metrics = metrics.Handler(registry)
		options.Observer = collector
	}

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()
	go options.Limiter.Run(appCtx)

	server := api.NewServer(cfg, log, options, handlers)

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// newLogger builds the process-wide JSON logger and installs it as the default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
