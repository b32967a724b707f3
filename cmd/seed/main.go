// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command seed rebuilds the Newsdesk schema and loads the development dataset.
//
// It drops every table through the DOWN migrations, re-applies the UP
// migrations and bulk-loads the JSON fixtures from SEED_PATH. All existing
// data is lost.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/taibuivan/newsdesk/internal/platform/config"
	"github.com/taibuivan/newsdesk/internal/platform/constants"
	"github.com/taibuivan/newsdesk/internal/platform/migration"
	pgstore "github.com/taibuivan/newsdesk/internal/platform/postgres"
	"github.com/taibuivan/newsdesk/internal/platform/seed"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", constants.AppName),
		slog.String("command", "seed"),
	)

	cfg, err := config.Load()
	must(log, err, "load configuration")

	// Validate the fixtures before anything destructive happens.
	dataset, err := seed.Load(cfg.SeedPath)
	must(log, err, "load fixtures")

	must(log, migration.Reset(cfg.DatabaseURL, cfg.MigrationPath, log), "reset schema")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	if err := seed.Apply(ctx, pool, dataset, log); err != nil {
		log.Error("seed failed", slog.Any("error", err))
		pool.Close()
		os.Exit(1)
	}

	log.Info("seed complete",
		slog.Int("topics", len(dataset.Topics)),
		slog.Int("users", len(dataset.Users)),
		slog.Int("articles", len(dataset.Articles)),
		slog.Int("comments", len(dataset.Comments)),
	)
}

func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure", slog.String("context", context), slog.Any("error", err))
		os.Exit(1)
	}
}
