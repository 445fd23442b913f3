package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver

	"github.com/taskora/taskora-api/internal/config"
	"github.com/taskora/taskora-api/internal/platform/postgres"
	"github.com/taskora/taskora-api/internal/redact"
)

// setupAppDatabase opens the connection pool and verifies connectivity.
func setupAppDatabase(ctx context.Context, cfg *config.Config, appLogger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %s", redact.Error(err))
	}

	appLogger.Info("Database connection established",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns)

	return db, nil
}

// runAppMigrations brings the schema up to date. Safe to call on every
// start; goose skips migrations that are already applied.
func runAppMigrations(ctx context.Context, db *sql.DB, appLogger *slog.Logger) error {
	appLogger.Info("Applying database migrations")
	if err := postgres.RunMigrations(ctx, db); err != nil {
		return err
	}
	appLogger.Info("Database schema is up to date")
	return nil
}
