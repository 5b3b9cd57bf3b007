package main

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/phrazzld/market-api/internal/platform/postgres"
)

// runMigrations applies a goose command against the embedded migrations.
func runMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	start := time.Now()
	logger.Info("running migrations", "command", command)

	if err := postgres.Migrate(ctx, db, command, logger); err != nil {
		return err
	}

	logger.Info("migrations finished", "command", command, "duration", time.Since(start))
	return nil
}
