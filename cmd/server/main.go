// Package main implements the entry point for the market API server.
//
// Usage:
//
//	server                 serve HTTP (runs pending migrations first when
//	                       database.auto_migrate is true)
//	server -migrate up     apply migrations and exit
//	server -migrate down   roll back the latest migration and exit
//	server -migrate status print migration status and exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/market-api/internal/config"
	"github.com/phrazzld/market-api/internal/platform/logger"
	"github.com/phrazzld/market-api/internal/platform/postgres"
)

// options holds the parsed command-line flags.
type options struct {
	migrate string
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.migrate, "migrate", "",
		"run a migration command (up, down, status) and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch opts.migrate {
	case "", postgres.MigrateUp, postgres.MigrateDown, postgres.MigrateStatus:
		return opts, nil
	default:
		return options{}, fmt.Errorf("invalid -migrate value %q: want up, down or status", opts.migrate)
	}
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"auto_migrate", cfg.Database.AutoMigrate)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := setupDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	if opts.migrate != "" {
		return runMigrations(ctx, db, opts.migrate, log)
	}

	if cfg.Database.AutoMigrate {
		if err := runMigrations(ctx, db, postgres.MigrateUp, log); err != nil {
			return err
		}
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.serve(ctx)
}
