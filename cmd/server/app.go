package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/market-api/internal/api"
	"github.com/phrazzld/market-api/internal/config"
	"github.com/phrazzld/market-api/internal/platform/postgres"
	"github.com/phrazzld/market-api/internal/service"
	"github.com/phrazzld/market-api/internal/service/auth"
)

// application holds the wired dependencies of a running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	identity service.IdentityService
	items    service.ItemService
	tokens   auth.JWTService
}

// newApplication builds stores, credential helpers and services on top of db.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	tokens, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	logger.Info("password hasher initialized", "bcrypt_cost", hasher.Cost())

	userStore := postgres.NewPostgresUserStore(db, logger)
	itemStore := postgres.NewPostgresItemStore(db, logger)

	identity, err := service.NewIdentityService(userStore, hasher, tokens, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity service: %w", err)
	}

	items, err := service.NewItemService(itemStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize item service: %w", err)
	}

	return &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		identity: identity,
		items:    items,
		tokens:   tokens,
	}, nil
}

// router returns the HTTP handler for all routes.
func (app *application) router() http.Handler {
	return api.NewRouter(api.RouterDeps{
		Identity: app.identity,
		Items:    app.items,
		Tokens:   app.tokens,
		Logger:   app.logger,
	})
}
