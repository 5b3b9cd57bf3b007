package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/market-api/internal/domain"
	"github.com/phrazzld/market-api/internal/store"
)

const itemColumns = `id, name, price, description, status, owner_id, created_at, updated_at`

// PostgresItemStore implements the store.ItemStore interface
// using a PostgreSQL database as the storage backend.
type PostgresItemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresItemStore creates a new PostgreSQL implementation of the ItemStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresItemStore(db store.DBTX, logger *slog.Logger) *PostgresItemStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresItemStore{
		db:     db,
		logger: logger.With(slog.String("component", "item_store")),
	}
}

// Ensure PostgresItemStore implements store.ItemStore interface
var _ store.ItemStore = (*PostgresItemStore)(nil)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var (
		item        domain.Item
		description sql.NullString
		status      string
	)
	if err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Price,
		&description,
		&status,
		&item.OwnerID,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if description.Valid {
		item.Description = &description.String
	}
	item.Status = domain.ItemStatus(status)
	return &item, nil
}

// List implements store.ItemStore.List
func (s *PostgresItemStore) List(ctx context.Context) ([]*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.WarnContext(ctx, "failed to close item rows", slog.Any("error", cerr))
		}
	}()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", MapError(err))
	}

	return items, nil
}

// GetByID implements store.ItemStore.GetByID
func (s *PostgresItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	item, err := scanItem(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, s.mapItemError(err, "get")
	}
	return item, nil
}

// Create implements store.ItemStore.Create
func (s *PostgresItemStore) Create(ctx context.Context, item *domain.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO items (id, name, price, description, status, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	var description sql.NullString
	if item.Description != nil {
		description = sql.NullString{String: *item.Description, Valid: true}
	}

	err := s.db.QueryRowContext(ctx, query,
		item.ID, item.Name, item.Price, description, string(item.Status), item.OwnerID,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", MapError(err))
	}

	return nil
}

// MarkSoldOut implements store.ItemStore.MarkSoldOut
func (s *PostgresItemStore) MarkSoldOut(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	query := `
		UPDATE items
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + itemColumns

	item, err := scanItem(s.db.QueryRowContext(ctx, query, id, string(domain.ItemStatusSoldOut)))
	if err != nil {
		return nil, s.mapItemError(err, "update")
	}
	return item, nil
}

// DeleteOwned implements store.ItemStore.DeleteOwned
func (s *PostgresItemStore) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `DELETE FROM items WHERE id = $1 AND owner_id = $2`

	result, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrItemNotFound)
}

func (s *PostgresItemStore) mapItemError(err error, operation string) error {
	mapped := MapError(err)
	if errors.Is(mapped, store.ErrNotFound) {
		return store.ErrItemNotFound
	}
	return store.NewStoreError("item", operation, "query failed", mapped)
}
