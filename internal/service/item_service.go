package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/market-api/internal/domain"
	"github.com/phrazzld/market-api/internal/platform/logger"
	"github.com/phrazzld/market-api/internal/store"
)

// ItemService manages the listing lifecycle: ON_SALE to SOLD_OUT, then deletion.
type ItemService interface {
	// ListAll returns every item in store order.
	ListAll(ctx context.Context) ([]*domain.Item, error)

	// GetByID returns a single item or domain.ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)

	// Create stores a new ON_SALE item owned by ownerID.
	Create(ctx context.Context, input domain.CreateItemInput, ownerID uuid.UUID) (*domain.Item, error)

	// UpdateStatus marks the item SOLD_OUT. Any authenticated caller may do
	// this, and repeating it is harmless.
	UpdateStatus(ctx context.Context, id uuid.UUID) (*domain.Item, error)

	// Delete removes the item if ownerID created it. A missing item and one
	// owned by someone else both return domain.ErrNotFound.
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

type itemServiceImpl struct {
	items  store.ItemStore
	logger *slog.Logger
}

// NewItemService creates an ItemService.
func NewItemService(items store.ItemStore, logger *slog.Logger) (ItemService, error) {
	if items == nil {
		return nil, errors.New("item store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &itemServiceImpl{
		items:  items,
		logger: logger.With("component", "item_service"),
	}, nil
}

// ListAll implements ItemService.
func (s *itemServiceImpl) ListAll(ctx context.Context) ([]*domain.Item, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list items", "error", err)
		return nil, NewServiceError("item", "list", err)
	}
	return items, nil
}

// GetByID implements ItemService.
func (s *itemServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, "get", id, err)
	}
	return item, nil
}

// Create implements ItemService.
func (s *itemServiceImpl) Create(
	ctx context.Context,
	input domain.CreateItemInput,
	ownerID uuid.UUID,
) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	item, err := domain.NewItem(input, ownerID)
	if err != nil {
		return nil, itemValidationError(err)
	}

	if err := s.items.Create(ctx, item); err != nil {
		log.Error("failed to save item", "error", err, "owner_id", ownerID)
		return nil, NewServiceError("item", "create", err)
	}

	log.Info("item created", "item_id", item.ID, "owner_id", ownerID)
	return item, nil
}

// UpdateStatus implements ItemService.
func (s *itemServiceImpl) UpdateStatus(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	item, err := s.items.MarkSoldOut(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, "update_status", id, err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("item sold out", "item_id", id)
	return item, nil
}

// Delete implements ItemService.
func (s *itemServiceImpl) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := s.items.DeleteOwned(ctx, id, ownerID); err != nil {
		return s.translate(ctx, "delete", id, err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("item deleted", "item_id", id, "owner_id", ownerID)
	return nil
}

func (s *itemServiceImpl) translate(ctx context.Context, op string, id uuid.UUID, err error) error {
	if store.IsNotFoundError(err) {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	logger.FromContextOrDefault(ctx, s.logger).Error("item store failure",
		"error", err,
		"operation", op,
		"item_id", id)
	return NewServiceError("item", op, err)
}

// itemValidationError turns a domain constructor error into a field violation.
func itemValidationError(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyItemName):
		return domain.NewValidationError("name", "required", "is required")
	case errors.Is(err, domain.ErrInvalidItemPrice):
		return domain.NewValidationError("price", "min", "must be at least 1")
	case errors.Is(err, domain.ErrItemPriceTooHigh):
		return domain.NewValidationError("price", "max", fmt.Sprintf("must be at most %d", domain.MaxItemPrice))
	case errors.Is(err, domain.ErrEmptyItemOwnerID):
		return domain.NewValidationError("ownerId", "required", "is required")
	default:
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
}
