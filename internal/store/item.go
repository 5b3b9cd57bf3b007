package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/market-api/internal/domain"
)

// ItemStore defines the interface for item listing persistence.
//
// Every method is a single atomic statement against the backing store, so
// concurrent calls on the same item never interleave a read with a write.
type ItemStore interface {
	// List returns every item in store order. An empty store yields an
	// empty, non-nil slice.
	List(ctx context.Context) ([]*domain.Item, error)

	// GetByID retrieves an item by its unique ID.
	// Returns ErrItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)

	// Create saves a new item. On success the store-maintained timestamps
	// are written back into item.
	Create(ctx context.Context, item *domain.Item) error

	// MarkSoldOut sets the item's status to SOLD_OUT and returns the updated
	// row. Marking an already sold item succeeds.
	// Returns ErrItemNotFound if the item does not exist.
	MarkSoldOut(ctx context.Context, id uuid.UUID) (*domain.Item, error)

	// DeleteOwned removes the item matching both id and ownerID.
	// Returns ErrItemNotFound when no row matches, whether the item is
	// missing or belongs to another user.
	DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error
}
