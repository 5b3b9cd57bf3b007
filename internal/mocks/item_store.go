package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/market-api/internal/domain"
	"github.com/phrazzld/market-api/internal/store"
)

// MockItemStore implements store.ItemStore for testing.
// List returns items in insertion order.
type MockItemStore struct {
	ListFn        func(ctx context.Context) ([]*domain.Item, error)
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	CreateFn      func(ctx context.Context, item *domain.Item) error
	MarkSoldOutFn func(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	DeleteOwnedFn func(ctx context.Context, id, ownerID uuid.UUID) error

	mu    sync.RWMutex
	items map[uuid.UUID]*domain.Item
	order []uuid.UUID
}

// NewMockItemStore creates a new, empty mock store.
func NewMockItemStore() *MockItemStore {
	return &MockItemStore{
		items: make(map[uuid.UUID]*domain.Item),
	}
}

var _ store.ItemStore = (*MockItemStore)(nil)

// List implements the ItemStore interface
func (m *MockItemStore) List(ctx context.Context) ([]*domain.Item, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]*domain.Item, 0, len(m.order))
	for _, id := range m.order {
		item := *m.items[id]
		items = append(items, &item)
	}
	return items, nil
}

// GetByID implements the ItemStore interface
func (m *MockItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[id]
	if !ok {
		return nil, store.ErrItemNotFound
	}
	found := *item
	return &found, nil
}

// Create implements the ItemStore interface
func (m *MockItemStore) Create(ctx context.Context, item *domain.Item) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, item)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[item.ID]; exists {
		return store.ErrDuplicate
	}

	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	stored := *item
	m.items[item.ID] = &stored
	m.order = append(m.order, item.ID)
	return nil
}

// MarkSoldOut implements the ItemStore interface
func (m *MockItemStore) MarkSoldOut(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	if m.MarkSoldOutFn != nil {
		return m.MarkSoldOutFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return nil, store.ErrItemNotFound
	}
	item.Status = domain.ItemStatusSoldOut
	item.UpdatedAt = time.Now().UTC()

	updated := *item
	return &updated, nil
}

// DeleteOwned implements the ItemStore interface
func (m *MockItemStore) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error {
	if m.DeleteOwnedFn != nil {
		return m.DeleteOwnedFn(ctx, id, ownerID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok || !item.IsOwnedBy(ownerID) {
		return store.ErrItemNotFound
	}

	delete(m.items, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
