//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/market-api/internal/domain"
	"github.com/phrazzld/market-api/internal/platform/postgres"
	"github.com/phrazzld/market-api/internal/store"
	"github.com/phrazzld/market-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createOwner(t *testing.T, ctx context.Context, tx *sql.Tx) *domain.User {
	t.Helper()
	owner := newTestUser(t, "owner-"+uuid.NewString()+"@example.com")
	require.NoError(t, postgres.NewPostgresUserStore(tx, nil).Create(ctx, owner))
	return owner
}

func TestPostgresItemStore_Lifecycle(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		owner := createOwner(t, ctx, tx)
		items := postgres.NewPostgresItemStore(tx, nil)

		desc := "oak"
		item, err := domain.NewItem(domain.CreateItemInput{Name: "chair", Price: 500, Description: &desc}, owner.ID)
		require.NoError(t, err)
		require.NoError(t, items.Create(ctx, item))

		plain, err := domain.NewItem(domain.CreateItemInput{Name: "lamp", Price: 1}, owner.ID)
		require.NoError(t, err)
		require.NoError(t, items.Create(ctx, plain))

		got, err := items.GetByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ItemStatusOnSale, got.Status)
		assert.Equal(t, owner.ID, got.OwnerID)
		require.NotNil(t, got.Description)
		assert.Equal(t, "oak", *got.Description)

		gotPlain, err := items.GetByID(ctx, plain.ID)
		require.NoError(t, err)
		assert.Nil(t, gotPlain.Description)

		all, err := items.List(ctx)
		require.NoError(t, err)
		ids := make([]uuid.UUID, 0, len(all))
		for _, it := range all {
			ids = append(ids, it.ID)
		}
		assert.Contains(t, ids, item.ID)
		assert.Contains(t, ids, plain.ID)

		sold, err := items.MarkSoldOut(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ItemStatusSoldOut, sold.Status)

		again, err := items.MarkSoldOut(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ItemStatusSoldOut, again.Status)

		err = items.DeleteOwned(ctx, item.ID, uuid.New())
		assert.ErrorIs(t, err, store.ErrItemNotFound)
		_, err = items.GetByID(ctx, item.ID)
		require.NoError(t, err, "non-owner delete must leave the item in place")

		require.NoError(t, items.DeleteOwned(ctx, item.ID, owner.ID))
		_, err = items.GetByID(ctx, item.ID)
		assert.ErrorIs(t, err, store.ErrItemNotFound)
	})
}

func TestPostgresItemStore_MissingItem(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDB(t)
	ctx := context.Background()
	items := postgres.NewPostgresItemStore(db, nil)

	_, err := items.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrItemNotFound)

	_, err = items.MarkSoldOut(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrItemNotFound)

	err = items.DeleteOwned(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestPostgresItemStore_UnknownOwner(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		items := postgres.NewPostgresItemStore(tx, nil)
		item, err := domain.NewItem(domain.CreateItemInput{Name: "ghost", Price: 1}, uuid.New())
		require.NoError(t, err)

		err = items.Create(context.Background(), item)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}
