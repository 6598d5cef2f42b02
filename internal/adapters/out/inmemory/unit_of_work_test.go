package inmemory_test

import (
	"context"
	"testing"

	"ordertracking/internal/adapters/out/inmemory"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewOrderID(), "Desk Lamp", "Rae Quinn", "12 Alder Row")
	require.NoError(t, err)
	return o
}

func TestUnitOfWork(t *testing.T) {
	ctx := context.Background()

	t.Run("should publish writes only on commit", func(t *testing.T) {
		store := inmemory.NewStore()
		uow := inmemory.NewUnitOfWork(store)
		require.NoError(t, uow.Begin(ctx))

		require.NoError(t, uow.OrderRepository().ReplaceAll(ctx, []*order.Order{newOrder(t)}))

		outside, err := inmemory.NewRepository(store).LoadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, outside, "uncommitted write must not be visible")

		require.NoError(t, uow.Commit(ctx))

		outside, err = inmemory.NewRepository(store).LoadAll(ctx)
		require.NoError(t, err)
		assert.Len(t, outside, 1)
	})

	t.Run("should let reads inside the transaction see buffered writes", func(t *testing.T) {
		store := inmemory.NewStore()
		uow := inmemory.NewUnitOfWork(store)
		require.NoError(t, uow.Begin(ctx))

		repo := uow.OrderRepository()
		require.NoError(t, repo.ReplaceAll(ctx, []*order.Order{newOrder(t)}))

		inside, err := repo.LoadAll(ctx)
		require.NoError(t, err)
		assert.Len(t, inside, 1)
	})

	t.Run("should discard writes on rollback", func(t *testing.T) {
		store := inmemory.NewStore()
		seeded := newOrder(t)
		require.NoError(t, inmemory.NewRepository(store).ReplaceAll(ctx, []*order.Order{seeded}))

		uow := inmemory.NewUnitOfWork(store)
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.OrderRepository().Clear(ctx))
		require.NoError(t, uow.Rollback(ctx))

		orders, err := inmemory.NewRepository(store).LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.True(t, orders[0].ID().IsEqual(seeded.ID()))
	})

	t.Run("should keep writes committed elsewhere when an idle transaction rolls back", func(t *testing.T) {
		store := inmemory.NewStore()
		idle := inmemory.NewUnitOfWork(store)
		require.NoError(t, idle.Begin(ctx))

		other := inmemory.NewUnitOfWork(store)
		require.NoError(t, other.Begin(ctx))
		created := newOrder(t)
		require.NoError(t, other.OrderRepository().ReplaceAll(ctx, []*order.Order{created}))
		require.NoError(t, other.Commit(ctx))

		require.NoError(t, idle.Rollback(ctx))

		orders, err := inmemory.NewRepository(store).LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1, "rollback of a read-only transaction must not erase concurrent commits")
		assert.True(t, orders[0].ID().IsEqual(created.ID()))
	})

	t.Run("should fail commit without begin", func(t *testing.T) {
		uow := inmemory.NewUnitOfWork(inmemory.NewStore())
		assert.Error(t, uow.Commit(ctx))
	})

	t.Run("should treat rollback after commit as a no-op", func(t *testing.T) {
		store := inmemory.NewStore()
		uow := inmemory.NewUnitOfWork(store)
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.OrderRepository().ReplaceAll(ctx, []*order.Order{newOrder(t)}))
		require.NoError(t, uow.Commit(ctx))

		require.NoError(t, uow.Rollback(ctx))

		orders, err := inmemory.NewRepository(store).LoadAll(ctx)
		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})
}
