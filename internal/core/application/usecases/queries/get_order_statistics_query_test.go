package queries_test

import (
	"context"
	"testing"

	"ordertracking/internal/adapters/out/inmemory"
	"ordertracking/internal/core/application/usecases/queries"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrders(t *testing.T, store *inmemory.Store, statuses ...order.Status) []*order.Order {
	t.Helper()

	orders := make([]*order.Order, 0, len(statuses))
	for _, status := range statuses {
		o, err := order.NewOrder(kernel.NewOrderID(), "Travel Mug", "Sam Cole", "40 Juniper Hill")
		require.NoError(t, err)
		if status != order.Placed {
			require.NoError(t, o.ChangeStatus(status))
		}
		orders = append(orders, o)
	}

	require.NoError(t, inmemory.NewRepository(store).ReplaceAll(context.Background(), orders))
	return orders
}

func TestGetAllOrdersQueryHandler_Handle(t *testing.T) {
	t.Run("should return the collection in stored order", func(t *testing.T) {
		store := inmemory.NewStore()
		seeded := seedOrders(t, store, order.Placed, order.Shipped)
		h := queries.NewGetAllOrdersQueryHandler(inmemory.NewRepository(store))

		orders, err := h.Handle(t.Context(), queries.NewGetAllOrdersQuery())

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.True(t, orders[0].ID().IsEqual(seeded[0].ID()))
	})

	t.Run("should return empty for an empty store", func(t *testing.T) {
		h := queries.NewGetAllOrdersQueryHandler(inmemory.NewRepository(inmemory.NewStore()))

		orders, err := h.Handle(t.Context(), queries.NewGetAllOrdersQuery())

		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestGetOrderByIDQueryHandler_Handle(t *testing.T) {
	t.Run("should find the order", func(t *testing.T) {
		store := inmemory.NewStore()
		seeded := seedOrders(t, store, order.Packed)
		h := queries.NewGetOrderByIDQueryHandler(inmemory.NewRepository(store))

		query, err := queries.NewGetOrderByIDQuery(seeded[0].ID())
		require.NoError(t, err)

		found, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.True(t, found.ID().IsEqual(seeded[0].ID()))
		assert.Equal(t, order.Packed, found.Status())
	})

	t.Run("should return a typed not-found error", func(t *testing.T) {
		h := queries.NewGetOrderByIDQueryHandler(inmemory.NewRepository(inmemory.NewStore()))

		query, err := queries.NewGetOrderByIDQuery(kernel.NewOrderID())
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), query)

		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestGetOrderStatisticsQueryHandler_Handle(t *testing.T) {
	t.Run("should count orders per status", func(t *testing.T) {
		store := inmemory.NewStore()
		seedOrders(t, store, order.Placed, order.Placed, order.Packed, order.Delivered)
		h := queries.NewGetOrderStatisticsQueryHandler(inmemory.NewRepository(store))

		stats, err := h.Handle(t.Context(), queries.NewGetOrderStatisticsQuery())

		require.NoError(t, err)
		assert.Equal(t, queries.OrderStatistics{
			Total:     4,
			Placed:    2,
			Packed:    1,
			Delivered: 1,
		}, stats)
	})

	t.Run("should return zeroes for an empty store", func(t *testing.T) {
		h := queries.NewGetOrderStatisticsQueryHandler(inmemory.NewRepository(inmemory.NewStore()))

		stats, err := h.Handle(t.Context(), queries.NewGetOrderStatisticsQuery())

		require.NoError(t, err)
		assert.Equal(t, queries.OrderStatistics{}, stats)
	})
}
