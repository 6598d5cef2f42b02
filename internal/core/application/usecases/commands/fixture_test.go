package commands_test

import (
	"context"
	"testing"

	"ordertracking/internal/adapters/out/inmemory"
	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newTestOrderID() kernel.OrderID {
	return kernel.NewOrderID()
}

type uowFuncFactory struct {
	factory inmemory.UnitOfWorkFactory
}

func (f uowFuncFactory) Create() commands.OrderUoW {
	return f.factory.Create()
}

// storeFixture backs handlers with the in-memory store for scenario tests
// that exercise the full read-modify-write cycle.
type storeFixture struct {
	store   *inmemory.Store
	factory uowFuncFactory
}

func newStoreFixture() *storeFixture {
	store := inmemory.NewStore()
	return &storeFixture{
		store:   store,
		factory: uowFuncFactory{factory: inmemory.NewUnitOfWorkFactory(store)},
	}
}

func (f *storeFixture) seed(t *testing.T, orders ...*order.Order) {
	t.Helper()
	require.NoError(t, inmemory.NewRepository(f.store).ReplaceAll(context.Background(), orders))
}

func (f *storeFixture) all(t *testing.T) []*order.Order {
	t.Helper()
	orders, err := inmemory.NewRepository(f.store).LoadAll(context.Background())
	require.NoError(t, err)
	return orders
}

func (f *storeFixture) get(t *testing.T, id kernel.OrderID) *order.Order {
	t.Helper()
	for _, o := range f.all(t) {
		if o.ID().IsEqual(id) {
			return o
		}
	}
	t.Fatalf("order %s not found in store", id)
	return nil
}

func newStoredOrder(t *testing.T, f *storeFixture) *order.Order {
	t.Helper()
	o, err := order.NewOrder(newTestOrderID(), "Desk Organizer", "Nina Frost", "99 Poplar Street")
	require.NoError(t, err)
	f.seed(t, o)
	return o
}
