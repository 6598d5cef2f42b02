package inmemory

import (
	"context"

	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/core/ports"
)

var _ ports.OrderRepository = &Repository{}

// Repository implements ports.OrderRepository on top of an in-memory Store.
type Repository struct {
	store *Store
}

// NewRepository creates a repository bound to the given store.
func NewRepository(store *Store) *Repository {
	return &Repository{store: store}
}

// LoadAll returns a deep copy of the stored collection.
func (r *Repository) LoadAll(_ context.Context) ([]*order.Order, error) {
	return r.store.loadAll(), nil
}

// ReplaceAll replaces the stored collection with a deep copy of orders.
func (r *Repository) ReplaceAll(_ context.Context, orders []*order.Order) error {
	r.store.replaceAll(orders)
	return nil
}

// Clear removes the stored collection.
func (r *Repository) Clear(_ context.Context) error {
	r.store.clear()
	return nil
}
