// Package inmemory provides a process-local implementation of the order
// storage ports. It keeps the collection in memory behind the same
// whole-collection contract as the postgres adapter, which makes it the
// storage of choice for tests and for running the service without a
// database.
package inmemory

import (
	"sync"

	"ordertracking/internal/core/domain/model/order"
)

// Store holds the order collection. It is safe for concurrent use; each
// operation takes the store lock for its duration.
type Store struct {
	mu     sync.Mutex
	orders []*order.Order
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) loadAll() []*order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.orders)
}

func (s *Store) replaceAll(orders []*order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = cloneAll(orders)
}

func (s *Store) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = nil
}

// cloneAll deep-copies the collection so callers can never mutate stored
// aggregates through a shared pointer.
func cloneAll(orders []*order.Order) []*order.Order {
	if len(orders) == 0 {
		return nil
	}

	clones := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		clones = append(clones, clone(o))
	}
	return clones
}

func clone(o *order.Order) *order.Order {
	restored, err := order.RestoreOrder(
		o.ID(),
		o.ProductName(),
		o.CustomerName(),
		o.DeliveryAddress(),
		o.Status(),
		o.CreatedAt(),
		o.Notes(),
		o.StatusHistory(),
	)
	if err != nil {
		// A stored aggregate always satisfies the restore invariants.
		panic(err)
	}
	return restored
}
