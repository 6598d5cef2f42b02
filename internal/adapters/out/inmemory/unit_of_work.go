package inmemory

import (
	"context"
	"errors"

	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/core/ports"
)

var errTransactionNotStarted = errors.New("transaction not started")

var (
	_ ports.UnitOfWork        = &UnitOfWork{}
	_ ports.UnitOfWorkFactory = UnitOfWorkFactory{}
)

// UnitOfWork implements the transaction boundary over the in-memory store
// by buffering writes: repository writes made between Begin and Commit land
// in a transaction-local buffer, Commit publishes the buffer to the store,
// Rollback discards it. The store itself is only touched on Commit, so a
// rolled-back operation never disturbs writes committed concurrently by
// other units of work. Rollback after Commit is a no-op, which allows the
// usual begin / defer-rollback / commit pattern.
type UnitOfWork struct {
	store  *Store
	repo   *txRepository
	active bool
}

// NewUnitOfWork creates a unit of work over the given store.
func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{
		store: store,
		repo:  &txRepository{store: store},
	}
}

// Begin starts the transaction. Repository writes after Begin stay in the
// buffer until Commit.
func (u *UnitOfWork) Begin(_ context.Context) error {
	u.repo.reset()
	u.active = true
	return nil
}

// Commit publishes buffered writes to the store. A transaction that never
// wrote commits without touching the store.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return errTransactionNotStarted
	}
	if u.repo.dirty {
		u.store.replaceAll(u.repo.pending)
	}
	u.active = false
	u.repo.reset()
	return nil
}

// Rollback discards buffered writes. Calling it without an active
// transaction does nothing.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return nil
	}
	u.active = false
	u.repo.reset()
	return nil
}

// OrderRepository returns the transactional repository.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return u.repo
}

// txRepository is the repository view inside a transaction. Reads see the
// buffered collection once the transaction has written; until then they go
// to the store.
type txRepository struct {
	store   *Store
	pending []*order.Order
	dirty   bool
}

var _ ports.OrderRepository = &txRepository{}

func (r *txRepository) reset() {
	r.pending = nil
	r.dirty = false
}

func (r *txRepository) LoadAll(_ context.Context) ([]*order.Order, error) {
	if r.dirty {
		return cloneAll(r.pending), nil
	}
	return r.store.loadAll(), nil
}

func (r *txRepository) ReplaceAll(_ context.Context, orders []*order.Order) error {
	r.pending = cloneAll(orders)
	r.dirty = true
	return nil
}

func (r *txRepository) Clear(_ context.Context) error {
	r.pending = nil
	r.dirty = true
	return nil
}

// UnitOfWorkFactory creates a fresh UnitOfWork per operation over a shared
// store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) UnitOfWorkFactory {
	return UnitOfWorkFactory{store: store}
}

// Create returns a new unit of work over the shared store.
func (f UnitOfWorkFactory) Create() ports.UnitOfWork {
	return NewUnitOfWork(f.store)
}
