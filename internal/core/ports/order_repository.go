// Package ports defines the contracts between the application core and its
// adapters: persistence, transactions, and outbound notifications.
package ports

import (
	"context"

	"ordertracking/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for the order collection.
//
// The collection is persisted as a single whole-collection blob: every read
// loads the entire collection and every write replaces it wholesale. There
// is no row-level persistence; the atomicity unit is one full collection
// replace. The serialized layout (JSON array under a single key) is a stable
// contract; the backing store is swappable behind this interface.
type OrderRepository interface {
	// LoadAll returns the complete collection, newest-first.
	// An absent or unparsable blob reads as the empty collection; only
	// infrastructure failures (e.g. the store being unreachable) return
	// an error.
	LoadAll(ctx context.Context) ([]*order.Order, error)

	// ReplaceAll persists the given collection, replacing whatever was
	// stored before. Serialization failures abort before any write is
	// attempted.
	ReplaceAll(ctx context.Context, orders []*order.Order) error

	// Clear removes the persisted collection entirely. The collection
	// reads as empty afterwards. Clearing an already-empty store is not
	// an error.
	Clear(ctx context.Context) error
}
