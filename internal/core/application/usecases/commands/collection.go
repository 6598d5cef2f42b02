package commands

import (
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
)

// findByID scans the collection for an order with the given identifier.
// Returns the index and the order, or (-1, nil) when absent. A linear scan
// is fine: the whole collection is already in memory after LoadAll.
func findByID(orders []*order.Order, id kernel.OrderID) (int, *order.Order) {
	for i, o := range orders {
		if o.ID().IsEqual(id) {
			return i, o
		}
	}
	return -1, nil
}
