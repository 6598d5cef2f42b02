package commands

import (
	"errors"

	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/guard"
)

var ErrReplaceOrdersCommandIsNotConstructed = errors.New(
	"ReplaceOrdersCommand must be created via NewReplaceOrdersCommand constructor",
)

// ReplaceOrdersCommand represents a request to replace the whole collection
// with the given orders. This is the import surface: export/import
// collaborators serialize via the list query and restore via this command.
type ReplaceOrdersCommand struct { //nolint:recvcheck //using for validation
	orders []*order.Order

	guard guard.ConstructorGuard
}

// NewReplaceOrdersCommand creates a command carrying the replacement
// collection. Every order must be a constructed aggregate; a nil entry or a
// zero-value order is rejected here so the store never persists garbage.
// An empty slice is valid and equivalent to clearing.
func NewReplaceOrdersCommand(orders []*order.Order) (ReplaceOrdersCommand, error) {
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return ReplaceOrdersCommand{}, err
		}
	}

	replacement := make([]*order.Order, len(orders))
	copy(replacement, orders)

	return ReplaceOrdersCommand{
		orders: replacement,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceOrdersCommand) Validate() error {
	return c.guard.Validate(ErrReplaceOrdersCommandIsNotConstructed)
}

// Orders returns the replacement collection.
func (c ReplaceOrdersCommand) Orders() []*order.Order {
	return c.orders
}
