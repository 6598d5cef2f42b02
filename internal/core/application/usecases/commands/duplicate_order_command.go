package commands

import (
	"errors"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/pkg/guard"
)

var ErrDuplicateOrderCommandIsNotConstructed = errors.New(
	"DuplicateOrderCommand must be created via NewDuplicateOrderCommand constructor",
)

// DuplicateOrderCommand represents a request to create a fresh order from an
// existing one. Product, customer, and address are copied; identifier,
// creation time, status, notes, and history start over.
type DuplicateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewDuplicateOrderCommand creates a command to duplicate the given order.
func NewDuplicateOrderCommand(orderID kernel.OrderID) (DuplicateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DuplicateOrderCommand{}, err
	}

	return DuplicateOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DuplicateOrderCommand) Validate() error {
	return c.guard.Validate(ErrDuplicateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to duplicate.
func (c DuplicateOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}
