package commands

import (
	"errors"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand represents a request to move an order exactly one
// fulfillment stage forward.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance the given order.
// Validates that the order identifier is constructed.
func NewAdvanceOrderCommand(orderID kernel.OrderID) (AdvanceOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return AdvanceOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}
