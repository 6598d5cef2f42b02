package commands

import (
	"errors"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to set an order's status
// directly. Unlike AdvanceOrderCommand this may skip stages forward; the
// aggregate still rejects regressions and out-of-range values.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to set an order's status.
// Validates the identifier and that the status lies in the valid range.
func NewUpdateOrderStatusCommand(orderID kernel.OrderID, status order.Status) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), status.Validate()); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Status returns the target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}
