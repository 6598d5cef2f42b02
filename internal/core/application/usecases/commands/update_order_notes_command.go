package commands

import (
	"errors"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/pkg/guard"
)

var ErrUpdateOrderNotesCommandIsNotConstructed = errors.New(
	"UpdateOrderNotesCommand must be created via NewUpdateOrderNotesCommand constructor",
)

// UpdateOrderNotesCommand represents a request to replace an order's notes.
// Notes are free-form and may be empty; clearing notes is a valid update.
type UpdateOrderNotesCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	notes   string

	guard guard.ConstructorGuard
}

// NewUpdateOrderNotesCommand creates a command to replace an order's notes.
func NewUpdateOrderNotesCommand(orderID kernel.OrderID, notes string) (UpdateOrderNotesCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderNotesCommand{}, err
	}

	return UpdateOrderNotesCommand{
		orderID: orderID,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderNotesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderNotesCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderNotesCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Notes returns the replacement notes text.
func (c UpdateOrderNotesCommand) Notes() string {
	return c.notes
}
