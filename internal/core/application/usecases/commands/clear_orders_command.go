package commands

import (
	"errors"

	"ordertracking/internal/pkg/guard"
)

var ErrClearOrdersCommandIsNotConstructed = errors.New(
	"ClearOrdersCommand must be created via NewClearOrdersCommand constructor",
)

// ClearOrdersCommand represents a request to remove the persisted collection
// entirely. The collection reads as empty afterwards.
type ClearOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewClearOrdersCommand creates a command to clear all orders.
func NewClearOrdersCommand() ClearOrdersCommand {
	return ClearOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ClearOrdersCommand) Validate() error {
	return c.guard.Validate(ErrClearOrdersCommandIsNotConstructed)
}
