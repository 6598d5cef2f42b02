package commands

import (
	"errors"

	"ordertracking/internal/pkg/guard"
)

var ErrSeedDemoOrdersCommandIsNotConstructed = errors.New(
	"SeedDemoOrdersCommand must be created via NewSeedDemoOrdersCommand constructor",
)

// SeedDemoOrdersCommand represents a request to populate an empty store with
// sample orders so first-time users see a working pipeline. A non-empty
// store is left untouched.
type SeedDemoOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewSeedDemoOrdersCommand creates a command to seed demo data.
func NewSeedDemoOrdersCommand() SeedDemoOrdersCommand {
	return SeedDemoOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SeedDemoOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSeedDemoOrdersCommandIsNotConstructed)
}
