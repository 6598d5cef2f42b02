package commands

import (
	"context"
)

// ClearOrdersCommandHandler drops the whole persisted collection.
type ClearOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClearOrdersCommandHandler creates a handler for the bulk-clear operation.
func NewClearOrdersCommandHandler(uowFactory OrderUoWFactory) ClearOrdersCommandHandler {
	return ClearOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clear command. Clearing an already-empty store succeeds.
func (h *ClearOrdersCommandHandler) Handle(ctx context.Context, cmd ClearOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Clear(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
