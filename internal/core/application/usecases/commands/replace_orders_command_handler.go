package commands

import (
	"context"
)

// ReplaceOrdersCommandHandler replaces the persisted collection wholesale.
type ReplaceOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReplaceOrdersCommandHandler creates a handler for bulk replacement.
func NewReplaceOrdersCommandHandler(uowFactory OrderUoWFactory) ReplaceOrdersCommandHandler {
	return ReplaceOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the replacement command.
func (h *ReplaceOrdersCommandHandler) Handle(ctx context.Context, cmd ReplaceOrdersCommand) error {
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

	if err := uow.OrderRepository().ReplaceAll(ctx, cmd.Orders()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
