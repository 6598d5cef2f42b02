package commands

import (
	"context"

	"ordertracking/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes one order from the collection.
// Deleting an unknown identifier fails and leaves the collection size unchanged.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	repo := uow.OrderRepository()
	orders, err := repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	idx, target := findByID(orders, cmd.OrderID())
	if target == nil {
		return errs.NewObjectNotFoundError("orderId", cmd.OrderID().String())
	}

	orders = append(orders[:idx], orders[idx+1:]...)
	if err = repo.ReplaceAll(ctx, orders); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
