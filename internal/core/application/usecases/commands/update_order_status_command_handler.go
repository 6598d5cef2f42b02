package commands

import (
	"context"

	"ordertracking/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies a direct status update to one order.
// Rejection (not found, regression, out of range) leaves the collection
// untouched: the transaction is rolled back before any replace happens.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	_, target := findByID(orders, cmd.OrderID())
	if target == nil {
		return errs.NewObjectNotFoundError("orderId", cmd.OrderID().String())
	}

	if err = target.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.ReplaceAll(ctx, orders); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
