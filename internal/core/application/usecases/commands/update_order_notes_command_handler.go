package commands

import (
	"context"

	"ordertracking/internal/pkg/errs"
)

// UpdateOrderNotesCommandHandler replaces the notes text of one order.
// Fails only when the order does not exist.
type UpdateOrderNotesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderNotesCommandHandler creates a handler for notes updates.
func NewUpdateOrderNotesCommandHandler(uowFactory OrderUoWFactory) UpdateOrderNotesCommandHandler {
	return UpdateOrderNotesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the notes update command.
func (h *UpdateOrderNotesCommandHandler) Handle(ctx context.Context, cmd UpdateOrderNotesCommand) error {
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

	target.SetNotes(cmd.Notes())

	if err = repo.ReplaceAll(ctx, orders); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
