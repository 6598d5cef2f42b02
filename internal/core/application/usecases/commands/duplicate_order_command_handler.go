package commands

import (
	"context"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"
)

// DuplicateOrderCommandHandler creates a fresh Placed order carrying the
// source order's product, customer, and address. Source status, history,
// and notes are discarded.
type DuplicateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDuplicateOrderCommandHandler creates a handler for order duplication.
func NewDuplicateOrderCommandHandler(uowFactory OrderUoWFactory) DuplicateOrderCommandHandler {
	return DuplicateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the duplication command and returns the new order.
func (h *DuplicateOrderCommandHandler) Handle(ctx context.Context, cmd DuplicateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	orders, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	_, source := findByID(orders, cmd.OrderID())
	if source == nil {
		return nil, errs.NewObjectNotFoundError("orderId", cmd.OrderID().String())
	}

	copied, err := order.NewOrder(
		kernel.NewOrderID(),
		source.ProductName(),
		source.CustomerName(),
		source.DeliveryAddress(),
	)
	if err != nil {
		return nil, err
	}

	orders = append([]*order.Order{copied}, orders...)
	if err = repo.ReplaceAll(ctx, orders); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return copied, nil
}
