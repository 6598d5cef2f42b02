package commands

import (
	"context"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Generates a fresh identifier, creates the order in Placed status with a
// single history entry, and prepends it to the collection so listings stay
// newest-first.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created order.
// The whole collection is read, the new order prepended, and the collection
// replaced within one transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewOrderID(),
		cmd.ProductName(),
		cmd.CustomerName(),
		cmd.DeliveryAddress(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	orders = append([]*order.Order{newOrder}, orders...)
	if err = repo.ReplaceAll(ctx, orders); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
