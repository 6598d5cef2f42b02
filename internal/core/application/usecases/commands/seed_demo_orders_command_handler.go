package commands

import (
	"context"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
)

// demoOrder describes one sample record. Statuses vary so the seeded list
// shows every interesting pipeline position.
type demoOrder struct {
	productName     string
	customerName    string
	deliveryAddress string
	status          order.Status
}

func demoOrders() []demoOrder {
	return []demoOrder{
		{
			productName:     "Wireless Bluetooth Headphones",
			customerName:    "John Doe",
			deliveryAddress: "123 Main St, New York, NY 10001",
			status:          order.Shipped,
		},
		{
			productName:     "Smart Watch Series 5",
			customerName:    "Jane Smith",
			deliveryAddress: "456 Oak Ave, Los Angeles, CA 90001",
			status:          order.Packed,
		},
		{
			productName:     "Laptop Stand",
			customerName:    "Mike Johnson",
			deliveryAddress: "789 Pine Rd, Chicago, IL 60601",
			status:          order.Placed,
		},
	}
}

// SeedDemoOrdersCommandHandler populates an empty store with sample orders.
type SeedDemoOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSeedDemoOrdersCommandHandler creates a handler for demo data seeding.
func NewSeedDemoOrdersCommandHandler(uowFactory OrderUoWFactory) SeedDemoOrdersCommandHandler {
	return SeedDemoOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle seeds the sample orders when the collection is empty; otherwise it
// is a no-op.
func (h *SeedDemoOrdersCommandHandler) Handle(ctx context.Context, cmd SeedDemoOrdersCommand) error {
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
	existing, err := repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		return uow.Commit(ctx)
	}

	orders := make([]*order.Order, 0, len(demoOrders()))
	for _, demo := range demoOrders() {
		o, orderErr := order.NewOrder(
			kernel.NewOrderID(),
			demo.productName,
			demo.customerName,
			demo.deliveryAddress,
		)
		if orderErr != nil {
			return orderErr
		}

		// Walk stage by stage so the history covers the full path
		for s := order.Packed; s <= demo.status; s++ {
			if statusErr := o.ChangeStatus(s); statusErr != nil {
				return statusErr
			}
		}

		// Newest first, like interactive creation.
		orders = append([]*order.Order{o}, orders...)
	}

	if err = repo.ReplaceAll(ctx, orders); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
