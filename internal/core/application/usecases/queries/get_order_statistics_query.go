package queries

import (
	"context"
	"errors"

	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/guard"
)

var ErrGetOrderStatisticsQueryIsNotConstructed = errors.New(
	"GetOrderStatisticsQuery must be created via NewGetOrderStatisticsQuery constructor",
)

// GetOrderStatisticsQuery computes per-status counts over the collection.
type GetOrderStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatisticsQuery creates a statistics query.
func NewGetOrderStatisticsQuery() GetOrderStatisticsQuery {
	return GetOrderStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatisticsQueryIsNotConstructed)
}

// OrderStatistics is the read model for the statistics query.
type OrderStatistics struct {
	Total     int
	Placed    int
	Packed    int
	Shipped   int
	Delivered int
}

// GetOrderStatisticsQueryHandler executes the statistics query.
type GetOrderStatisticsQueryHandler struct {
	reader OrderReader
}

// NewGetOrderStatisticsQueryHandler creates a handler for the statistics query.
func NewGetOrderStatisticsQueryHandler(reader OrderReader) GetOrderStatisticsQueryHandler {
	return GetOrderStatisticsQueryHandler{reader: reader}
}

// Handle counts orders per status. An empty collection yields all zeroes.
func (h GetOrderStatisticsQueryHandler) Handle(ctx context.Context, query GetOrderStatisticsQuery) (OrderStatistics, error) {
	if err := query.Validate(); err != nil {
		return OrderStatistics{}, err
	}

	orders, err := h.reader.LoadAll(ctx)
	if err != nil {
		return OrderStatistics{}, err
	}

	stats := OrderStatistics{Total: len(orders)}
	for _, o := range orders {
		switch o.Status() {
		case order.Placed:
			stats.Placed++
		case order.Packed:
			stats.Packed++
		case order.Shipped:
			stats.Shipped++
		case order.Delivered:
			stats.Delivered++
		}
	}

	return stats, nil
}
