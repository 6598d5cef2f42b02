package queries

import (
	"context"
	"errors"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"
	"ordertracking/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single order by its identifier.
type GetOrderByIDQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for the given order identifier.
func NewGetOrderByIDQuery(orderID kernel.OrderID) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier being looked up.
func (q GetOrderByIDQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// GetOrderByIDQueryHandler executes the lookup against the repository.
type GetOrderByIDQueryHandler struct {
	reader OrderReader
}

// NewGetOrderByIDQueryHandler creates a handler for the lookup query.
func NewGetOrderByIDQueryHandler(reader OrderReader) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{reader: reader}
}

// Handle returns the order with the requested identifier or a typed
// not-found error when no such order exists in the collection.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if o.ID().IsEqual(query.OrderID()) {
			return o, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
}
