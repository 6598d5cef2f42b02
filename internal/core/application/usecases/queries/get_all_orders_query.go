// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
//
// Because the persisted representation is one whole-collection blob, the
// read model and the write model coincide: queries load through the same
// repository port the commands write through and return domain aggregates
// (or small derived read models such as statistics).
package queries

import (
	"context"
	"errors"

	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/guard"
)

// OrderReader is the read-side slice of the repository port.
type OrderReader interface {
	LoadAll(ctx context.Context) ([]*order.Order, error)
}

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves the complete order collection, newest first.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryHandler executes the list query against the repository.
type GetAllOrdersQueryHandler struct {
	reader OrderReader
}

// NewGetAllOrdersQueryHandler creates a handler for the list query.
func NewGetAllOrdersQueryHandler(reader OrderReader) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{reader: reader}
}

// Handle returns all orders in stored order (newest first: creation
// prepends). An absent or unparsable blob yields an empty slice.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.reader.LoadAll(ctx)
}
