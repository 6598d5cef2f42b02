package http

import (
	"time"

	"ordertracking/internal/core/application/usecases/queries"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
)

// timestampFormat is the millisecond-precision ISO-8601 layout used in
// responses. Incoming timestamps accept any RFC 3339 value.
const timestampFormat = "2006-01-02T15:04:05.000Z07:00"

// errorResponse is the JSON body of every non-2xx reply.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// createOrderRequest is the body of POST /orders.
type createOrderRequest struct {
	ProductName     string `json:"productName" validate:"required"`
	CustomerName    string `json:"customerName" validate:"required"`
	DeliveryAddress string `json:"deliveryAddress" validate:"required"`
}

// updateStatusRequest is the body of PUT /orders/:id/status.
// Status is a pointer so that an absent field fails validation instead of
// silently reading as Placed.
type updateStatusRequest struct {
	Status *int `json:"status" validate:"required,min=0,max=3"`
}

// updateNotesRequest is the body of PUT /orders/:id/notes.
// An empty string is a legal value, it clears the notes.
type updateNotesRequest struct {
	Notes *string `json:"notes" validate:"required"`
}

// autoProgressRequest is the optional body of POST /orders/:id/auto-progress.
type autoProgressRequest struct {
	IntervalSeconds int `json:"intervalSeconds" validate:"omitempty,min=1"`
}

// statusHistoryPayload mirrors one status history entry on the wire.
type statusHistoryPayload struct {
	Status    int    `json:"status"`
	Timestamp string `json:"timestamp"`
}

// orderPayload mirrors one order on the wire. It serves both directions:
// responses are built from aggregates, and PUT /orders (bulk replace)
// accepts an array of these.
type orderPayload struct {
	ID              string                 `json:"id"`
	ProductName     string                 `json:"productName"`
	CustomerName    string                 `json:"customerName"`
	DeliveryAddress string                 `json:"deliveryAddress"`
	Status          int                    `json:"status"`
	CreatedAt       string                 `json:"createdAt"`
	Notes           string                 `json:"notes"`
	StatusHistory   []statusHistoryPayload `json:"statusHistory"`
}

// advanceResponse is the body of POST /orders/:id/advance.
type advanceResponse struct {
	Order    orderPayload `json:"order"`
	Advanced bool         `json:"advanced"`
	Terminal bool         `json:"terminal"`
}

// statisticsResponse is the body of GET /statistics.
type statisticsResponse struct {
	Total     int `json:"total"`
	Placed    int `json:"placed"`
	Packed    int `json:"packed"`
	Shipped   int `json:"shipped"`
	Delivered int `json:"delivered"`
}

func toOrderPayload(o *order.Order) orderPayload {
	history := make([]statusHistoryPayload, 0, len(o.StatusHistory()))
	for _, entry := range o.StatusHistory() {
		history = append(history, statusHistoryPayload{
			Status:    int(entry.Status()),
			Timestamp: entry.OccurredAt().UTC().Format(timestampFormat),
		})
	}

	return orderPayload{
		ID:              o.ID().String(),
		ProductName:     o.ProductName(),
		CustomerName:    o.CustomerName(),
		DeliveryAddress: o.DeliveryAddress(),
		Status:          int(o.Status()),
		CreatedAt:       o.CreatedAt().UTC().Format(timestampFormat),
		Notes:           o.Notes(),
		StatusHistory:   history,
	}
}

func toOrderPayloads(orders []*order.Order) []orderPayload {
	payloads := make([]orderPayload, 0, len(orders))
	for _, o := range orders {
		payloads = append(payloads, toOrderPayload(o))
	}
	return payloads
}

func toStatisticsResponse(stats queries.OrderStatistics) statisticsResponse {
	return statisticsResponse{
		Total:     stats.Total,
		Placed:    stats.Placed,
		Packed:    stats.Packed,
		Shipped:   stats.Shipped,
		Delivered: stats.Delivered,
	}
}

// toDomain rebuilds an aggregate from an imported payload.
func (p orderPayload) toDomain() (*order.Order, error) {
	id, err := kernel.OrderIDFromString(p.ID)
	if err != nil {
		return nil, err
	}

	createdAt, err := time.Parse(time.RFC3339, p.CreatedAt)
	if err != nil {
		return nil, err
	}

	history := make([]order.HistoryEntry, 0, len(p.StatusHistory))
	for _, entry := range p.StatusHistory {
		occurredAt, entryErr := time.Parse(time.RFC3339, entry.Timestamp)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, order.RestoreHistoryEntry(order.Status(entry.Status), occurredAt))
	}

	return order.RestoreOrder(
		id,
		p.ProductName,
		p.CustomerName,
		p.DeliveryAddress,
		order.Status(p.Status),
		createdAt,
		p.Notes,
		history,
	)
}
