// Package orderslot persists the order collection as a single JSON blob.
// The whole collection is serialized into one row keyed by StorageKey, so
// every write replaces the full collection and every read loads it back.
// This package owns the serialized layout and the mapping between the
// stored JSON and order domain aggregates.
package orderslot

import (
	"encoding/json"
	"time"

	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
)

// StorageKey is the slot key the order collection lives under.
const StorageKey = "orderTrackingOrders"

// isoFormat is the timestamp layout written into the blob. It matches
// millisecond-precision ISO-8601; reads accept any RFC 3339 timestamp.
const isoFormat = "2006-01-02T15:04:05.000Z07:00"

// SlotDTO represents one key/value storage slot. The order collection
// occupies a single slot; the table can hold other blobs keyed separately.
type SlotDTO struct {
	Key   string `gorm:"primaryKey"`
	Value []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for storage slots.
func (SlotDTO) TableName() string {
	return "order_slots"
}

// OrderDTO is the JSON shape of one order inside the stored collection.
// Field names and the integer status encoding are a stable contract.
type OrderDTO struct {
	ID              string             `json:"id"`
	ProductName     string             `json:"productName"`
	CustomerName    string             `json:"customerName"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Status          int                `json:"status"`
	CreatedAt       string             `json:"createdAt"`
	Notes           string             `json:"notes"`
	StatusHistory   []StatusHistoryDTO `json:"statusHistory"`
}

// StatusHistoryDTO is the JSON shape of one status history entry.
type StatusHistoryDTO struct {
	Status    int    `json:"status"`
	Timestamp string `json:"timestamp"`
}

// fromDomain converts an order aggregate to its JSON representation.
func fromDomain(o *order.Order) OrderDTO {
	history := make([]StatusHistoryDTO, 0, len(o.StatusHistory()))
	for _, entry := range o.StatusHistory() {
		history = append(history, StatusHistoryDTO{
			Status:    int(entry.Status()),
			Timestamp: entry.OccurredAt().UTC().Format(isoFormat),
		})
	}

	return OrderDTO{
		ID:              o.ID().String(),
		ProductName:     o.ProductName(),
		CustomerName:    o.CustomerName(),
		DeliveryAddress: o.DeliveryAddress(),
		Status:          int(o.Status()),
		CreatedAt:       o.CreatedAt().UTC().Format(isoFormat),
		Notes:           o.Notes(),
		StatusHistory:   history,
	}
}

// toDomain converts a stored JSON order to a domain aggregate using
// RestoreOrder, validating the identifier and status on the way in.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	createdAt, err := parseTimestamp(dto.CreatedAt)
	if err != nil {
		return nil, err
	}

	history := make([]order.HistoryEntry, 0, len(dto.StatusHistory))
	for _, entry := range dto.StatusHistory {
		occurredAt, entryErr := parseTimestamp(entry.Timestamp)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, order.RestoreHistoryEntry(order.Status(entry.Status), occurredAt))
	}

	return order.RestoreOrder(
		id,
		dto.ProductName,
		dto.CustomerName,
		dto.DeliveryAddress,
		order.Status(dto.Status),
		createdAt,
		dto.Notes,
		history,
	)
}

func parseTimestamp(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}

// MarshalOrders serializes the collection to the stored JSON layout.
// An empty collection serializes as an empty JSON array, never null.
func MarshalOrders(orders []*order.Order) ([]byte, error) {
	dtos := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, fromDomain(o))
	}
	return json.Marshal(dtos)
}

// UnmarshalOrders deserializes the stored JSON layout back to aggregates.
func UnmarshalOrders(data []byte) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
