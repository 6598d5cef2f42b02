package orderslot

import (
	"context"
	"errors"
	"log/slog"

	"ordertracking/internal/core/domain/model/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements the whole-collection OrderRepository
// contract on top of a single jsonb slot row.
type GormOrderRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormOrderRepository creates a new GORM order slot repository.
func NewGormOrderRepository(db *gorm.DB, logger *slog.Logger) *GormOrderRepository {
	return &GormOrderRepository{
		db:     db,
		logger: logger.With("component", "orderslot"),
	}
}

// LoadAll reads the slot and deserializes the collection. A missing slot
// reads as an empty collection. A slot that cannot be deserialized also
// reads as empty, after a warning: a corrupted blob must not wedge the
// service, it gets overwritten by the next write.
func (r *GormOrderRepository) LoadAll(ctx context.Context) ([]*order.Order, error) {
	var dto SlotDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", StorageKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []*order.Order{}, nil
		}
		return nil, err
	}

	orders, err := UnmarshalOrders(dto.Value)
	if err != nil {
		r.logger.Warn("stored order collection is unreadable, treating as empty",
			"key", StorageKey, "error", err)
		return []*order.Order{}, nil
	}

	return orders, nil
}

// ReplaceAll serializes the collection and upserts the slot row.
// Serialization failures abort before anything is written.
func (r *GormOrderRepository) ReplaceAll(ctx context.Context, orders []*order.Order) error {
	value, err := MarshalOrders(orders)
	if err != nil {
		return err
	}

	dto := SlotDTO{Key: StorageKey, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&dto).Error
}

// Clear deletes the slot row. Deleting an absent slot is not an error.
func (r *GormOrderRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Delete(&SlotDTO{}, "key = ?", StorageKey).Error
}
