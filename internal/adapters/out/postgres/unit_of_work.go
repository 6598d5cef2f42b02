// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern around the order collection slot.
//
// Every command performs a read-modify-write of the whole collection, so a
// unit of work wraps exactly one database transaction in which the slot is
// loaded, the modified collection is written back, and the result commits
// or rolls back atomically.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	repo := uow.OrderRepository()
//	orders, err := repo.LoadAll(ctx)
//	// ... modify the collection
//	if err := repo.ReplaceAll(ctx, orders); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op, which keeps the
// begin / defer-rollback / commit pattern safe.
package postgres

import (
	"context"
	"log/slog"

	"ordertracking/internal/adapters/out/postgres/orderslot"
	"ordertracking/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each business operation gets a fresh unit of work
// with its own transaction state.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided connection is shared by all created instances.
func NewGormUnitOfWorkFactory(db *gorm.DB, logger *slog.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, logger: logger}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db, logger: f.logger}
}

// GormUnitOfWork coordinates one database transaction around the slot
// read-modify-write cycle using GORM's transaction support.
type GormUnitOfWork struct {
	db     *gorm.DB
	tx     *gorm.DB
	logger *slog.Logger
}

// Begin initiates a new database transaction. Repeated calls on the same
// instance are safe and do not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Without an active transaction it does nothing, so it can be deferred
// unconditionally right after Begin.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns the order slot repository bound to the current
// transaction when one is active, or to the base connection otherwise.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderslot.NewGormOrderRepository(db, uow.logger)
}
