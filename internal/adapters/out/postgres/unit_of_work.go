// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. The unit of work maintains the set of aggregates touched by
// a business transaction and coordinates writing out changes within a
// single database transaction.
//
// Basic usage:
//
//	factory := postgres.NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.DeliveryRepository().Add(ctx, d); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each Create call returns a fresh instance with its own transaction
// state, so concurrent operations stay isolated.
package postgres

import (
	"context"

	"fooddelivery/internal/adapters/out/postgres/deliveryrepo"
	"fooddelivery/internal/adapters/out/postgres/vendorrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of
// work, kept for post-commit processing such as outbox publication.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the delivery
// and vendor repositories. Repositories obtained from it run inside the
// current transaction when one is active and on the shared connection
// otherwise.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Calling Begin on an
// instance with an active transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the current transaction. After commit the transaction
// is closed and the instance cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction. Rolling back after a
// successful commit returns gorm.ErrInvalidTransaction, which deferred
// callers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// DeliveryRepository returns a delivery repository bound to the current
// transaction. Aggregates it writes are tracked on this unit of work.
func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return deliveryrepo.NewGormDeliveryRepository(db, uow)
}

// VendorRepository returns a vendor repository bound to the current
// transaction. Aggregates it writes are tracked on this unit of work.
func (uow *GormUnitOfWork) VendorRepository() ports.VendorRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return vendorrepo.NewGormVendorRepository(db, uow)
}

// TrackAggregate registers an aggregate as modified within this unit of
// work. Repository implementations call it on every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
