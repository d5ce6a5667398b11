// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern for the courier marketplace engine. A unit of work spans one
// business transaction: the review of an application, a parcel transition
// with its driver-side effects, a payout settlement. All repositories handed
// out by a unit of work share the same database transaction, so a failure in
// any step rolls back every write.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.ParcelRepository().Update(ctx, parcel); err != nil {
//	    return err
//	}
//	if err := uow.DriverRepository().Update(ctx, driver); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each unit of work instance owns its transaction state, so concurrent
// operations must use separate instances obtained from the factory.
package postgres

import (
	"context"

	"courierops/internal/adapters/out/postgres/accountrepo"
	"courierops/internal/adapters/out/postgres/applicationrepo"
	"courierops/internal/adapters/out/postgres/driverrepo"
	"courierops/internal/adapters/out/postgres/parcelrepo"
	"courierops/internal/adapters/out/postgres/paymentrepo"
	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Tracking enables post-commit processing such as publishing domain events.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances backed by a shared GORM
// database connection. Each created instance gets its own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided connection is reused by every created instance.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the engine's
// repositories and tracks the aggregates modified within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Repository operations issued
// after Begin execute within the transaction. Calling Begin again on an
// instance with an open transaction is a no-op.
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

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ApplicationRepository returns an application repository bound to the
// current transaction, or to the main connection when none is open.
func (uow *GormUnitOfWork) ApplicationRepository() ports.ApplicationRepository {
	return applicationrepo.NewGormApplicationRepository(uow.conn(), uow)
}

// DriverRepository returns a driver repository bound to the current
// transaction, or to the main connection when none is open.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn(), uow)
}

// ParcelRepository returns a parcel repository bound to the current
// transaction, or to the main connection when none is open.
func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(uow.conn(), uow)
}

// PaymentRepository returns a payment repository bound to the current
// transaction, or to the main connection when none is open.
func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn(), uow)
}

// UserRepository returns a user repository bound to the current transaction,
// or to the main connection when none is open.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return accountrepo.NewGormUserRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call it on Add and Update so tracked
// aggregates can be processed after the transaction completes.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
