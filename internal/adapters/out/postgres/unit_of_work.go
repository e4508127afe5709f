// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work spans one business operation: it manages the
// database transaction across the repositories involved and tracks every
// aggregate written, so post-commit processing can see what changed.
package postgres

import (
	"context"

	"escrow/internal/adapters/out/postgres/notificationrepo"
	"escrow/internal/adapters/out/postgres/orderrepo"
	"escrow/internal/adapters/out/postgres/vendorrepo"
	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
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

// GormUnitOfWork coordinates a database transaction across the order,
// notification, and vendor repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Repeated calls on the same
// instance do not create nested transactions.
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
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository provides order persistence within the unit of work.
// Operations run inside the current transaction when one is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// NotificationRepository provides notification persistence within the unit
// of work.
func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn(), uow)
}

// VendorRepository provides vendor profile persistence within the unit of
// work.
func (uow *GormUnitOfWork) VendorRepository() ports.VendorRepository {
	return vendorrepo.NewGormVendorRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by repository implementations on writes.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
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
