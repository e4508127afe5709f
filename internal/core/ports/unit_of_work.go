package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Every lifecycle transition writes one order plus at most one appended
// notification; wrapping both in the same unit of work keeps them atomic.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// NotificationRepository returns a NotificationRepository bound to the current transaction.
	NotificationRepository() NotificationRepository

	// VendorRepository returns a VendorRepository bound to the current transaction.
	VendorRepository() VendorRepository
}
