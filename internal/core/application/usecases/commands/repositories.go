// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"escrow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each command declares the narrowest unit of work it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// VendorRepoFactory provides access to the vendor repository within a transaction.
	VendorRepoFactory interface {
		VendorRepository() ports.VendorRepository
	}

	// OrderUoW manages transactions for order lifecycle operations.
	// Every transition writes the order and appends at most one
	// notification, so both repositories share the transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		NotificationRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// NotificationUoW manages transactions for notification-only operations.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// VendorUoW manages transactions for vendor profile and session operations.
	VendorUoW interface {
		TxManager
		VendorRepoFactory
	}

	// VendorUoWFactory creates new vendor unit of work instances.
	VendorUoWFactory interface {
		Create() VendorUoW
	}

	// CreateOrderUoW manages transactions for payment link creation, which
	// reads the vendor profile and writes an order plus a notification.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		NotificationRepoFactory
		VendorRepoFactory
	}

	// CreateOrderUoWFactory creates new unit of work instances for payment link creation.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}
)
