package ports

import (
	"context"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are only created and updated, never deleted.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate with an
	// optimistic check: the write applies only while the stored status
	// still equals expectedStatus. Two actors racing on the same order
	// surface as an errs.VersionIsInvalidError for the loser.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Unknown identifiers yield an errs.ObjectNotFoundError, never a panic.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	// Used by the deadline reminder scan over in-production orders.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
