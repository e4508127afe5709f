package ports

import (
	"context"

	"escrow/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for vendor
// notifications. Notifications are append-only; only the read flag mutates,
// and the whole list may be cleared.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// GetAll retrieves all notifications, most recent first.
	GetAll(ctx context.Context) ([]*notification.Notification, error)

	// MarkAllRead flags every notification as seen.
	MarkAllRead(ctx context.Context) error

	// ClearAll removes every notification.
	ClearAll(ctx context.Context) error
}
