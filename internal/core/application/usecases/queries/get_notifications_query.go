package queries

import (
	"errors"
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves the vendor's notification feed.
type GetNotificationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a notification feed query.
func NewGetNotificationsQuery() GetNotificationsQuery {
	return GetNotificationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// NotificationResponse is the read model of one notification.
type NotificationResponse struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Message   string
	CreatedAt time.Time
	Read      bool
}

// GetNotificationsQueryResponse lists notifications, most recent first,
// with an unread counter for the badge.
type GetNotificationsQueryResponse struct {
	Notifications []NotificationResponse
	UnreadCount   int
}
