// Package notification contains the vendor notification entity and the
// message templates emitted by order lifecycle events.
package notification

import (
	"errors"
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

// ErrNotificationIsNotConstructed is returned when a Notification was not
// created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification")

// ErrMessageIsRequired is returned when a notification is created with an
// empty message.
var ErrMessageIsRequired = errors.New("notification message is required")

// Notification is an immutable event record addressed to the vendor.
// It is created as a side effect of order lifecycle transitions; afterwards
// only its read flag may change.
type Notification struct {
	id        kernel.UUID
	orderID   kernel.UUID
	message   string
	createdAt time.Time
	read      bool

	guard guard.ConstructorGuard
}

// NewNotification creates an unread notification for the given order.
func NewNotification(id, orderID kernel.UUID, message string, createdAt time.Time) (*Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if message == "" {
		return nil, ErrMessageIsRequired
	}

	return &Notification{
		id:        id,
		orderID:   orderID,
		message:   message,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreNotification reconstructs a notification from persistence,
// including its read flag.
func RestoreNotification(id, orderID kernel.UUID, message string, createdAt time.Time, read bool) (*Notification, error) {
	n, err := NewNotification(id, orderID, message, createdAt)
	if err != nil {
		return nil, err
	}
	n.read = read
	return n, nil
}

// Validate ensures the notification was properly constructed.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// OrderID returns the identifier of the order the notification refers to.
func (n *Notification) OrderID() kernel.UUID {
	return n.orderID
}

// Message returns the human-readable message text.
func (n *Notification) Message() string {
	return n.message
}

// CreatedAt returns the creation timestamp.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// Read reports whether the vendor has seen the notification.
func (n *Notification) Read() bool {
	return n.read
}

// MarkRead flags the notification as seen. Marking twice is harmless.
func (n *Notification) MarkRead() {
	n.read = true
}
