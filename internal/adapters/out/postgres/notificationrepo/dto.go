// Package notificationrepo persists vendor notifications.
package notificationrepo

import (
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for notifications.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time
	Read      bool
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		Message:   aggregate.Message(),
		CreatedAt: aggregate.CreatedAt(),
		Read:      aggregate.Read(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(id, orderID, dto.Message, dto.CreatedAt, dto.Read)
}
