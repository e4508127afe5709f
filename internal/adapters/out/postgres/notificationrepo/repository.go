package notificationrepo

import (
	"context"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/notification"

	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB, tracker aggregateTracker) *GormNotificationRepository {
	return &GormNotificationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new notification to the database.
func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAll retrieves all notifications, most recent first.
func (r *GormNotificationRepository) GetAll(ctx context.Context) ([]*notification.Notification, error) {
	var dtos []NotificationDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	notifications := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

// MarkAllRead flags every notification as read.
func (r *GormNotificationRepository) MarkAllRead(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("read = ?", false).
		Update("read", true).Error
}

// ClearAll removes every notification.
func (r *GormNotificationRepository) ClearAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&NotificationDTO{}).Error
}
