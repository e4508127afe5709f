package queries

import (
	"context"

	"escrow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNotificationsQueryHandler retrieves the notification feed from the
// database.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for notification
// queries.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the notification feed query.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) (GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			message,
			created_at,
			read
		FROM notifications
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return GetNotificationsQueryResponse{}, err
	}
	defer rows.Close()

	response := GetNotificationsQueryResponse{
		Notifications: make([]NotificationResponse, 0),
	}

	for rows.Next() {
		var (
			resp    NotificationResponse
			id      uuid.UUID
			orderID uuid.UUID
		)

		err = rows.Scan(&id, &orderID, &resp.Message, &resp.CreatedAt, &resp.Read)
		if err != nil {
			return GetNotificationsQueryResponse{}, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return GetNotificationsQueryResponse{}, err
		}

		resp.OrderID, err = kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return GetNotificationsQueryResponse{}, err
		}

		if !resp.Read {
			response.UnreadCount++
		}
		response.Notifications = append(response.Notifications, resp)
	}

	if err = rows.Err(); err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	return response, nil
}
