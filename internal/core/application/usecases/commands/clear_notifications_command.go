package commands

import (
	"context"
)

// ClearNotificationsCommandHandler deletes every vendor notification.
type ClearNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewClearNotificationsCommandHandler creates a handler for clearing
// notifications.
func NewClearNotificationsCommandHandler(uowFactory NotificationUoWFactory) ClearNotificationsCommandHandler {
	return ClearNotificationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes all notifications.
func (h *ClearNotificationsCommandHandler) Handle(ctx context.Context) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NotificationRepository().ClearAll(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
