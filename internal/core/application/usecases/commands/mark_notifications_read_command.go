package commands

import (
	"context"
)

// MarkNotificationsReadCommandHandler flags every vendor notification
// as read.
type MarkNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationsReadCommandHandler creates a handler for marking
// notifications read.
func NewMarkNotificationsReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationsReadCommandHandler {
	return MarkNotificationsReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks all notifications read.
func (h *MarkNotificationsReadCommandHandler) Handle(ctx context.Context) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NotificationRepository().MarkAllRead(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
