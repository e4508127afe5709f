package commands

import (
	"context"
	"errors"
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/notification"
	"escrow/internal/core/domain/model/order"
	"escrow/internal/pkg/guard"
)

var ErrRemindDeadlinesCommandIsNotConstructed = errors.New(
	"RemindDeadlinesCommand must be created via NewRemindDeadlinesCommand constructor",
)

// RemindDeadlinesCommand represents a sweep over in-production orders
// whose deadline has passed. The caller supplies the orders it has
// already reminded about so each order triggers at most one reminder.
type RemindDeadlinesCommand struct { //nolint:recvcheck //using for validation
	alreadyReminded map[kernel.UUID]struct{}

	guard guard.ConstructorGuard
}

// NewRemindDeadlinesCommand creates a deadline sweep command.
func NewRemindDeadlinesCommand(alreadyReminded []kernel.UUID) (RemindDeadlinesCommand, error) {
	command := RemindDeadlinesCommand{
		alreadyReminded: make(map[kernel.UUID]struct{}, len(alreadyReminded)),
		guard:           guard.NewConstructorGuard(),
	}

	for _, id := range alreadyReminded {
		if err := id.Validate(); err != nil {
			return RemindDeadlinesCommand{}, err
		}
		command.alreadyReminded[id] = struct{}{}
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemindDeadlinesCommand) Validate() error {
	return c.guard.Validate(ErrRemindDeadlinesCommandIsNotConstructed)
}

// IsAlreadyReminded reports whether a reminder was previously sent for
// the order.
func (c RemindDeadlinesCommand) IsAlreadyReminded(orderID kernel.UUID) bool {
	_, ok := c.alreadyReminded[orderID]
	return ok
}

// RemindDeadlinesCommandHandler emits a notification for each
// in-production order that has run past its deadline.
type RemindDeadlinesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemindDeadlinesCommandHandler creates a handler for deadline sweeps.
func NewRemindDeadlinesCommandHandler(uowFactory OrderUoWFactory) RemindDeadlinesCommandHandler {
	return RemindDeadlinesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle scans orders in production and notifies about ones past their
// deadline, skipping orders the command already knows about. Returns the
// IDs of orders reminded in this sweep.
func (h *RemindDeadlinesCommandHandler) Handle(
	ctx context.Context, cmd RemindDeadlinesCommand,
) ([]kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inProduction, err := uow.OrderRepository().GetAllInStatus(ctx, order.InProduction)
	if err != nil {
		return nil, err
	}

	var reminded []kernel.UUID
	notificationRepo := uow.NotificationRepository()

	for _, aggregate := range inProduction {
		if !aggregate.IsPastDeadline(now) || cmd.IsAlreadyReminded(aggregate.ID()) {
			continue
		}

		emitted, composeErr := notification.Compose(
			kernel.NewUUID(), aggregate, notification.EventDeadlinePassed, now,
		)
		if composeErr != nil {
			return nil, composeErr
		}

		if err = notificationRepo.Add(ctx, emitted); err != nil {
			return nil, err
		}

		reminded = append(reminded, aggregate.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return reminded, nil
}
