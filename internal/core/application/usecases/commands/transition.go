package commands

import (
	"context"
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/notification"
	"escrow/internal/core/domain/model/order"
)

// applyOrderTransition runs one lifecycle transition inside a unit of work:
// load the order, apply the mutation, write it back with an optimistic
// status check, and append the transition's notification. The status
// snapshot taken before the mutation guards against two actors racing on
// the same order between read and write.
func applyOrderTransition(
	ctx context.Context,
	uow OrderUoW,
	orderID kernel.UUID,
	event notification.Event,
	now time.Time,
	mutate func(*order.Order) error,
) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	expectedStatus := aggregate.Status()
	if err = mutate(aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	emitted, err := notification.Compose(kernel.NewUUID(), aggregate, event, now)
	if err != nil {
		return err
	}

	if err = uow.NotificationRepository().Add(ctx, emitted); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
