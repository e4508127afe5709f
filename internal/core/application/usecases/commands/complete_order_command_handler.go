package commands

import (
	"context"
	"time"

	"escrow/internal/core/domain/model/notification"
	"escrow/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler records finished production work and opens
// the final payment window for the client.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle attaches completion photos and moves the order into the final
// payment pending state.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	return applyOrderTransition(
		ctx, h.uowFactory.Create(), cmd.OrderID(), notification.EventOrderCompleted, now,
		func(aggregate *order.Order) error {
			return aggregate.Complete(cmd.Photos(), now)
		},
	)
}
