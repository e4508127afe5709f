package commands

import (
	"context"
	"time"

	"escrow/internal/core/domain/model/notification"
	"escrow/internal/core/domain/model/order"
)

// PayAdvanceCommandHandler records the advance payment on an order.
// The order stays in pending payment until the client also agrees to
// the service terms.
type PayAdvanceCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPayAdvanceCommandHandler creates a handler for advance payments.
func NewPayAdvanceCommandHandler(uowFactory OrderUoWFactory) PayAdvanceCommandHandler {
	return PayAdvanceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the order's advance as paid and notifies the vendor.
// A second payment attempt on the same order is rejected.
func (h *PayAdvanceCommandHandler) Handle(ctx context.Context, cmd PayAdvanceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	return applyOrderTransition(
		ctx, h.uowFactory.Create(), cmd.OrderID(), notification.EventAdvancePaid, now,
		func(aggregate *order.Order) error {
			return aggregate.PayAdvance(now)
		},
	)
}
