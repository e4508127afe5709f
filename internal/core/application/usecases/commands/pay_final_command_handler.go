package commands

import (
	"context"
	"time"

	"escrow/internal/core/domain/model/notification"
	"escrow/internal/core/domain/model/order"
)

// PayFinalCommandHandler settles the remaining balance of an order,
// closing its lifecycle.
type PayFinalCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPayFinalCommandHandler creates a handler for final payments.
func NewPayFinalCommandHandler(uowFactory OrderUoWFactory) PayFinalCommandHandler {
	return PayFinalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the final payment and moves the order into its terminal
// state.
func (h *PayFinalCommandHandler) Handle(ctx context.Context, cmd PayFinalCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	return applyOrderTransition(
		ctx, h.uowFactory.Create(), cmd.OrderID(), notification.EventFinalPaid, now,
		func(aggregate *order.Order) error {
			return aggregate.PayFinal(now)
		},
	)
}
