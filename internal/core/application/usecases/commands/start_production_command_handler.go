package commands

import (
	"context"
	"time"

	"escrow/internal/core/domain/model/notification"
	"escrow/internal/core/domain/model/order"
)

// StartProductionCommandHandler moves a reserved order into production
// and starts its deadline clock.
type StartProductionCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartProductionCommandHandler creates a handler for starting production.
func NewStartProductionCommandHandler(uowFactory OrderUoWFactory) StartProductionCommandHandler {
	return StartProductionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle transitions the order into production. The production deadline
// is anchored to the moment this command succeeds.
func (h *StartProductionCommandHandler) Handle(ctx context.Context, cmd StartProductionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	return applyOrderTransition(
		ctx, h.uowFactory.Create(), cmd.OrderID(), notification.EventProductionStarted, now,
		func(aggregate *order.Order) error {
			return aggregate.StartProduction(now)
		},
	)
}
