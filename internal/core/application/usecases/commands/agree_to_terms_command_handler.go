package commands

import (
	"context"
	"time"

	"escrow/internal/core/domain/model/notification"
	"escrow/internal/core/domain/model/order"
)

// AgreeToTermsCommandHandler records the client's consent to the service
// terms, moving the order's advance into the reserved state.
type AgreeToTermsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAgreeToTermsCommandHandler creates a handler for terms consent.
func NewAgreeToTermsCommandHandler(uowFactory OrderUoWFactory) AgreeToTermsCommandHandler {
	return AgreeToTermsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reserves the order's advance payment. Consent requires a prior
// advance payment and is accepted at most once per order.
func (h *AgreeToTermsCommandHandler) Handle(ctx context.Context, cmd AgreeToTermsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	return applyOrderTransition(
		ctx, h.uowFactory.Create(), cmd.OrderID(), notification.EventTermsAgreed, now,
		func(aggregate *order.Order) error {
			return aggregate.AgreeToTerms(now)
		},
	)
}
