package commands

import (
	"context"
	"errors"
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/notification"
	"escrow/internal/core/domain/model/order"
	"escrow/internal/pkg/errs"
)

// CreatePaymentLinkCommandHandler handles the business logic for payment
// link creation. Reads the vendor profile for naming, creates the order in
// pending-payment status with computed amounts and generated terms, and
// records the "new payment link created" notification. The notification is
// part of the creation flow, not of the transition table.
type CreatePaymentLinkCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreatePaymentLinkCommandHandler creates a handler for payment link
// creation. Requires a CreateOrderUoWFactory for transactional persistence.
func NewCreatePaymentLinkCommandHandler(uowFactory CreateOrderUoWFactory) CreatePaymentLinkCommandHandler {
	return CreatePaymentLinkCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment link creation command.
// Uses a transaction to ensure the order and its notification are persisted
// together or rolled back on error.
func (h *CreatePaymentLinkCommandHandler) Handle(ctx context.Context, cmd CreatePaymentLinkCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vendorName, displayName, err := vendorNames(ctx, uow)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.ClientName(), cmd.ClientPhone(), cmd.ServiceType(),
		kernel.NewMoneyFromFloat(cmd.TotalAmount()),
		cmd.AdvancePercentage(),
		cmd.ProductionDeadlineDays(),
		vendorName, displayName,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	created, err := notification.Compose(kernel.NewUUID(), newOrder, notification.EventLinkCreated, now)
	if err != nil {
		return err
	}

	if err = uow.NotificationRepository().Add(ctx, created); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// vendorNames resolves the personal and display names for a new order.
// A missing profile is not an error at this point; the order falls back to
// a generic vendor label.
func vendorNames(ctx context.Context, repos VendorRepoFactory) (string, string, error) {
	profile, err := repos.VendorRepository().GetProfile(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", "", nil
		}
		return "", "", err
	}

	return profile.Name(), profile.DisplayName(), nil
}
