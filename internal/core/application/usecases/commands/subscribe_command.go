package commands

import (
	"context"
	"errors"

	"escrow/internal/core/domain/model/vendors"
	"escrow/internal/pkg/guard"
)

var (
	ErrSubscribeCommandIsNotConstructed = errors.New(
		"SubscribeCommand must be created via NewSubscribeCommand constructor",
	)
	ErrPlanIsRequired = errors.New("subscription plan is required")
)

// SubscribeCommand represents a vendor choosing a subscription plan.
type SubscribeCommand struct { //nolint:recvcheck //using for validation
	plan vendors.SubscriptionPlan

	guard guard.ConstructorGuard
}

// NewSubscribeCommand creates a command to subscribe to a plan.
func NewSubscribeCommand(plan vendors.SubscriptionPlan) (SubscribeCommand, error) {
	command := SubscribeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := plan.Validate(); err != nil {
		return SubscribeCommand{}, err
	}
	if !plan.IsSubscribed() {
		return SubscribeCommand{}, ErrPlanIsRequired
	}
	command.plan = plan

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubscribeCommand) Validate() error {
	return c.guard.Validate(ErrSubscribeCommandIsNotConstructed)
}

// Plan returns the chosen subscription plan.
func (c SubscribeCommand) Plan() vendors.SubscriptionPlan {
	return c.plan
}

// SubscribeCommandHandler applies a subscription plan to the vendor
// profile.
type SubscribeCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewSubscribeCommandHandler creates a handler for plan subscriptions.
func NewSubscribeCommandHandler(uowFactory VendorUoWFactory) SubscribeCommandHandler {
	return SubscribeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle subscribes the vendor's profile to the chosen plan. The profile
// must exist, which login guarantees.
func (h *SubscribeCommandHandler) Handle(ctx context.Context, cmd SubscribeCommand) error {
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

	vendorRepo := uow.VendorRepository()
	profile, err := vendorRepo.GetProfile(ctx)
	if err != nil {
		return err
	}

	if err = profile.Subscribe(cmd.Plan()); err != nil {
		return err
	}

	if err = vendorRepo.SaveProfile(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
