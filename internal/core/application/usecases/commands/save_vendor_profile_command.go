package commands

import (
	"context"
	"errors"

	"escrow/internal/core/domain/model/vendors"
	"escrow/internal/pkg/errs"
	"escrow/internal/pkg/guard"
)

var (
	ErrSaveVendorProfileCommandIsNotConstructed = errors.New(
		"SaveVendorProfileCommand must be created via NewSaveVendorProfileCommand constructor",
	)
	ErrVendorNameIsRequired = errors.New("vendor name is required")
)

// SaveVendorProfileCommand represents a request to update the vendor's
// profile details. The subscription plan is managed separately and is
// preserved across profile saves.
type SaveVendorProfileCommand struct { //nolint:recvcheck //using for validation
	name         string
	email        string
	phone        string
	businessName string

	guard guard.ConstructorGuard
}

// NewSaveVendorProfileCommand creates a command to save profile details.
func NewSaveVendorProfileCommand(name, email, phone, businessName string) (SaveVendorProfileCommand, error) {
	command := SaveVendorProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if name == "" {
		return SaveVendorProfileCommand{}, ErrVendorNameIsRequired
	}

	command.name = name
	command.email = email
	command.phone = phone
	command.businessName = businessName

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveVendorProfileCommand) Validate() error {
	return c.guard.Validate(ErrSaveVendorProfileCommandIsNotConstructed)
}

// Name returns the vendor's personal name.
func (c SaveVendorProfileCommand) Name() string {
	return c.name
}

// Email returns the vendor's contact email.
func (c SaveVendorProfileCommand) Email() string {
	return c.email
}

// Phone returns the vendor's contact phone.
func (c SaveVendorProfileCommand) Phone() string {
	return c.phone
}

// BusinessName returns the vendor's business name.
func (c SaveVendorProfileCommand) BusinessName() string {
	return c.businessName
}

// SaveVendorProfileCommandHandler upserts the vendor profile while
// keeping the current subscription plan.
type SaveVendorProfileCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewSaveVendorProfileCommandHandler creates a handler for profile saves.
func NewSaveVendorProfileCommandHandler(uowFactory VendorUoWFactory) SaveVendorProfileCommandHandler {
	return SaveVendorProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle writes the profile details. If no profile exists yet, one is
// created with no subscription.
func (h *SaveVendorProfileCommandHandler) Handle(ctx context.Context, cmd SaveVendorProfileCommand) error {
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

	plan := vendors.PlanNone
	current, err := vendorRepo.GetProfile(ctx)
	switch {
	case err == nil:
		plan = current.SubscriptionPlan()
	case errors.Is(err, errs.ErrObjectNotFound):
	default:
		return err
	}

	profile, err := vendors.NewProfile(cmd.Name(), cmd.Email(), cmd.Phone(), cmd.BusinessName(), plan)
	if err != nil {
		return err
	}

	if err = vendorRepo.SaveProfile(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
