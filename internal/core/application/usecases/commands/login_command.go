package commands

import (
	"context"
	"errors"

	"escrow/internal/core/domain/model/vendors"
	"escrow/internal/pkg/errs"
	"escrow/internal/pkg/guard"
)

var (
	ErrLoginCommandIsNotConstructed = errors.New(
		"LoginCommand must be created via NewLoginCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
)

// LoginCommand represents a vendor signing in. Authentication is a
// placeholder: any non-empty username is accepted and a default profile
// is created on first login.
type LoginCommand struct { //nolint:recvcheck //using for validation
	username string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a command to sign the vendor in.
func NewLoginCommand(username string) (LoginCommand, error) {
	command := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if username == "" {
		return LoginCommand{}, ErrUsernameIsRequired
	}
	command.username = username

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Username returns the login name.
func (c LoginCommand) Username() string {
	return c.username
}

// LoginCommandHandler signs the vendor in, seeding a default profile on
// the first login.
type LoginCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewLoginCommandHandler creates a handler for vendor logins.
func NewLoginCommandHandler(uowFactory VendorUoWFactory) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets the session flag. An existing profile is left untouched.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) error {
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

	_, err := vendorRepo.GetProfile(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		profile, profileErr := vendors.DefaultProfile(cmd.Username())
		if profileErr != nil {
			return profileErr
		}

		if err = vendorRepo.SaveProfile(ctx, profile); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	if err = vendorRepo.SetLoggedIn(ctx, true); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
