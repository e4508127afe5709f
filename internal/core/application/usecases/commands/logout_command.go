package commands

import (
	"context"
)

// LogoutCommandHandler clears the vendor's session flag.
type LogoutCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewLogoutCommandHandler creates a handler for vendor logouts.
func NewLogoutCommandHandler(uowFactory VendorUoWFactory) LogoutCommandHandler {
	return LogoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resets the session flag. Logging out twice is harmless.
func (h *LogoutCommandHandler) Handle(ctx context.Context) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.VendorRepository().SetLoggedIn(ctx, false); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
