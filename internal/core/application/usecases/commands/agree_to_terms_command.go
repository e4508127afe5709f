package commands

import (
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

var ErrAgreeToTermsCommandIsNotConstructed = errors.New(
	"AgreeToTermsCommand must be created via NewAgreeToTermsCommand constructor",
)

// AgreeToTermsCommand represents a client accepting the service terms
// after paying the advance.
type AgreeToTermsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAgreeToTermsCommand creates a command to record terms consent.
func NewAgreeToTermsCommand(orderID kernel.UUID) (AgreeToTermsCommand, error) {
	command := AgreeToTermsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return AgreeToTermsCommand{}, err
	}
	command.orderID = orderID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AgreeToTermsCommand) Validate() error {
	return c.guard.Validate(ErrAgreeToTermsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being agreed to.
func (c AgreeToTermsCommand) OrderID() kernel.UUID {
	return c.orderID
}
