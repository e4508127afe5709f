package commands

import (
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

var ErrPayFinalCommandIsNotConstructed = errors.New(
	"PayFinalCommand must be created via NewPayFinalCommand constructor",
)

// PayFinalCommand represents a client settling the remaining balance of
// a completed order.
type PayFinalCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPayFinalCommand creates a command to record the final payment.
func NewPayFinalCommand(orderID kernel.UUID) (PayFinalCommand, error) {
	command := PayFinalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return PayFinalCommand{}, err
	}
	command.orderID = orderID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PayFinalCommand) Validate() error {
	return c.guard.Validate(ErrPayFinalCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being settled.
func (c PayFinalCommand) OrderID() kernel.UUID {
	return c.orderID
}
