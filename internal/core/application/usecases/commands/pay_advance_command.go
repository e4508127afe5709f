package commands

import (
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

var ErrPayAdvanceCommandIsNotConstructed = errors.New(
	"PayAdvanceCommand must be created via NewPayAdvanceCommand constructor",
)

// PayAdvanceCommand represents a client's request to pay the advance
// portion of an order.
type PayAdvanceCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPayAdvanceCommand creates a command to record an advance payment.
func NewPayAdvanceCommand(orderID kernel.UUID) (PayAdvanceCommand, error) {
	command := PayAdvanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return PayAdvanceCommand{}, err
	}
	command.orderID = orderID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PayAdvanceCommand) Validate() error {
	return c.guard.Validate(ErrPayAdvanceCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c PayAdvanceCommand) OrderID() kernel.UUID {
	return c.orderID
}
