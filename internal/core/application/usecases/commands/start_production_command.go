package commands

import (
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

var ErrStartProductionCommandIsNotConstructed = errors.New(
	"StartProductionCommand must be created via NewStartProductionCommand constructor",
)

// StartProductionCommand represents a vendor starting work on an order
// whose advance payment has been reserved.
type StartProductionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartProductionCommand creates a command to begin production.
func NewStartProductionCommand(orderID kernel.UUID) (StartProductionCommand, error) {
	command := StartProductionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return StartProductionCommand{}, err
	}
	command.orderID = orderID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartProductionCommand) Validate() error {
	return c.guard.Validate(ErrStartProductionCommandIsNotConstructed)
}

// OrderID returns the identifier of the order entering production.
func (c StartProductionCommand) OrderID() kernel.UUID {
	return c.orderID
}
