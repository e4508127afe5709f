package commands

import (
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

var (
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
	ErrPhotosAreRequired = errors.New("at least one completion photo is required")
)

// CompleteOrderCommand represents a vendor marking production as finished,
// backed by photos of the completed work.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	photos  []string

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete an order.
// At least one completion photo must be attached.
func NewCompleteOrderCommand(orderID kernel.UUID, photos []string) (CompleteOrderCommand, error) {
	command := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setPhotos(photos),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being completed.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Photos returns the completion photo references.
func (c CompleteOrderCommand) Photos() []string {
	return c.photos
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setPhotos(photos []string) error {
	if len(photos) == 0 {
		return ErrPhotosAreRequired
	}

	c.photos = photos
	return nil
}
