package commands

import (
	"errors"
	"strings"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

var (
	ErrCreatePaymentLinkCommandIsNotConstructed = errors.New(
		"CreatePaymentLinkCommand must be created via NewCreatePaymentLinkCommand constructor",
	)
	ErrClientNameIsRequired  = errors.New("client name is required")
	ErrClientPhoneIsRequired = errors.New("client phone is required")
	ErrServiceTypeIsRequired = errors.New("service type is required")
	ErrTotalAmountIsInvalid  = errors.New("total amount must be greater than 0")
	ErrAdvancePctIsInvalid   = errors.New("advance percentage must be between 0 and 100")
	ErrDeadlineDaysIsInvalid = errors.New("production deadline days must be greater than 0")
)

// CreatePaymentLinkCommand represents a vendor's request to create a new
// escrow payment link for a client. Carries the creation form inputs;
// derived amounts and terms are computed by the order aggregate.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreatePaymentLinkCommand(orderID, "Sara", "+96550001122",
//	    "Wedding cake", 1000, 50, 7)
//	if err != nil {
//	    return fmt.Errorf("invalid form data: %w", err)
//	}
//
//	handler := NewCreatePaymentLinkCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create payment link: %w", err)
//	}
type CreatePaymentLinkCommand struct { //nolint:recvcheck //using for validation
	orderID                kernel.UUID
	clientName             string
	clientPhone            string
	serviceType            string
	totalAmount            float64
	advancePercentage      float64
	productionDeadlineDays int

	guard guard.ConstructorGuard
}

// NewCreatePaymentLinkCommand creates a command to register a new payment
// link. Validates that all text fields are non-empty after trimming, the
// total amount is positive, the advance percentage lies within [0, 100],
// and the deadline is a positive number of days.
// Returns an error if any validation fails; no partial command is produced.
func NewCreatePaymentLinkCommand(
	orderID kernel.UUID,
	clientName, clientPhone, serviceType string,
	totalAmount, advancePercentage float64,
	productionDeadlineDays int,
) (CreatePaymentLinkCommand, error) {
	cmd := CreatePaymentLinkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientName(clientName),
		cmd.setClientPhone(clientPhone),
		cmd.setServiceType(serviceType),
		cmd.setTotalAmount(totalAmount),
		cmd.setAdvancePercentage(advancePercentage),
		cmd.setProductionDeadlineDays(productionDeadlineDays),
	); err != nil {
		return CreatePaymentLinkCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePaymentLinkCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentLinkCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreatePaymentLinkCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientName returns the client's name.
func (c CreatePaymentLinkCommand) ClientName() string {
	return c.clientName
}

// ClientPhone returns the client's phone number.
func (c CreatePaymentLinkCommand) ClientPhone() string {
	return c.clientPhone
}

// ServiceType returns the free-text service description.
func (c CreatePaymentLinkCommand) ServiceType() string {
	return c.serviceType
}

// TotalAmount returns the full project cost.
func (c CreatePaymentLinkCommand) TotalAmount() float64 {
	return c.totalAmount
}

// AdvancePercentage returns the advance share in percent.
func (c CreatePaymentLinkCommand) AdvancePercentage() float64 {
	return c.advancePercentage
}

// ProductionDeadlineDays returns the agreed production window in days.
func (c CreatePaymentLinkCommand) ProductionDeadlineDays() int {
	return c.productionDeadlineDays
}

func (c *CreatePaymentLinkCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreatePaymentLinkCommand) setClientName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrClientNameIsRequired
	}

	c.clientName = name
	return nil
}

func (c *CreatePaymentLinkCommand) setClientPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrClientPhoneIsRequired
	}

	c.clientPhone = phone
	return nil
}

func (c *CreatePaymentLinkCommand) setServiceType(serviceType string) error {
	if strings.TrimSpace(serviceType) == "" {
		return ErrServiceTypeIsRequired
	}

	c.serviceType = serviceType
	return nil
}

func (c *CreatePaymentLinkCommand) setTotalAmount(amount float64) error {
	if amount <= 0 {
		return ErrTotalAmountIsInvalid
	}

	c.totalAmount = amount
	return nil
}

func (c *CreatePaymentLinkCommand) setAdvancePercentage(pct float64) error {
	if pct < 0 || pct > 100 {
		return ErrAdvancePctIsInvalid
	}

	c.advancePercentage = pct
	return nil
}

func (c *CreatePaymentLinkCommand) setProductionDeadlineDays(days int) error {
	if days <= 0 {
		return ErrDeadlineDaysIsInvalid
	}

	c.productionDeadlineDays = days
	return nil
}
