package notification

import (
	"fmt"
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"
	"escrow/internal/pkg/errs"
)

// Event identifies the order lifecycle event a notification describes.
type Event int

const (
	// EventUnknown is an invalid zero value.
	EventUnknown Event = iota

	// EventLinkCreated - the vendor created a new payment link.
	EventLinkCreated

	// EventAdvancePaid - the client paid the advance.
	EventAdvancePaid

	// EventTermsAgreed - the client consented; the advance is reserved.
	EventTermsAgreed

	// EventProductionStarted - the vendor started production; escrow released.
	EventProductionStarted

	// EventOrderCompleted - the vendor finished production with proof photos.
	EventOrderCompleted

	// EventFinalPaid - the client paid the remaining balance.
	EventFinalPaid

	// EventDeadlinePassed - an in-production order ran past its deadline.
	EventDeadlinePassed
)

// Compose produces the notification record for a lifecycle event on the
// given order. It is a pure function: each event has exactly one message
// template, interpolating the client's name and the relevant amount.
func Compose(id kernel.UUID, o *order.Order, event Event, now time.Time) (*Notification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	message, err := messageFor(o, event)
	if err != nil {
		return nil, err
	}

	return NewNotification(id, o.ID(), message, now)
}

func messageFor(o *order.Order, event Event) (string, error) {
	switch event {
	case EventLinkCreated:
		return fmt.Sprintf("New payment link created for %s", o.ClientName()), nil
	case EventAdvancePaid:
		return fmt.Sprintf("%s made advance payment of %s", o.ClientName(), o.AdvanceAmount().Dollar()), nil
	case EventTermsAgreed:
		return fmt.Sprintf("%s agreed to terms. Payment reserved.", o.ClientName()), nil
	case EventProductionStarted:
		return fmt.Sprintf("Production started for order %s", o.ClientName()), nil
	case EventOrderCompleted:
		return fmt.Sprintf("Order completed for %s. Awaiting final payment.", o.ClientName()), nil
	case EventFinalPaid:
		return fmt.Sprintf("%s completed final payment of %s", o.ClientName(), o.RemainingAmount().Dollar()), nil
	case EventDeadlinePassed:
		return fmt.Sprintf("Production deadline passed for %s's order", o.ClientName()), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"notification event is invalid",
			fmt.Errorf("%d is not a valid event", event),
		)
	}
}
