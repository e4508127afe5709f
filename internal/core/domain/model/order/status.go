package order

import (
	"fmt"

	"escrow/internal/pkg/errs"
)

// Status represents the lifecycle state of an escrow order.
// It implements a state machine with defined transitions so that orders
// always follow the escrow workflow:
//
//	PendingPayment ──> PaymentReserved ──> InProduction ──> FinalPaymentPending ──> FinalPaymentDone
//
// The advance payment itself happens while the order stays in
// PendingPayment; only the client's consent to the terms moves it to
// PaymentReserved. FinalPaymentDone is a terminal state.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingPayment is the initial status when a payment link is created.
	// The client has not yet paid the advance, or has paid it but not yet
	// agreed to the terms.
	PendingPayment

	// PaymentReserved indicates the client paid the advance and consented
	// to the terms; the advance is held in escrow awaiting production.
	PaymentReserved

	// InProduction indicates the vendor started production; the escrowed
	// advance has been released to the vendor.
	InProduction

	// FinalPaymentPending indicates production finished with proof photos;
	// the remaining balance is awaited from the client.
	FinalPaymentPending

	// FinalPaymentDone indicates the client paid the remaining balance.
	// This is a final state with no further transitions allowed.
	FinalPaymentDone
)

// getStatusStrings returns a map of Status values to their wire names.
// The names double as persistence/display identifiers for client links.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "unknown",
		PendingPayment:      "pending_payment",
		PaymentReserved:     "payment_reserved",
		InProduction:        "in_production",
		FinalPaymentPending: "final_payment_pending",
		FinalPaymentDone:    "final_payment_done",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingPayment:      "pending_payment",
		PaymentReserved:     "payment_reserved",
		InProduction:        "in_production",
		FinalPaymentPending: "final_payment_pending",
		FinalPaymentDone:    "final_payment_done",
	}
}

// StatusFromString parses a wire name such as "in_production" into a Status.
// Returns an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, e.g. "payment_reserved".
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == FinalPaymentDone
}

// ValidateAdvancePayable checks that an advance payment may be recorded in
// the current status without performing any transition. Advance payments
// only apply while the order is still PendingPayment.
func (s Status) ValidateAdvancePayable() error {
	if s != PendingPayment {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to pay the advance", s.String()),
		)
	}
	return nil
}

// Reserve transitions the status to PaymentReserved.
//
// Valid transitions:
//   - PendingPayment -> PaymentReserved (client consented to terms)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Reserve() (Status, error) {
	if s != PendingPayment {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to reserve payment", s.String()),
		)
	}

	return PaymentReserved, nil
}

// StartProduction transitions the status to InProduction.
//
// Valid transitions:
//   - PaymentReserved -> InProduction (vendor starts work, escrow released)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) StartProduction() (Status, error) {
	if s != PaymentReserved {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start production", s.String()),
		)
	}

	return InProduction, nil
}

// Complete transitions the status to FinalPaymentPending.
//
// Valid transitions:
//   - InProduction -> FinalPaymentPending (work finished, proof supplied)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Complete() (Status, error) {
	if s != InProduction {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return FinalPaymentPending, nil
}

// PayFinal transitions the status to FinalPaymentDone.
//
// Valid transitions:
//   - FinalPaymentPending -> FinalPaymentDone (client settled the balance)
//
// FinalPaymentDone is terminal; no transition leaves it.
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) PayFinal() (Status, error) {
	if s != FinalPaymentPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to pay the final balance", s.String()),
		)
	}

	return FinalPaymentDone, nil
}
