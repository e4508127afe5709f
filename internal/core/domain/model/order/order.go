package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrAdvanceAlreadyPaid is returned when an advance payment is recorded twice.
	ErrAdvanceAlreadyPaid = errors.New("advance payment has already been made")

	// ErrAdvanceNotPaid is returned when the client consents to terms before paying the advance.
	ErrAdvanceNotPaid = errors.New("advance payment has not been made yet")

	// ErrConsentAlreadyGranted is returned when consent is granted twice.
	ErrConsentAlreadyGranted = errors.New("client consent has already been granted")

	// ErrCompletionPhotosRequired is returned when an order is completed without proof photos.
	ErrCompletionPhotosRequired = errors.New("at least one completion photo is required")
)

// Order represents one escrow engagement between a vendor and a client.
// It is the aggregate root that manages the lifecycle from payment link
// creation through advance escrow, production, and final settlement.
//
// Order follows these invariants:
//   - advanceAmount + remainingAmount == totalAmount, to currency precision
//   - 0 <= advancePercentage <= 100
//   - an optional event timestamp is present iff the corresponding
//     transition has occurred
//   - updatedAt >= createdAt; updatedAt is refreshed by every mutation
//   - status transitions follow the rules defined on Status
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. Orders are never deleted; a finished
// engagement simply rests in its terminal status.
type Order struct {
	id kernel.UUID

	clientName  string
	clientPhone string
	serviceType string
	vendorName  string

	totalAmount       kernel.Money
	advancePercentage float64
	advanceAmount     kernel.Money
	remainingAmount   kernel.Money

	// terms is generated once at creation and stored verbatim;
	// it is never regenerated.
	terms string

	productionDeadlineDays int

	status        Status
	clientConsent bool

	createdAt time.Time
	updatedAt time.Time

	advancePaymentAt    *time.Time
	productionStartedAt *time.Time
	completedAt         *time.Time
	finalPaymentAt      *time.Time

	completionPhotos []string

	isConstructed bool
}

// NewOrder creates a new Order in PendingPayment status with computed
// advance/remaining amounts and generated terms text. This is the only way
// to create a valid Order from user input.
//
// Validation rules:
//   - clientName, clientPhone, serviceType non-empty after trimming
//   - totalAmount strictly positive
//   - advancePercentage within [0, 100]
//   - productionDeadlineDays at least 1
//
// vendorDisplayName is the name used in the generated terms (the vendor's
// business name when set, otherwise the personal name); vendorName is the
// personal name recorded on the order. Rejects with an error and creates no
// partial order if any rule fails.
func NewOrder(
	id kernel.UUID,
	clientName, clientPhone, serviceType string,
	totalAmount kernel.Money,
	advancePercentage float64,
	productionDeadlineDays int,
	vendorName, vendorDisplayName string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        PendingPayment,
		isConstructed: true,
		createdAt:     now,
		updatedAt:     now,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientName(clientName),
		o.setClientPhone(clientPhone),
		o.setServiceType(serviceType),
		o.setTotalAmount(totalAmount),
		o.setAdvancePercentage(advancePercentage),
		o.setProductionDeadlineDays(productionDeadlineDays),
	); err != nil {
		return nil, err
	}

	o.vendorName = strings.TrimSpace(vendorName)
	if o.vendorName == "" {
		o.vendorName = fallbackVendorName
	}

	o.advanceAmount = o.totalAmount.Percent(o.advancePercentage)
	o.remainingAmount = o.totalAmount.Sub(o.advanceAmount)
	o.terms = generateTerms(termsInput{
		VendorDisplayName:      strings.TrimSpace(vendorDisplayName),
		ServiceType:            o.serviceType,
		ClientName:             o.clientName,
		TotalAmount:            o.totalAmount,
		AdvancePercentage:      o.advancePercentage,
		AdvanceAmount:          o.advanceAmount,
		RemainingAmount:        o.remainingAmount,
		ProductionDeadlineDays: o.productionDeadlineDays,
	})

	return o, nil
}

// RestoreOrderParams carries the full persisted state of an order for
// rehydration by repository adapters. No validation beyond identifier and
// status is applied; the data is trusted to have passed through NewOrder
// and the transition methods originally.
type RestoreOrderParams struct {
	ID                     kernel.UUID
	ClientName             string
	ClientPhone            string
	ServiceType            string
	VendorName             string
	TotalAmount            kernel.Money
	AdvancePercentage      float64
	AdvanceAmount          kernel.Money
	RemainingAmount        kernel.Money
	Terms                  string
	ProductionDeadlineDays int
	Status                 Status
	ClientConsent          bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
	AdvancePaymentAt       *time.Time
	ProductionStartedAt    *time.Time
	CompletedAt            *time.Time
	FinalPaymentAt         *time.Time
	CompletionPhotos       []string
}

// RestoreOrder reconstructs an Order aggregate from persistence.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	if err := p.ID.Validate(); err != nil {
		return nil, err
	}
	if err := p.Status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:                     p.ID,
		clientName:             p.ClientName,
		clientPhone:            p.ClientPhone,
		serviceType:            p.ServiceType,
		vendorName:             p.VendorName,
		totalAmount:            p.TotalAmount,
		advancePercentage:      p.AdvancePercentage,
		advanceAmount:          p.AdvanceAmount,
		remainingAmount:        p.RemainingAmount,
		terms:                  p.Terms,
		productionDeadlineDays: p.ProductionDeadlineDays,
		status:                 p.Status,
		clientConsent:          p.ClientConsent,
		createdAt:              p.CreatedAt,
		updatedAt:              p.UpdatedAt,
		advancePaymentAt:       p.AdvancePaymentAt,
		productionStartedAt:    p.ProductionStartedAt,
		completedAt:            p.CompletedAt,
		finalPaymentAt:         p.FinalPaymentAt,
		completionPhotos:       p.CompletionPhotos,
		isConstructed:          true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientName returns the client's name.
func (o *Order) ClientName() string {
	return o.clientName
}

// ClientPhone returns the client's phone number.
func (o *Order) ClientPhone() string {
	return o.clientPhone
}

// ServiceType returns the free-text description of the service.
func (o *Order) ServiceType() string {
	return o.serviceType
}

// VendorName returns the vendor's personal name as recorded at creation.
func (o *Order) VendorName() string {
	return o.vendorName
}

// TotalAmount returns the full project cost.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// AdvancePercentage returns the advance share in percent, within [0, 100].
func (o *Order) AdvancePercentage() float64 {
	return o.advancePercentage
}

// AdvanceAmount returns the escrowed advance, rounded to currency precision.
func (o *Order) AdvanceAmount() kernel.Money {
	return o.advanceAmount
}

// RemainingAmount returns the balance due on completion. It is always the
// exact subtractive complement of the advance.
func (o *Order) RemainingAmount() kernel.Money {
	return o.remainingAmount
}

// Terms returns the terms text generated at creation.
func (o *Order) Terms() string {
	return o.terms
}

// ProductionDeadlineDays returns the agreed production window in days.
func (o *Order) ProductionDeadlineDays() int {
	return o.productionDeadlineDays
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ClientConsent reports whether the client has agreed to the terms.
func (o *Order) ClientConsent() bool {
	return o.clientConsent
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AdvancePaymentAt returns when the advance was paid, or nil if it has not
// happened yet. Absence always means "not yet happened", never a placeholder.
func (o *Order) AdvancePaymentAt() *time.Time {
	return o.advancePaymentAt
}

// ProductionStartedAt returns when production started, or nil.
func (o *Order) ProductionStartedAt() *time.Time {
	return o.productionStartedAt
}

// CompletedAt returns when production was completed, or nil.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// FinalPaymentAt returns when the final balance was paid, or nil.
func (o *Order) FinalPaymentAt() *time.Time {
	return o.finalPaymentAt
}

// CompletionPhotos returns the ordered proof photo references supplied on
// completion. Empty until the order reaches FinalPaymentPending.
func (o *Order) CompletionPhotos() []string {
	return o.completionPhotos
}

// DeadlineAt returns the production deadline: the production start plus the
// agreed number of days. The second return value is false while production
// has not started, in which case the deadline is treated as unbounded (such
// orders sort last in deadline ordering).
func (o *Order) DeadlineAt() (time.Time, bool) {
	if o.productionStartedAt == nil {
		return time.Time{}, false
	}
	return o.productionStartedAt.Add(time.Duration(o.productionDeadlineDays) * 24 * time.Hour), true
}

// IsPastDeadline reports whether production has started and the deadline
// has passed without the order leaving InProduction.
func (o *Order) IsPastDeadline(now time.Time) bool {
	deadline, ok := o.DeadlineAt()
	if !ok {
		return false
	}
	return o.status == InProduction && now.After(deadline)
}

// PayAdvance records the client's advance payment.
//
// Business rules:
//   - the order must still be in PendingPayment
//   - the advance must not have been paid before (ErrAdvanceAlreadyPaid)
//
// The status does not change; only the advance-payment timestamp is set.
// Consent to the terms is a separate, subsequent step.
func (o *Order) PayAdvance(now time.Time) error {
	if err := o.status.ValidateAdvancePayable(); err != nil {
		return err
	}

	if o.advancePaymentAt != nil {
		return ErrAdvanceAlreadyPaid
	}

	paidAt := now
	o.advancePaymentAt = &paidAt
	o.touch(now)
	return nil
}

// AgreeToTerms records the client's consent and reserves the advance in
// escrow, moving the order to PaymentReserved.
//
// Business rules:
//   - the advance must already be paid (ErrAdvanceNotPaid)
//   - consent must not have been granted before (ErrConsentAlreadyGranted)
//   - the order must be in PendingPayment
func (o *Order) AgreeToTerms(now time.Time) error {
	if o.advancePaymentAt == nil {
		return ErrAdvanceNotPaid
	}

	if o.clientConsent {
		return ErrConsentAlreadyGranted
	}

	newStatus, err := o.status.Reserve()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.clientConsent = true
	o.touch(now)
	return nil
}

// StartProduction releases the escrowed advance to the vendor and moves the
// order to InProduction, recording the production start timestamp. The order
// must be in PaymentReserved.
func (o *Order) StartProduction(now time.Time) error {
	newStatus, err := o.status.StartProduction()
	if err != nil {
		return err
	}

	o.status = newStatus
	startedAt := now
	o.productionStartedAt = &startedAt
	o.touch(now)
	return nil
}

// Complete marks production as finished with proof photos and moves the
// order to FinalPaymentPending.
//
// Business rules:
//   - the order must be in InProduction
//   - at least one completion photo reference must be supplied
//     (ErrCompletionPhotosRequired)
func (o *Order) Complete(photos []string, now time.Time) error {
	if err := validateCompletionPhotos(photos); err != nil {
		return err
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	completedAt := now
	o.completedAt = &completedAt
	o.completionPhotos = append([]string(nil), photos...)
	o.touch(now)
	return nil
}

// PayFinal records the client's final payment and moves the order to its
// terminal FinalPaymentDone status. The order must be in FinalPaymentPending.
func (o *Order) PayFinal(now time.Time) error {
	newStatus, err := o.status.PayFinal()
	if err != nil {
		return err
	}

	o.status = newStatus
	paidAt := now
	o.finalPaymentAt = &paidAt
	o.touch(now)
	return nil
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now
}

func validateCompletionPhotos(photos []string) error {
	if len(photos) == 0 {
		return ErrCompletionPhotosRequired
	}
	for _, p := range photos {
		if strings.TrimSpace(p) == "" {
			return errs.NewValueIsInvalidErrorWithCause(
				"completion photo is invalid",
				fmt.Errorf("photo reference must not be blank"),
			)
		}
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("client name")
	}
	o.clientName = name
	return nil
}

func (o *Order) setClientPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("client phone")
	}
	o.clientPhone = phone
	return nil
}

func (o *Order) setServiceType(serviceType string) error {
	serviceType = strings.TrimSpace(serviceType)
	if serviceType == "" {
		return errs.NewValueIsRequiredError("service type")
	}
	o.serviceType = serviceType
	return nil
}

func (o *Order) setTotalAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"total amount is invalid",
			fmt.Errorf("%s is not greater than 0", amount),
		)
	}
	o.totalAmount = amount
	return nil
}

func (o *Order) setAdvancePercentage(pct float64) error {
	if pct < 0 || pct > 100 {
		return errs.NewValueIsOutOfRangeError("advance percentage", pct, 0, 100)
	}
	o.advancePercentage = pct
	return nil
}

func (o *Order) setProductionDeadlineDays(days int) error {
	if days <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"production deadline is invalid",
			fmt.Errorf("%d is not greater than 0", days),
		)
	}
	o.productionDeadlineDays = days
	return nil
}
