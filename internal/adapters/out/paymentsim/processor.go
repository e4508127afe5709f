// Package paymentsim simulates a two-phase payment gateway. A payment is
// begun when the client clicks pay and settles after a short delay, which
// lets the rest of the system treat payment confirmation as asynchronous
// without talking to a real gateway.
package paymentsim

import (
	"errors"
	"sync"
	"time"

	"escrow/internal/core/domain/model/kernel"
)

// DefaultSettlementDelay is how long a begun payment stays in flight
// before it becomes due for settlement.
const DefaultSettlementDelay = 2 * time.Second

// Kind distinguishes the two payments in an order's lifecycle.
type Kind string

const (
	// KindAdvance is the upfront escrow payment.
	KindAdvance Kind = "advance"
	// KindFinal is the closing payment after completed work.
	KindFinal Kind = "final"
)

// Validate checks that the kind is one of the known values.
func (k Kind) Validate() error {
	switch k {
	case KindAdvance, KindFinal:
		return nil
	}
	return ErrKindIsInvalid
}

// State describes where a payment is in the simulated flow.
type State string

const (
	// StateNone means no payment of this kind was begun for the order.
	StateNone State = "none"
	// StatePending means the payment is in flight, awaiting settlement.
	StatePending State = "pending"
	// StateSettled means the payment settled and was dispatched.
	StateSettled State = "settled"
)

var ErrKindIsInvalid = errors.New("payment kind must be advance or final")

type paymentKey struct {
	orderID kernel.UUID
	kind    Kind
}

// Payment identifies one in-flight payment.
type Payment struct {
	OrderID kernel.UUID
	Kind    Kind
	DueAt   time.Time
}

// Processor keeps the in-flight and settled payments in memory. All
// methods are safe for concurrent use.
type Processor struct {
	mu      sync.Mutex
	delay   time.Duration
	pending map[paymentKey]time.Time
	settled map[paymentKey]struct{}
}

// NewProcessor creates a payment processor. A non-positive delay falls
// back to DefaultSettlementDelay.
func NewProcessor(delay time.Duration) *Processor {
	if delay <= 0 {
		delay = DefaultSettlementDelay
	}

	return &Processor{
		delay:   delay,
		pending: make(map[paymentKey]time.Time),
		settled: make(map[paymentKey]struct{}),
	}
}

// Begin records a payment as in flight, due for settlement after the
// configured delay. Beginning the same payment again restarts its clock.
func (p *Processor) Begin(orderID kernel.UUID, kind Kind) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := kind.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.pending[paymentKey{orderID: orderID, kind: kind}] = time.Now().UTC().Add(p.delay)
	return nil
}

// Due returns every in-flight payment whose settlement time has passed.
func (p *Processor) Due(now time.Time) []Payment {
	p.mu.Lock()
	defer p.mu.Unlock()

	due := make([]Payment, 0)
	for key, dueAt := range p.pending {
		if !dueAt.After(now) {
			due = append(due, Payment{OrderID: key.orderID, Kind: key.kind, DueAt: dueAt})
		}
	}

	return due
}

// Settle marks an in-flight payment as settled.
func (p *Processor) Settle(orderID kernel.UUID, kind Kind) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := paymentKey{orderID: orderID, kind: kind}
	delete(p.pending, key)
	p.settled[key] = struct{}{}
}

// Discard drops an in-flight payment that could not be applied, so the
// settlement loop does not retry it forever.
func (p *Processor) Discard(orderID kernel.UUID, kind Kind) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.pending, paymentKey{orderID: orderID, kind: kind})
}

// Status reports where the payment of the given kind stands for an order.
func (p *Processor) Status(orderID kernel.UUID, kind Kind) State {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := paymentKey{orderID: orderID, kind: kind}
	if _, ok := p.pending[key]; ok {
		return StatePending
	}
	if _, ok := p.settled[key]; ok {
		return StateSettled
	}
	return StateNone
}
