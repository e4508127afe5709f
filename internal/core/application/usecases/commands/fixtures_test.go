package commands_test

import (
	"testing"
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// newTestOrder builds an order and walks it through transitions until it
// reaches the wanted status.
func newTestOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	now := time.Now().UTC()
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), "Sara", "+966501234567", "Custom cake",
		kernel.NewMoneyFromFloat(1000), 50, 7,
		"Noura", "Noura Cakes", now,
	)
	require.NoError(t, err)

	if status == order.PendingPayment {
		return aggregate
	}

	require.NoError(t, aggregate.PayAdvance(now))
	require.NoError(t, aggregate.AgreeToTerms(now))
	if status == order.PaymentReserved {
		return aggregate
	}

	require.NoError(t, aggregate.StartProduction(now))
	if status == order.InProduction {
		return aggregate
	}

	require.NoError(t, aggregate.Complete([]string{"photo-1.jpg"}, now))
	if status == order.FinalPaymentPending {
		return aggregate
	}

	require.NoError(t, aggregate.PayFinal(now))
	require.Equal(t, status, aggregate.Status())
	return aggregate
}
