package notification_test

import (
	"testing"
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/notification"
	"escrow/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paidOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"Sara", "+96550001122", "Wedding cake",
		kernel.NewMoneyFromFloat(1000), 50, 7,
		"Janna", "Sweet Crumbs",
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func TestNewNotification(t *testing.T) {
	t.Run("creates unread notification", func(t *testing.T) {
		now := time.Now()
		n, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(), "hello", now)

		require.NoError(t, err)
		require.NoError(t, n.Validate())
		assert.False(t, n.Read())
		assert.Equal(t, now, n.CreatedAt())
	})

	t.Run("rejects empty message", func(t *testing.T) {
		_, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(), "", time.Now())
		require.ErrorIs(t, err, notification.ErrMessageIsRequired)
	})

	t.Run("rejects zero identifiers", func(t *testing.T) {
		var zero kernel.UUID
		_, err := notification.NewNotification(zero, kernel.NewUUID(), "m", time.Now())
		require.Error(t, err)

		_, err = notification.NewNotification(kernel.NewUUID(), zero, "m", time.Now())
		require.Error(t, err)
	})
}

func TestNotification_MarkRead(t *testing.T) {
	n, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(), "m", time.Now())
	require.NoError(t, err)

	n.MarkRead()
	assert.True(t, n.Read())

	n.MarkRead()
	assert.True(t, n.Read())
}

func TestNotification_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var n notification.Notification
		require.ErrorIs(t, n.Validate(), notification.ErrNotificationIsNotConstructed)
	})

	t.Run("nil is invalid", func(t *testing.T) {
		var n *notification.Notification
		require.ErrorIs(t, n.Validate(), notification.ErrNotificationIsNotConstructed)
	})
}

func TestCompose(t *testing.T) {
	o := paidOrder(t)
	now := time.Now()

	cases := []struct {
		event    notification.Event
		expected string
	}{
		{notification.EventLinkCreated, "New payment link created for Sara"},
		{notification.EventAdvancePaid, "Sara made advance payment of $500.00"},
		{notification.EventTermsAgreed, "Sara agreed to terms. Payment reserved."},
		{notification.EventProductionStarted, "Production started for order Sara"},
		{notification.EventOrderCompleted, "Order completed for Sara. Awaiting final payment."},
		{notification.EventFinalPaid, "Sara completed final payment of $500.00"},
		{notification.EventDeadlinePassed, "Production deadline passed for Sara's order"},
	}

	for _, tc := range cases {
		t.Run(tc.expected, func(t *testing.T) {
			n, err := notification.Compose(kernel.NewUUID(), o, tc.event, now)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, n.Message())
			assert.True(t, n.OrderID().IsEqual(o.ID()))
			assert.False(t, n.Read())
		})
	}

	t.Run("rejects unknown event", func(t *testing.T) {
		_, err := notification.Compose(kernel.NewUUID(), o, notification.EventUnknown, now)
		require.Error(t, err)
	})

	t.Run("rejects unconstructed order", func(t *testing.T) {
		var bad order.Order
		_, err := notification.Compose(kernel.NewUUID(), &bad, notification.EventLinkCreated, now)
		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
