package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingPayment(t *testing.T) *Payment {
	t.Helper()
	payment, err := NewPayment(uuid.New(), uuid.New(), decimal.NewFromInt(50), PaymentMethodGateway)
	require.NoError(t, err)
	payment.ClearDomainEvents()
	return payment
}

func TestNewPayment(t *testing.T) {
	t.Run("creates pending payment", func(t *testing.T) {
		memberID := uuid.New()
		planID := uuid.New()
		payment, err := NewPayment(memberID, planID, decimal.NewFromFloat(49.99), PaymentMethodCard)
		require.NoError(t, err)

		assert.Equal(t, PaymentStatusPending, payment.Status)
		assert.Equal(t, memberID, payment.MemberID)
		assert.Equal(t, planID, payment.PlanID)
		assert.False(t, payment.IsSettled())

		events := payment.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypePaymentCreated, events[0].EventType())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewPayment(uuid.New(), uuid.New(), decimal.Zero, PaymentMethodCash)
		assert.ErrorIs(t, err, ErrPaymentAmountInvalid)
	})
}

func TestPaymentMarkSuccess(t *testing.T) {
	t.Run("settles pending payment", func(t *testing.T) {
		payment := newPendingPayment(t)

		require.NoError(t, payment.MarkSuccess())

		assert.Equal(t, PaymentStatusSuccess, payment.Status)
		assert.NotNil(t, payment.SettledAt)
		assert.True(t, payment.IsSettled())

		events := payment.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypePaymentSucceeded, events[0].EventType())
	})

	t.Run("settled payment cannot be settled again", func(t *testing.T) {
		payment := newPendingPayment(t)
		require.NoError(t, payment.MarkSuccess())

		assert.ErrorIs(t, payment.MarkSuccess(), ErrPaymentNotPending)
		assert.ErrorIs(t, payment.MarkFailed("late failure"), ErrPaymentNotPending)
	})
}

func TestPaymentMarkFailed(t *testing.T) {
	t.Run("settles pending payment as failed", func(t *testing.T) {
		payment := newPendingPayment(t)

		require.NoError(t, payment.MarkFailed("card declined"))

		assert.Equal(t, PaymentStatusFailed, payment.Status)
		assert.Equal(t, "card declined", payment.FailureReason)

		events := payment.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypePaymentFailed, events[0].EventType())
	})

	t.Run("failed payment cannot transition back", func(t *testing.T) {
		payment := newPendingPayment(t)
		require.NoError(t, payment.MarkFailed("card declined"))

		assert.ErrorIs(t, payment.MarkSuccess(), ErrPaymentNotPending)
	})
}
