package billing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// Payment event types
const (
	EventTypePaymentCreated   = "payment.created"
	EventTypePaymentSucceeded = "payment.succeeded"
	EventTypePaymentFailed    = "payment.failed"
)

// PaymentCreatedEvent is raised when a pending payment is recorded
type PaymentCreatedEvent struct {
	shared.BaseDomainEvent
	MemberID uuid.UUID       `json:"member_id"`
	PlanID   uuid.UUID       `json:"plan_id"`
	Amount   decimal.Decimal `json:"amount"`
	Method   PaymentMethod   `json:"method"`
}

// NewPaymentCreatedEvent creates a new payment created event
func NewPaymentCreatedEvent(payment *Payment) *PaymentCreatedEvent {
	return &PaymentCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentCreated, "Payment", payment.ID),
		MemberID:        payment.MemberID,
		PlanID:          payment.PlanID,
		Amount:          payment.Amount,
		Method:          payment.Method,
	}
}

// PaymentSucceededEvent is raised when a payment settles successfully
type PaymentSucceededEvent struct {
	shared.BaseDomainEvent
	MemberID uuid.UUID       `json:"member_id"`
	PlanID   uuid.UUID       `json:"plan_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// NewPaymentSucceededEvent creates a new payment succeeded event
func NewPaymentSucceededEvent(payment *Payment) *PaymentSucceededEvent {
	return &PaymentSucceededEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentSucceeded, "Payment", payment.ID),
		MemberID:        payment.MemberID,
		PlanID:          payment.PlanID,
		Amount:          payment.Amount,
	}
}

// PaymentFailedEvent is raised when a payment settles as failed
type PaymentFailedEvent struct {
	shared.BaseDomainEvent
	MemberID uuid.UUID `json:"member_id"`
	Reason   string    `json:"reason,omitempty"`
}

// NewPaymentFailedEvent creates a new payment failed event
func NewPaymentFailedEvent(payment *Payment) *PaymentFailedEvent {
	return &PaymentFailedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentFailed, "Payment", payment.ID),
		MemberID:        payment.MemberID,
		Reason:          payment.FailureReason,
	}
}
