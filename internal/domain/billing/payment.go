package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// PaymentStatus represents the state of a payment
type PaymentStatus string

// Payment statuses. Pending transitions to Success or Failed exactly
// once; both are terminal.
const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

// Payment methods
const (
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodGateway PaymentMethod = "gateway"
)

// Payment-specific errors
var (
	ErrPaymentNotFound      = shared.NewDomainError("PAYMENT_NOT_FOUND", "Payment not found")
	ErrPaymentNotPending    = shared.NewDomainError("PAYMENT_NOT_PENDING", "Payment has already been settled")
	ErrPaymentAmountInvalid = shared.NewDomainError("PAYMENT_AMOUNT_INVALID", "Payment amount must be positive")
	ErrPaymentStatusInvalid = shared.NewDomainError("PAYMENT_STATUS_INVALID", "Target payment status must be success or failed")
)

// Payment is the billing aggregate root. Gateway payments carry the
// gateway's own payment id so webhook callbacks can be matched to the
// pending row they settle.
type Payment struct {
	shared.BaseAggregateRoot
	MemberID         uuid.UUID
	PlanID           uuid.UUID
	Amount           decimal.Decimal
	Method           PaymentMethod
	Status           PaymentStatus
	GatewayPaymentID string
	TransactionDate  time.Time
	SettledAt        *time.Time
	FailureReason    string
}

// NewPayment creates a pending payment
func NewPayment(memberID, planID uuid.UUID, amount decimal.Decimal, method PaymentMethod) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrPaymentAmountInvalid
	}

	payment := &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		MemberID:          memberID,
		PlanID:            planID,
		Amount:            amount,
		Method:            method,
		Status:            PaymentStatusPending,
		TransactionDate:   time.Now(),
	}

	payment.AddDomainEvent(NewPaymentCreatedEvent(payment))
	return payment, nil
}

// AttachGatewayPaymentID records the gateway's identifier for this
// payment so the webhook callback can find it
func (p *Payment) AttachGatewayPaymentID(gatewayPaymentID string) {
	p.GatewayPaymentID = gatewayPaymentID
}

// MarkSuccess settles the payment as successful. Only pending payments
// can be settled.
func (p *Payment) MarkSuccess() error {
	if p.Status != PaymentStatusPending {
		return ErrPaymentNotPending
	}
	now := time.Now()
	p.Status = PaymentStatusSuccess
	p.SettledAt = &now
	p.IncrementVersion()
	p.AddDomainEvent(NewPaymentSucceededEvent(p))
	return nil
}

// MarkFailed settles the payment as failed with an optional reason
func (p *Payment) MarkFailed(reason string) error {
	if p.Status != PaymentStatusPending {
		return ErrPaymentNotPending
	}
	now := time.Now()
	p.Status = PaymentStatusFailed
	p.SettledAt = &now
	p.FailureReason = reason
	p.IncrementVersion()
	p.AddDomainEvent(NewPaymentFailedEvent(p))
	return nil
}

// IsSettled reports whether the payment reached a terminal status
func (p *Payment) IsSettled() bool {
	return p.Status != PaymentStatusPending
}
