package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gymdesk/backend/internal/domain/billing"
)

// CreatePaymentRequest is the input for recording a payment
type CreatePaymentRequest struct {
	MemberID         uuid.UUID             `json:"member_id" binding:"required"`
	PlanID           uuid.UUID             `json:"plan_id" binding:"required"`
	Amount           decimal.Decimal       `json:"amount" binding:"required"`
	Method           billing.PaymentMethod `json:"method" binding:"required"`
	GatewayPaymentID string                `json:"gateway_payment_id"`
}

// UpdatePaymentStatusRequest is the input for the manual settlement path
type UpdatePaymentStatusRequest struct {
	Status billing.PaymentStatus `json:"status" binding:"required"`
	Reason string                `json:"reason"`
}

// PaymentResponse is the API representation of a payment
type PaymentResponse struct {
	ID               uuid.UUID             `json:"id"`
	MemberID         uuid.UUID             `json:"member_id"`
	PlanID           uuid.UUID             `json:"plan_id"`
	Amount           decimal.Decimal       `json:"amount"`
	Method           billing.PaymentMethod `json:"method"`
	Status           billing.PaymentStatus `json:"status"`
	GatewayPaymentID string                `json:"gateway_payment_id,omitempty"`
	TransactionDate  time.Time             `json:"transaction_date"`
	SettledAt        *time.Time            `json:"settled_at,omitempty"`
	FailureReason    string                `json:"failure_reason,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
}

// NewPaymentResponse converts a payment aggregate to its API representation
func NewPaymentResponse(payment *billing.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:               payment.ID,
		MemberID:         payment.MemberID,
		PlanID:           payment.PlanID,
		Amount:           payment.Amount,
		Method:           payment.Method,
		Status:           payment.Status,
		GatewayPaymentID: payment.GatewayPaymentID,
		TransactionDate:  payment.TransactionDate,
		SettledAt:        payment.SettledAt,
		FailureReason:    payment.FailureReason,
		CreatedAt:        payment.CreatedAt,
	}
}
