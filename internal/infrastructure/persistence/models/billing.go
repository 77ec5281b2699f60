package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gymdesk/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// PaymentModel is the persistence model for the Payment domain entity.
type PaymentModel struct {
	AggregateModel
	MemberID         uuid.UUID             `gorm:"type:uuid;not null;index"`
	PlanID           uuid.UUID             `gorm:"type:uuid;not null"`
	Amount           decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	Method           billing.PaymentMethod `gorm:"type:varchar(20);not null"`
	Status           billing.PaymentStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	GatewayPaymentID string                `gorm:"type:varchar(100);index"`
	TransactionDate  time.Time             `gorm:"not null"`
	SettledAt        *time.Time
	FailureReason    string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment entity.
func (m *PaymentModel) ToDomain() *billing.Payment {
	payment := &billing.Payment{
		MemberID:         m.MemberID,
		PlanID:           m.PlanID,
		Amount:           m.Amount,
		Method:           m.Method,
		Status:           m.Status,
		GatewayPaymentID: m.GatewayPaymentID,
		TransactionDate:  m.TransactionDate,
		SettledAt:        m.SettledAt,
		FailureReason:    m.FailureReason,
	}
	m.PopulateAggregateRoot(&payment.BaseAggregateRoot)
	return payment
}

// FromDomain populates the persistence model from a domain Payment entity.
func (m *PaymentModel) FromDomain(p *billing.Payment) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.MemberID = p.MemberID
	m.PlanID = p.PlanID
	m.Amount = p.Amount
	m.Method = p.Method
	m.Status = p.Status
	m.GatewayPaymentID = p.GatewayPaymentID
	m.TransactionDate = p.TransactionDate
	m.SettledAt = p.SettledAt
	m.FailureReason = p.FailureReason
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment entity.
func PaymentModelFromDomain(p *billing.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}
