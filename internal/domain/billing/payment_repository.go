package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// PaymentRepository defines the persistence interface for payments
type PaymentRepository interface {
	shared.Repository[Payment]

	// FindByGatewayPaymentID finds a payment by the gateway's identifier
	FindByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (*Payment, error)

	// FindByMember returns payments belonging to a member
	FindByMember(ctx context.Context, memberID uuid.UUID, filter shared.Filter) ([]Payment, error)

	// FindByStatus returns payments in the given status
	FindByStatus(ctx context.Context, status PaymentStatus, filter shared.Filter) ([]Payment, error)
}
