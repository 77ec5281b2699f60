package billing

import (
	"context"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// Gateway-specific errors
var (
	ErrInvalidSignature = shared.NewDomainError("INVALID_SIGNATURE", "Webhook signature verification failed")
	ErrMalformedPayload = shared.NewDomainError("MALFORMED_PAYLOAD", "Webhook payload could not be parsed")
	ErrMissingFields    = shared.NewDomainError("MISSING_FIELDS", "Webhook payload is missing required fields")
)

// CallbackNotification is the normalized form of a gateway webhook
// payload after signature verification and parsing
type CallbackNotification struct {
	GatewayPaymentID string
	GatewayStatus    string
	MemberID         string
	RawPayload       []byte
}

// PaymentGateway is the port to an external payment provider. The
// concrete adapter verifies webhook authenticity and normalizes the
// provider's payload shape.
type PaymentGateway interface {
	// Name returns the gateway identifier used in routing and logs
	Name() string

	// VerifyCallback checks the authenticity signature over the raw
	// request body. Returns ErrInvalidSignature on mismatch.
	VerifyCallback(ctx context.Context, body []byte, signature string) error

	// ParseCallback extracts the normalized notification from the raw
	// body. Returns ErrMalformedPayload or ErrMissingFields.
	ParseCallback(ctx context.Context, body []byte) (*CallbackNotification, error)
}

// MapGatewayStatus maps a provider status string to the internal
// payment status. Unrecognized statuses map to pending so an unknown
// intermediate state never settles a payment.
func MapGatewayStatus(gatewayStatus string) PaymentStatus {
	switch gatewayStatus {
	case "paid", "success", "completed":
		return PaymentStatusSuccess
	case "failed", "error", "cancelled":
		return PaymentStatusFailed
	default:
		return PaymentStatusPending
	}
}
