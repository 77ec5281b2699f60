package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/gymdesk/backend/internal/domain/billing"
)

// HMACGateway adapts a payment provider that signs webhook bodies with
// hex-encoded HMAC-SHA256 over the raw payload. The expected payload
// shape is:
//
//	{ "id": "...", "status": "...", "metadata": { "member_id": "..." } }
type HMACGateway struct {
	name   string
	secret []byte
}

// NewHMACGateway creates a gateway adapter with a shared webhook secret
func NewHMACGateway(name, secret string) *HMACGateway {
	return &HMACGateway{
		name:   name,
		secret: []byte(secret),
	}
}

// Name returns the gateway identifier
func (g *HMACGateway) Name() string {
	return g.name
}

// VerifyCallback verifies the signature over the raw request body.
// Comparison is constant-time.
func (g *HMACGateway) VerifyCallback(ctx context.Context, body []byte, signature string) error {
	if signature == "" {
		return billing.ErrInvalidSignature
	}

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return billing.ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, g.secret)
	mac.Write(body)
	expected := mac.Sum(nil)

	if !hmac.Equal(provided, expected) {
		return billing.ErrInvalidSignature
	}
	return nil
}

type callbackPayload struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Metadata struct {
		MemberID string `json:"member_id"`
	} `json:"metadata"`
}

// ParseCallback extracts the normalized notification from the raw body
func (g *HMACGateway) ParseCallback(ctx context.Context, body []byte) (*billing.CallbackNotification, error) {
	var payload callbackPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, billing.ErrMalformedPayload
	}

	if payload.ID == "" || payload.Status == "" || payload.Metadata.MemberID == "" {
		return nil, billing.ErrMissingFields
	}

	return &billing.CallbackNotification{
		GatewayPaymentID: payload.ID,
		GatewayStatus:    payload.Status,
		MemberID:         payload.Metadata.MemberID,
		RawPayload:       body,
	}, nil
}

// Sign computes the signature the provider would send for a body.
// Used by tests and the sandbox tooling.
func (g *HMACGateway) Sign(body []byte) string {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Ensure HMACGateway implements the gateway port
var _ billing.PaymentGateway = (*HMACGateway)(nil)
