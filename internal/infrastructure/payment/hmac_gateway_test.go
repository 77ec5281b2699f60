package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymdesk/backend/internal/domain/billing"
)

func TestHMACGatewayVerifyCallback(t *testing.T) {
	gateway := NewHMACGateway("gympay", "webhook-secret")
	body := []byte(`{"id":"gw-1","status":"paid","metadata":{"member_id":"m-1"}}`)
	ctx := context.Background()

	t.Run("accepts valid signature", func(t *testing.T) {
		assert.NoError(t, gateway.VerifyCallback(ctx, body, gateway.Sign(body)))
	})

	t.Run("rejects missing signature", func(t *testing.T) {
		err := gateway.VerifyCallback(ctx, body, "")
		assert.ErrorIs(t, err, billing.ErrInvalidSignature)
	})

	t.Run("rejects non-hex signature", func(t *testing.T) {
		err := gateway.VerifyCallback(ctx, body, "not-hex!")
		assert.ErrorIs(t, err, billing.ErrInvalidSignature)
	})

	t.Run("rejects signature over different body", func(t *testing.T) {
		other := gateway.Sign([]byte(`{"id":"gw-2"}`))
		err := gateway.VerifyCallback(ctx, body, other)
		assert.ErrorIs(t, err, billing.ErrInvalidSignature)
	})

	t.Run("rejects signature from different secret", func(t *testing.T) {
		forged := NewHMACGateway("gympay", "wrong-secret").Sign(body)
		err := gateway.VerifyCallback(ctx, body, forged)
		assert.ErrorIs(t, err, billing.ErrInvalidSignature)
	})
}

func TestHMACGatewayParseCallback(t *testing.T) {
	gateway := NewHMACGateway("gympay", "webhook-secret")
	ctx := context.Background()

	t.Run("parses well-formed payload", func(t *testing.T) {
		body := []byte(`{"id":"gw-1","status":"paid","metadata":{"member_id":"m-1"}}`)
		notification, err := gateway.ParseCallback(ctx, body)
		require.NoError(t, err)
		assert.Equal(t, "gw-1", notification.GatewayPaymentID)
		assert.Equal(t, "paid", notification.GatewayStatus)
		assert.Equal(t, "m-1", notification.MemberID)
	})

	t.Run("rejects invalid json", func(t *testing.T) {
		_, err := gateway.ParseCallback(ctx, []byte(`{not json`))
		assert.ErrorIs(t, err, billing.ErrMalformedPayload)
	})

	t.Run("rejects missing id", func(t *testing.T) {
		_, err := gateway.ParseCallback(ctx, []byte(`{"status":"paid","metadata":{"member_id":"m-1"}}`))
		assert.ErrorIs(t, err, billing.ErrMissingFields)
	})

	t.Run("rejects missing member id", func(t *testing.T) {
		_, err := gateway.ParseCallback(ctx, []byte(`{"id":"gw-1","status":"paid","metadata":{}}`))
		assert.ErrorIs(t, err, billing.ErrMissingFields)
	})
}
