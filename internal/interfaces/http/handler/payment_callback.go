package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	billingapp "github.com/gymdesk/backend/internal/application/billing"
)

// SignatureHeader carries the gateway's HMAC signature over the raw
// request body
const SignatureHeader = "X-Gateway-Signature"

// PaymentCallbackHandler handles the payment gateway webhook. The
// endpoint is called by the external gateway and authenticates with
// the webhook signature instead of a bearer token.
type PaymentCallbackHandler struct {
	BaseHandler
	callbackService *billingapp.PaymentCallbackService
}

// NewPaymentCallbackHandler creates a new PaymentCallbackHandler
func NewPaymentCallbackHandler(callbackService *billingapp.PaymentCallbackService) *PaymentCallbackHandler {
	return &PaymentCallbackHandler{callbackService: callbackService}
}

// HandleCallback processes a gateway payment notification.
//
// Signature or parse failures reject with 400 so the gateway knows the
// delivery was bad. Anything after that point is acknowledged with
// 200 {"received": true} even if applying the settlement failed;
// retrying an accepted callback would not help the gateway.
// POST /api/v1/payments/callback
func (h *PaymentCallbackHandler) HandleCallback(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.BadRequest(c, "Failed to read request body")
		return
	}

	signature := c.GetHeader(SignatureHeader)

	result, err := h.callbackService.ProcessCallback(c.Request.Context(), body, signature)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
