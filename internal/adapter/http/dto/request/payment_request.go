package request

import "encoding/json"

// PaymentCreateRequest is the payload for charging an inquiry.
//
// `provider_payload` is forwarded as-is (raw JSON) to support varying
// Mercado Pago schemas.

type PaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}

// PaymentRefundRequest names the payment to reverse.

type PaymentRefundRequest struct {
	PaymentID string `json:"payment_id" binding:"required"`
}
