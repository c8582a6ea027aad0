package entities

import (
	"encoding/json"
	"time"
)

// InquiryPaymentStatus mirrors the gateway outcome of a payment attempt.

type InquiryPaymentStatus string

const (
	InquiryPaymentStatusPending  InquiryPaymentStatus = "pending"
	InquiryPaymentStatusApproved InquiryPaymentStatus = "approved"
	InquiryPaymentStatusDenied   InquiryPaymentStatus = "denied"
	InquiryPaymentStatusRefunded InquiryPaymentStatus = "refunded"
)

// InquiryPayment is one payment attempt recorded against an inquiry.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (inquiry_id-index): inquiry_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original gateway response (JSON) for
//     traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging.

type InquiryPayment struct {
	ID        string               `json:"id"`
	InquiryID string               `json:"inquiry_id"`
	Date      time.Time            `json:"date"`
	Status    InquiryPaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
