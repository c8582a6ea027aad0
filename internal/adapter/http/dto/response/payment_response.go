package response

import (
	"time"

	"estatedesk/internal/domain/entities"
)

type PaymentResponse struct {
	ID        string    `json:"id"`
	InquiryID string    `json:"inquiry_id"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPayment(p entities.InquiryPayment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		InquiryID:          p.InquiryID,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromPayments(items []entities.InquiryPayment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPayment(p))
	}
	return out
}
