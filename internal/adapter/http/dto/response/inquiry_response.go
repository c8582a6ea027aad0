package response

import (
	"time"

	"estatedesk/internal/domain/entities"
)

type StatusHistoryEntryResponse struct {
	Status    string    `json:"status"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
	Note      string    `json:"note,omitempty"`
}

type InquiryResponse struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoice_number"`

	ClientID    string `json:"client_id"`
	ClientName  string `json:"client_name,omitempty"`
	ClientEmail string `json:"client_email,omitempty"`

	ServiceID    string `json:"service_id"`
	ServiceName  string `json:"service_name"`
	PackageName  string `json:"package_name,omitempty"`
	PackagePrice string `json:"package_price,omitempty"`

	TotalAmount string `json:"total_amount"`
	Message     string `json:"message"`
	Notes       string `json:"notes,omitempty"`
	AdminNotes  string `json:"admin_notes,omitempty"`

	Status        string                       `json:"status"`
	PaymentStatus string                       `json:"payment_status"`
	StatusHistory []StatusHistoryEntryResponse `json:"status_history"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromInquiry(i entities.Inquiry) InquiryResponse {
	history := make([]StatusHistoryEntryResponse, 0, len(i.StatusHistory))
	for _, e := range i.StatusHistory {
		history = append(history, StatusHistoryEntryResponse{
			Status:    string(e.Status),
			ChangedBy: e.ChangedBy,
			ChangedAt: e.ChangedAt,
			Note:      e.Note,
		})
	}
	return InquiryResponse{
		ID:            i.ID,
		InvoiceNumber: i.InvoiceNumber,
		ClientID:      i.ClientID,
		ClientName:    i.ClientName,
		ClientEmail:   i.ClientEmail,
		ServiceID:     i.ServiceID,
		ServiceName:   i.ServiceName,
		PackageName:   i.PackageName,
		PackagePrice:  i.PackagePrice,
		TotalAmount:   i.TotalAmount,
		Message:       i.Message,
		Notes:         i.Notes,
		AdminNotes:    i.AdminNotes,
		Status:        string(i.Status),
		PaymentStatus: string(i.PaymentStatus),
		StatusHistory: history,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func FromInquiries(items []entities.Inquiry) []InquiryResponse {
	out := make([]InquiryResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromInquiry(i))
	}
	return out
}
