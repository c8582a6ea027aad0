package request

import "strings"

// CreateInquiryRequest is the client-facing creation payload. total_amount is
// a display string (e.g. "$5,000"); the service performs no arithmetic on it.
type CreateInquiryRequest struct {
	ClientID    string `json:"client_id" binding:"required"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ServiceID   string `json:"service_id" binding:"required"`
	PackageName string `json:"package_name"`
	Message     string `json:"message" binding:"required"`
	TotalAmount string `json:"total_amount" binding:"required"`
	ChangedBy   string `json:"changed_by"`
}

// UpdateInquiryRequest is the admin mutation payload. Absent fields are left
// untouched. client_id is accepted only so the handler can reject attempts to
// reassign ownership with a clear message.
type UpdateInquiryRequest struct {
	ClientID      string `json:"client_id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	TotalAmount   string `json:"total_amount"`
	AdminNotes    string `json:"admin_notes"`
	Notes         string `json:"notes"`
	Note          string `json:"note"`
	ChangedBy     string `json:"changed_by"`
}

func (r UpdateInquiryRequest) HasChanges() bool {
	return strings.TrimSpace(r.Status) != "" ||
		strings.TrimSpace(r.PaymentStatus) != "" ||
		strings.TrimSpace(r.TotalAmount) != "" ||
		strings.TrimSpace(r.AdminNotes) != "" ||
		strings.TrimSpace(r.Notes) != ""
}
