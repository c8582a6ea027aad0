package entities

import (
	"errors"
	"fmt"
	"time"
)

// InquiryStatus represents the commercial lifecycle of a service inquiry.
//
// Domain notes:
//   - The inquiry service is the source of truth for inquiry/payment state.
//   - The natural progression is pending -> approved -> paid -> in-progress
//     -> completed, with cancelled reachable from any non-terminal status.
//   - completed and cancelled are terminal: no further status change is
//     accepted once either is reached.

type InquiryStatus string

const (
	InquiryStatusPending    InquiryStatus = "pending"
	InquiryStatusApproved   InquiryStatus = "approved"
	InquiryStatusPaid       InquiryStatus = "paid"
	InquiryStatusInProgress InquiryStatus = "in-progress"
	InquiryStatusCompleted  InquiryStatus = "completed"
	InquiryStatusCancelled  InquiryStatus = "cancelled"
)

// PaymentStatus tracks the payment axis of an inquiry. It is independent of
// InquiryStatus: an inquiry can be completed and still unpaid.

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

var (
	ErrInvalidStatus            = errors.New("invalid inquiry status")
	ErrInvalidPaymentStatus     = errors.New("invalid payment status")
	ErrInvalidTransition        = errors.New("inquiry status is terminal")
	ErrInvalidPaymentTransition = errors.New("invalid payment status transition")
)

// StatusHistoryEntry is one immutable audit-trail record. Entries are only
// ever appended, oldest first; the first entry is written at creation time.
type StatusHistoryEntry struct {
	Status    InquiryStatus `json:"status"`
	ChangedBy string        `json:"changed_by"`
	ChangedAt time.Time     `json:"changed_at"`
	Note      string        `json:"note,omitempty"`
}

// Inquiry is a client's request for a service package, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id, sort key created_at
//   - GSI2 (status-index): status
//   - invoice_number uniqueness is enforced through a claim item written in
//     the same transaction as the inquiry (see the repository).
//
// Monetary representation:
//   - TotalAmount is a free-form display string (e.g. "$5,000"); the service
//     performs no arithmetic on it.
//
type Inquiry struct {
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

	Status        InquiryStatus        `json:"status"`
	PaymentStatus PaymentStatus        `json:"payment_status"`
	StatusHistory []StatusHistoryEntry `json:"status_history"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Version is the optimistic-lock counter; bumped on every update.
	Version int64 `json:"-"`
}

// ValidInquiryStatus reports whether s is one of the persisted status values.
func ValidInquiryStatus(s InquiryStatus) bool {
	switch s {
	case InquiryStatusPending, InquiryStatusApproved, InquiryStatusPaid,
		InquiryStatusInProgress, InquiryStatusCompleted, InquiryStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is one of the persisted payment values.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

// Terminal reports whether no further status change is accepted from s.
func (s InquiryStatus) Terminal() bool {
	return s == InquiryStatusCompleted || s == InquiryStatusCancelled
}

// ApplyStatusChange validates and applies a status transition.
//
// Contract:
//   - newStatus must be a known status value.
//   - A change away from a terminal status is rejected.
//   - Setting the current status again is a no-op for the history (no
//     duplicate entry) but still refreshes UpdatedAt.
//   - Any actual change appends exactly one history entry.
func (i *Inquiry) ApplyStatusChange(newStatus InquiryStatus, changedBy, note string, now time.Time) error {
	if !ValidInquiryStatus(newStatus) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}
	if newStatus == i.Status {
		i.UpdatedAt = now
		return nil
	}
	if i.Status.Terminal() {
		return fmt.Errorf("%w: %s", ErrInvalidTransition, i.Status)
	}

	i.StatusHistory = append(i.StatusHistory, StatusHistoryEntry{
		Status:    newStatus,
		ChangedBy: changedBy,
		ChangedAt: now,
		Note:      note,
	})
	i.Status = newStatus
	i.UpdatedAt = now
	return nil
}

// ApplyPaymentStatusChange validates and applies a payment-status transition.
// The payment axis only moves forward: unpaid -> paid -> refunded.
func (i *Inquiry) ApplyPaymentStatusChange(newStatus PaymentStatus, now time.Time) error {
	if !ValidPaymentStatus(newStatus) {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, newStatus)
	}
	if newStatus == i.PaymentStatus {
		i.UpdatedAt = now
		return nil
	}

	allowed := false
	switch newStatus {
	case PaymentStatusPaid:
		allowed = i.PaymentStatus == PaymentStatusUnpaid
	case PaymentStatusRefunded:
		allowed = i.PaymentStatus == PaymentStatusPaid
	}
	if !allowed {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidPaymentTransition, i.PaymentStatus, newStatus)
	}

	i.PaymentStatus = newStatus
	i.UpdatedAt = now
	return nil
}

// FormatInvoiceNumber renders the human-readable invoice identifier for a
// yearly sequence value, e.g. INV-2026-00042.
func FormatInvoiceNumber(year int, seq int64) string {
	return fmt.Sprintf("INV-%d-%05d", year, seq)
}
