package interfaces

import (
	"context"
	"errors"

	"estatedesk/internal/domain/entities"
)

var (
	// ErrDuplicateInvoiceNumber signals that the invoice-number claim written
	// with a new inquiry collided with an existing one. Callers regenerate
	// the number and retry.
	ErrDuplicateInvoiceNumber = errors.New("invoice number already claimed")

	// ErrVersionConflict signals a lost optimistic-lock race on update.
	// Callers re-read the inquiry and re-apply their change.
	ErrVersionConflict = errors.New("inquiry version conflict")
)

// IInquiryRepository abstracts DynamoDB persistence for Inquiry.
//
// The inquiry service must be able to:
//   - create an inquiry atomically with its invoice-number claim
//   - read by id, by invoice number, by owning client and by status
//   - update lifecycle fields under an optimistic version check
//   - hard-delete an inquiry (admin only)
//
// Reads follow the zero-value convention: a missing record comes back as an
// empty entity with a nil error, and the use case maps that to not-found.

type IInquiryRepository interface {
	Create(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error)
	GetByID(ctx context.Context, id string) (entities.Inquiry, error)
	GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (entities.Inquiry, error)
	ListByClientID(ctx context.Context, clientID string, limit int32) ([]entities.Inquiry, error)
	ListByStatus(ctx context.Context, status entities.InquiryStatus, limit int32) ([]entities.Inquiry, error)
	Update(ctx context.Context, i entities.Inquiry, expectedVersion int64) (entities.Inquiry, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ICounterRepository hands out monotonically increasing sequence values from
// a durable atomic counter, one counter per name.
type ICounterRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
