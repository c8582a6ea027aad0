package usecase

import (
	"context"
	"errors"
	"strings"

	"estatedesk/internal/domain/entities"
	"estatedesk/internal/usecase/interfaces"
)

var ErrInconsistentInvoice = errors.New("inquiry snapshot is not renderable")

// IInvoiceExportUseCase produces the downloadable invoice document for an
// inquiry.

type IInvoiceExportUseCase interface {
	RenderPDF(ctx context.Context, inquiryID string) ([]byte, error)
}

type InvoiceExportUseCase struct {
	repo     interfaces.IInquiryRepository
	renderer interfaces.IInvoiceRenderer
}

var _ IInvoiceExportUseCase = (*InvoiceExportUseCase)(nil)

func NewInvoiceExportUseCase(repo interfaces.IInquiryRepository, renderer interfaces.IInvoiceRenderer) *InvoiceExportUseCase {
	return &InvoiceExportUseCase{repo: repo, renderer: renderer}
}

func (u *InvoiceExportUseCase) RenderPDF(ctx context.Context, inquiryID string) ([]byte, error) {
	inquiryID = strings.TrimSpace(inquiryID)
	if inquiryID == "" {
		return nil, ErrInvalidInquiryID
	}

	inquiry, err := u.repo.GetByID(ctx, inquiryID)
	if err != nil {
		return nil, err
	}
	if inquiry.ID == "" {
		return nil, ErrInquiryNotFound
	}

	// Every field the renderer touches must be present. A record violating
	// this was corrupted outside the service; refuse to render it.
	if inquiry.InvoiceNumber == "" || len(inquiry.StatusHistory) == 0 ||
		!entities.ValidInquiryStatus(inquiry.Status) || !entities.ValidPaymentStatus(inquiry.PaymentStatus) {
		return nil, ErrInconsistentInvoice
	}

	return u.renderer.Render(ctx, inquiry)
}
