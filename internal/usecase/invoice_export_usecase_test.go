package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"estatedesk/internal/domain/entities"
	mock_interfaces "estatedesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func renderableInquiry() entities.Inquiry {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	return entities.Inquiry{
		ID:            "inq-1",
		InvoiceNumber: "INV-2026-00001",
		ClientID:      "client-1",
		Status:        entities.InquiryStatusPending,
		PaymentStatus: entities.PaymentStatusUnpaid,
		StatusHistory: []entities.StatusHistoryEntry{{
			Status:    entities.InquiryStatusPending,
			ChangedBy: "client",
			ChangedAt: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestInvoiceExportUseCase_RenderPDF(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewInvoiceExportUseCase(nil, nil)
		_, err := uc.RenderPDF(context.Background(), " ")
		if !errors.Is(err, ErrInvalidInquiryID) {
			t.Fatalf("expected ErrInvalidInquiryID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		uc := NewInvoiceExportUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "inq-1").Return(entities.Inquiry{}, nil)

		_, err := uc.RenderPDF(context.Background(), "inq-1")
		if !errors.Is(err, ErrInquiryNotFound) {
			t.Fatalf("expected ErrInquiryNotFound, got %v", err)
		}
	})

	t.Run("inconsistent snapshot refused", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*entities.Inquiry)
		}{
			{name: "missing invoice number", mutate: func(i *entities.Inquiry) { i.InvoiceNumber = "" }},
			{name: "empty status history", mutate: func(i *entities.Inquiry) { i.StatusHistory = nil }},
			{name: "unknown status", mutate: func(i *entities.Inquiry) { i.Status = "archived" }},
			{name: "unknown payment status", mutate: func(i *entities.Inquiry) { i.PaymentStatus = "charged" }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
				uc := NewInvoiceExportUseCase(repo, nil)

				broken := renderableInquiry()
				tc.mutate(&broken)
				repo.EXPECT().GetByID(gomock.Any(), "inq-1").Return(broken, nil)

				_, err := uc.RenderPDF(context.Background(), "inq-1")
				if !errors.Is(err, ErrInconsistentInvoice) {
					t.Fatalf("expected ErrInconsistentInvoice, got %v", err)
				}
			})
		}
	})

	t.Run("render success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInquiryRepository(ctrl)
		renderer := mock_interfaces.NewMockIInvoiceRenderer(ctrl)
		uc := NewInvoiceExportUseCase(repo, renderer)

		repo.EXPECT().GetByID(gomock.Any(), "inq-1").Return(renderableInquiry(), nil)
		renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("%PDF-1.4"), nil)

		doc, err := uc.RenderPDF(context.Background(), "inq-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(doc, []byte("%PDF")) {
			t.Fatalf("expected pdf bytes, got %q", doc)
		}
	})
}
