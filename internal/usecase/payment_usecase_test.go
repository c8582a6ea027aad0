package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"estatedesk/internal/domain/entities"
	mock_interfaces "estatedesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func payableInquiry() entities.Inquiry {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	return entities.Inquiry{
		ID:            "inq-1",
		InvoiceNumber: "INV-2026-00001",
		ClientID:      "client-1",
		Status:        entities.InquiryStatusApproved,
		PaymentStatus: entities.PaymentStatusUnpaid,
		StatusHistory: []entities.StatusHistoryEntry{{
			Status:    entities.InquiryStatusPending,
			ChangedBy: "client",
			ChangedAt: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}
}

func TestInquiryPaymentUseCase_CreateAndApprove(t *testing.T) {
	payload := json.RawMessage(`{"transaction_amount":5000,"payment_method_id":"pix"}`)

	t.Run("invalid inquiry id", func(t *testing.T) {
		uc := NewInquiryPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), " ", payload)
		if !errors.Is(err, ErrInvalidPaymentInquiryID) {
			t.Fatalf("expected ErrInvalidPaymentInquiryID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewInquiryPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "inq-1", json.RawMessage(`{"broken`))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewInquiryPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "inq-1", payload)
		if !errors.Is(err, ErrPaymentGatewayNotSet) {
			t.Fatalf("expected ErrPaymentGatewayNotSet, got %v", err)
		}
	})

	t.Run("inquiry not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inquiries := mock_interfaces.NewMockIInquiryRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInquiryPaymentUseCase(nil, inquiries, gateway)

		inquiries.EXPECT().GetByID(gomock.Any(), "inq-1").Return(entities.Inquiry{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "inq-1", payload)
		if !errors.Is(err, ErrInquiryNotFound) {
			t.Fatalf("expected ErrInquiryNotFound, got %v", err)
		}
	})

	t.Run("cancelled inquiry not payable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inquiries := mock_interfaces.NewMockIInquiryRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInquiryPaymentUseCase(nil, inquiries, gateway)

		cancelled := payableInquiry()
		cancelled.Status = entities.InquiryStatusCancelled
		inquiries.EXPECT().GetByID(gomock.Any(), "inq-1").Return(cancelled, nil)

		_, err := uc.CreateAndApprove(context.Background(), "inq-1", payload)
		if !errors.Is(err, ErrInquiryNotPayable) {
			t.Fatalf("expected ErrInquiryNotPayable, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inquiries := mock_interfaces.NewMockIInquiryRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInquiryPaymentUseCase(nil, inquiries, gateway)

		paid := payableInquiry()
		paid.PaymentStatus = entities.PaymentStatusPaid
		inquiries.EXPECT().GetByID(gomock.Any(), "inq-1").Return(paid, nil)

		_, err := uc.CreateAndApprove(context.Background(), "inq-1", payload)
		if !errors.Is(err, ErrInquiryAlreadyPaid) {
			t.Fatalf("expected ErrInquiryAlreadyPaid, got %v", err)
		}
	})

	t.Run("approved payment flips inquiry to paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIInquiryPaymentRepository(ctrl)
		inquiries := mock_interfaces.NewMockIInquiryRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInquiryPaymentUseCase(payments, inquiries, gateway)

		inquiries.EXPECT().GetByID(gomock.Any(), "inq-1").Return(payableInquiry(), nil).Times(2)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, body json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(body, &m); err != nil {
					t.Fatalf("gateway received invalid body: %v", err)
				}
				if m["external_reference"] != "inq-1" {
					t.Fatalf("expected external_reference stamped, got %v", m["external_reference"])
				}
				if m["description"] != "Invoice INV-2026-00001" {
					t.Fatalf("unexpected description: %v", m["description"])
				}
				return "mp-100", "approved", json.RawMessage(`{"id":"mp-100","status":"approved"}`), nil
			},
		)
		payments.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.InquiryPayment{})).DoAndReturn(
			func(_ context.Context, p entities.InquiryPayment) (entities.InquiryPayment, error) {
				if p.ID != "mp-100" || p.InquiryID != "inq-1" || p.Status != entities.InquiryPaymentStatusApproved {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)
		inquiries.EXPECT().Update(gomock.Any(), gomock.Any(), int64(1)).DoAndReturn(
			func(_ context.Context, i entities.Inquiry, _ int64) (entities.Inquiry, error) {
				if i.PaymentStatus != entities.PaymentStatusPaid {
					t.Fatalf("expected inquiry flipped to paid, got %s", i.PaymentStatus)
				}
				if len(i.StatusHistory) != 1 {
					t.Fatalf("payment flip must not append status history")
				}
				return i, nil
			},
		)

		res, err := uc.CreateAndApprove(context.Background(), "inq-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.InquiryPaymentStatusApproved {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})

	t.Run("denied payment leaves inquiry unpaid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIInquiryPaymentRepository(ctrl)
		inquiries := mock_interfaces.NewMockIInquiryRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInquiryPaymentUseCase(payments, inquiries, gateway)

		inquiries.EXPECT().GetByID(gomock.Any(), "inq-1").Return(payableInquiry(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-101", "rejected", json.RawMessage(`{"id":"mp-101","status":"rejected"}`), nil)
		payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.InquiryPayment) (entities.InquiryPayment, error) {
				if p.Status != entities.InquiryPaymentStatusDenied {
					t.Fatalf("expected denied, got %s", p.Status)
				}
				return p, nil
			},
		)

		res, err := uc.CreateAndApprove(context.Background(), "inq-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.InquiryPaymentStatusDenied {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})

	t.Run("gateway errors are classified", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want error
		}{
			{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
			{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				inquiries := mock_interfaces.NewMockIInquiryRepository(ctrl)
				gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
				uc := NewInquiryPaymentUseCase(nil, inquiries, gateway)

				inquiries.EXPECT().GetByID(gomock.Any(), "inq-1").Return(payableInquiry(), nil)
				gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

				_, err := uc.CreateAndApprove(context.Background(), "inq-1", payload)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("gateway error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inquiries := mock_interfaces.NewMockIInquiryRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInquiryPaymentUseCase(nil, inquiries, gateway)

		inquiries.EXPECT().GetByID(gomock.Any(), "inq-1").Return(payableInquiry(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("provider down"))

		_, err := uc.CreateAndApprove(context.Background(), "inq-1", payload)
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider down, got %v", err)
		}
	})
}

func TestInquiryPaymentUseCase_Refund(t *testing.T) {
	approvedPayment := func() entities.InquiryPayment {
		return entities.InquiryPayment{
			ID:        "mp-100",
			InquiryID: "inq-1",
			Status:    entities.InquiryPaymentStatusApproved,
		}
	}

	t.Run("payment not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIInquiryPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInquiryPaymentUseCase(payments, nil, gateway)

		payments.EXPECT().GetByID(gomock.Any(), "mp-100").Return(entities.InquiryPayment{}, nil)

		_, err := uc.Refund(context.Background(), "inq-1", "mp-100")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("payment belongs to another inquiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIInquiryPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInquiryPaymentUseCase(payments, nil, gateway)

		other := approvedPayment()
		other.InquiryID = "inq-2"
		payments.EXPECT().GetByID(gomock.Any(), "mp-100").Return(other, nil)

		_, err := uc.Refund(context.Background(), "inq-1", "mp-100")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("only approved payments refundable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIInquiryPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInquiryPaymentUseCase(payments, nil, gateway)

		denied := approvedPayment()
		denied.Status = entities.InquiryPaymentStatusDenied
		payments.EXPECT().GetByID(gomock.Any(), "mp-100").Return(denied, nil)

		_, err := uc.Refund(context.Background(), "inq-1", "mp-100")
		if !errors.Is(err, ErrPaymentNotRefundable) {
			t.Fatalf("expected ErrPaymentNotRefundable, got %v", err)
		}
	})

	t.Run("refund success flips inquiry to refunded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIInquiryPaymentRepository(ctrl)
		inquiries := mock_interfaces.NewMockIInquiryRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInquiryPaymentUseCase(payments, inquiries, gateway)

		payments.EXPECT().GetByID(gomock.Any(), "mp-100").Return(approvedPayment(), nil)
		gateway.EXPECT().RefundPayment(gomock.Any(), "mp-100").Return(json.RawMessage(`{"status":"refunded"}`), nil)
		refunded := approvedPayment()
		refunded.Status = entities.InquiryPaymentStatusRefunded
		payments.EXPECT().UpdateStatus(gomock.Any(), "mp-100", entities.InquiryPaymentStatusRefunded).Return(refunded, nil)

		paidInquiry := payableInquiry()
		paidInquiry.PaymentStatus = entities.PaymentStatusPaid
		inquiries.EXPECT().GetByID(gomock.Any(), "inq-1").Return(paidInquiry, nil)
		inquiries.EXPECT().Update(gomock.Any(), gomock.Any(), int64(1)).DoAndReturn(
			func(_ context.Context, i entities.Inquiry, _ int64) (entities.Inquiry, error) {
				if i.PaymentStatus != entities.PaymentStatusRefunded {
					t.Fatalf("expected refunded, got %s", i.PaymentStatus)
				}
				return i, nil
			},
		)

		res, err := uc.Refund(context.Background(), "inq-1", "mp-100")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.InquiryPaymentStatusRefunded {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})

	t.Run("gateway refund error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIInquiryPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInquiryPaymentUseCase(payments, nil, gateway)

		payments.EXPECT().GetByID(gomock.Any(), "mp-100").Return(approvedPayment(), nil)
		gateway.EXPECT().RefundPayment(gomock.Any(), "mp-100").Return(nil, errors.New("provider down"))

		_, err := uc.Refund(context.Background(), "inq-1", "mp-100")
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider down, got %v", err)
		}
	})
}

func TestInquiryPaymentUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewInquiryPaymentUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIInquiryPaymentRepository(ctrl)
		uc := NewInquiryPaymentUseCase(payments, nil, nil)
		payments.EXPECT().GetByID(gomock.Any(), "mp-100").Return(entities.InquiryPayment{ID: "mp-100"}, nil)

		res, err := uc.GetByID(context.Background(), " mp-100 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "mp-100" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestInquiryPaymentUseCase_ListByInquiryID(t *testing.T) {
	t.Run("invalid inquiry id", func(t *testing.T) {
		uc := NewInquiryPaymentUseCase(nil, nil, nil)
		_, err := uc.ListByInquiryID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentInquiryID) {
			t.Fatalf("expected ErrInvalidPaymentInquiryID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIInquiryPaymentRepository(ctrl)
		uc := NewInquiryPaymentUseCase(payments, nil, nil)
		payments.EXPECT().ListByInquiryID(gomock.Any(), "inq-1").Return([]entities.InquiryPayment{{ID: "mp-100"}}, nil)

		res, err := uc.ListByInquiryID(context.Background(), " inq-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 {
			t.Fatalf("expected 1 payment, got %d", len(res))
		}
	})
}
