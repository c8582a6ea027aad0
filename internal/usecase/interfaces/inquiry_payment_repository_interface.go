package interfaces

import (
	"context"

	"estatedesk/internal/domain/entities"
)

// IInquiryPaymentRepository abstracts DynamoDB persistence for InquiryPayment.

type IInquiryPaymentRepository interface {
	Create(ctx context.Context, p entities.InquiryPayment) (entities.InquiryPayment, error)
	GetByID(ctx context.Context, id string) (entities.InquiryPayment, error)
	ListByInquiryID(ctx context.Context, inquiryID string) ([]entities.InquiryPayment, error)
	UpdateStatus(ctx context.Context, id string, status entities.InquiryPaymentStatus) (entities.InquiryPayment, error)
}
