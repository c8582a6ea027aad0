package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"estatedesk/internal/domain/entities"
	"estatedesk/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrInvalidPaymentInquiryID    = errors.New("invalid inquiry_id")
	ErrInvalidProviderPayload     = errors.New("invalid payment provider payload")
	ErrInquiryNotPayable          = errors.New("inquiry is cancelled")
	ErrInquiryAlreadyPaid         = errors.New("inquiry is already paid")
	ErrPaymentNotRefundable       = errors.New("payment is not refundable")
	ErrPaymentGatewayNotSet       = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IInquiryPaymentUseCase encapsulates charging and refunding inquiries.
//
// Behavior:
//   - CreateAndApprove charges the gateway, records the payment and flips the
//     inquiry payment status to paid on an approved outcome.
//   - Refund reverses an approved payment and flips the inquiry to refunded.

type IInquiryPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, inquiryID string, payload json.RawMessage) (entities.InquiryPayment, error)
	Refund(ctx context.Context, inquiryID, paymentID string) (entities.InquiryPayment, error)
	GetByID(ctx context.Context, id string) (entities.InquiryPayment, error)
	ListByInquiryID(ctx context.Context, inquiryID string) ([]entities.InquiryPayment, error)
}

type InquiryPaymentUseCase struct {
	repo        interfaces.IInquiryPaymentRepository
	inquiryRepo interfaces.IInquiryRepository
	gateway     interfaces.IPaymentGateway
	now         func() time.Time
}

var _ IInquiryPaymentUseCase = (*InquiryPaymentUseCase)(nil)

func NewInquiryPaymentUseCase(repo interfaces.IInquiryPaymentRepository, inquiryRepo interfaces.IInquiryRepository, gateway interfaces.IPaymentGateway) *InquiryPaymentUseCase {
	return &InquiryPaymentUseCase{repo: repo, inquiryRepo: inquiryRepo, gateway: gateway, now: func() time.Time { return time.Now().UTC() }}
}

func (u *InquiryPaymentUseCase) CreateAndApprove(ctx context.Context, inquiryID string, payload json.RawMessage) (entities.InquiryPayment, error) {
	inquiryID = strings.TrimSpace(inquiryID)
	if inquiryID == "" {
		return entities.InquiryPayment{}, ErrInvalidPaymentInquiryID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return entities.InquiryPayment{}, ErrInvalidProviderPayload
	}
	if u.gateway == nil {
		return entities.InquiryPayment{}, ErrPaymentGatewayNotSet
	}

	inquiry, err := u.inquiryRepo.GetByID(ctx, inquiryID)
	if err != nil {
		return entities.InquiryPayment{}, err
	}
	if inquiry.ID == "" {
		return entities.InquiryPayment{}, ErrInquiryNotFound
	}
	if inquiry.Status == entities.InquiryStatusCancelled {
		return entities.InquiryPayment{}, ErrInquiryNotPayable
	}
	if inquiry.PaymentStatus != entities.PaymentStatusUnpaid {
		return entities.InquiryPayment{}, ErrInquiryAlreadyPaid
	}

	// Stamp the linkage the provider echoes back; reconciliation relies on
	// external_reference matching the inquiry id.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = inquiry.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = "Invoice " + inquiry.InvoiceNumber
		}
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	log.Printf("[payment][usecase] charging gateway inquiry_id=%s invoice_number=%s", inquiry.ID, inquiry.InvoiceNumber)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed inquiry_id=%s err=%v", inquiry.ID, err)
		if isGatewayUnauthorized(err) {
			return entities.InquiryPayment{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.InquiryPayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.InquiryPayment{}, err
	}

	status := entities.InquiryPaymentStatusDenied
	if providerStatus == "approved" {
		status = entities.InquiryPaymentStatusApproved
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed inquiry_id=%s err=%v", inquiry.ID, err)
	}

	p := entities.InquiryPayment{
		ID:                 providerPaymentID,
		InquiryID:          inquiry.ID,
		Date:               u.now(),
		Status:             status,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.InquiryPayment{}, err
	}

	if status == entities.InquiryPaymentStatusApproved {
		if err := u.flipPaymentStatus(ctx, inquiry.ID, entities.PaymentStatusPaid); err != nil {
			// The payment record exists; the inquiry flip failing is surfaced
			// so the caller can retry the admin-side update.
			return entities.InquiryPayment{}, err
		}
	}

	log.Printf("[payment][usecase] payment recorded inquiry_id=%s payment_id=%s status=%s", inquiry.ID, created.ID, created.Status)
	return created, nil
}

func (u *InquiryPaymentUseCase) Refund(ctx context.Context, inquiryID, paymentID string) (entities.InquiryPayment, error) {
	inquiryID = strings.TrimSpace(inquiryID)
	paymentID = strings.TrimSpace(paymentID)
	if inquiryID == "" {
		return entities.InquiryPayment{}, ErrInvalidPaymentInquiryID
	}
	if paymentID == "" {
		return entities.InquiryPayment{}, ErrPaymentNotFound
	}
	if u.gateway == nil {
		return entities.InquiryPayment{}, ErrPaymentGatewayNotSet
	}

	p, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.InquiryPayment{}, err
	}
	if p.ID == "" || p.InquiryID != inquiryID {
		return entities.InquiryPayment{}, ErrPaymentNotFound
	}
	if p.Status != entities.InquiryPaymentStatusApproved {
		return entities.InquiryPayment{}, ErrPaymentNotRefundable
	}

	if _, err := u.gateway.RefundPayment(ctx, p.ID); err != nil {
		log.Printf("[payment][usecase] gateway refund failed payment_id=%s err=%v", p.ID, err)
		return entities.InquiryPayment{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, p.ID, entities.InquiryPaymentStatusRefunded)
	if err != nil {
		return entities.InquiryPayment{}, err
	}

	if err := u.flipPaymentStatus(ctx, inquiryID, entities.PaymentStatusRefunded); err != nil {
		return entities.InquiryPayment{}, err
	}

	log.Printf("[payment][usecase] refund recorded inquiry_id=%s payment_id=%s", inquiryID, p.ID)
	return updated, nil
}

func (u *InquiryPaymentUseCase) GetByID(ctx context.Context, id string) (entities.InquiryPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InquiryPayment{}, ErrPaymentNotFound
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InquiryPayment{}, err
	}
	if p.ID == "" {
		return entities.InquiryPayment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *InquiryPaymentUseCase) ListByInquiryID(ctx context.Context, inquiryID string) ([]entities.InquiryPayment, error) {
	inquiryID = strings.TrimSpace(inquiryID)
	if inquiryID == "" {
		return nil, ErrInvalidPaymentInquiryID
	}
	return u.repo.ListByInquiryID(ctx, inquiryID)
}

// Mercado Pago surfaces HTTP failures as JSON error strings; match on the
// fields that identify the class.
func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

// flipPaymentStatus moves the inquiry's payment axis under the version check,
// re-reading on conflict. The status axis is untouched, so no history entry
// is produced.
func (u *InquiryPaymentUseCase) flipPaymentStatus(ctx context.Context, inquiryID string, status entities.PaymentStatus) error {
	var lastErr error
	for attempt := 1; attempt <= updateConflictRetries; attempt++ {
		inquiry, err := u.inquiryRepo.GetByID(ctx, inquiryID)
		if err != nil {
			return err
		}
		if inquiry.ID == "" {
			return ErrInquiryNotFound
		}

		expected := inquiry.Version
		if err := inquiry.ApplyPaymentStatusChange(status, u.now()); err != nil {
			return err
		}

		if _, err := u.inquiryRepo.Update(ctx, inquiry, expected); err == nil {
			return nil
		} else if !errors.Is(err, interfaces.ErrVersionConflict) {
			return err
		} else {
			lastErr = err
		}
	}
	return lastErr
}
