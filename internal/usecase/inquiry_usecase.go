package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"estatedesk/internal/domain/entities"
	"estatedesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInquiryNotFound    = errors.New("inquiry not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrInvalidInquiryID   = errors.New("invalid inquiry id")
	ErrInvalidClientID    = errors.New("invalid client_id")
	ErrInvalidServiceID   = errors.New("invalid service_id")
	ErrUnknownPackage     = errors.New("unknown service package")
	ErrMissingMessage     = errors.New("missing message")
	ErrMissingTotalAmount = errors.New("missing total_amount")
	ErrMissingChangedBy   = errors.New("missing changed_by")
	ErrEmptyUpdate        = errors.New("empty update")
	ErrClientReassignment = errors.New("client_id cannot be changed")
	ErrDuplicateInvoice   = errors.New("could not assign a unique invoice number")
)

const (
	invoiceCounterPrefix    = "invoice"
	createInvoiceRetries    = 3
	updateConflictRetries   = 3
	defaultListLimit        = 50
	maxListLimit            = 200
	defaultCreationActor    = "client"
	creationHistoryNoteText = "inquiry created"
)

// CreateInquiryInput is the client-facing creation command.
type CreateInquiryInput struct {
	ClientID    string
	ClientName  string
	ClientEmail string
	ServiceID   string
	PackageName string
	Message     string
	TotalAmount string
	ChangedBy   string
}

// UpdateInquiryInput is the admin mutation command. Empty fields are left
// untouched; ChangedBy is required whenever Status is present.
type UpdateInquiryInput struct {
	ClientID      string
	Status        string
	PaymentStatus string
	TotalAmount   string
	AdminNotes    string
	Notes         string
	Note          string
	ChangedBy     string
}

func (in UpdateInquiryInput) empty() bool {
	return in.Status == "" && in.PaymentStatus == "" && in.TotalAmount == "" &&
		in.AdminNotes == "" && in.Notes == ""
}

// IInquiryUseCase exposes the inquiry lifecycle operations.
//
// These operations map to the public surface:
//   - client submits a service inquiry => CreateInquiry()
//   - admin status/payment/amount/notes edits => UpdateInquiry()
//   - client dashboard => ListByClient()
//   - admin board filtering => ListByStatus()

type IInquiryUseCase interface {
	CreateInquiry(ctx context.Context, in CreateInquiryInput) (entities.Inquiry, error)
	UpdateInquiry(ctx context.Context, id string, in UpdateInquiryInput) (entities.Inquiry, error)
	GetByID(ctx context.Context, id string) (entities.Inquiry, error)
	GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (entities.Inquiry, error)
	ListByClient(ctx context.Context, clientID string, limit int32) ([]entities.Inquiry, error)
	ListByStatus(ctx context.Context, status string, limit int32) ([]entities.Inquiry, error)
	Delete(ctx context.Context, id string) error
}

type InquiryUseCase struct {
	repo        interfaces.IInquiryRepository
	counters    interfaces.ICounterRepository
	serviceRepo interfaces.IServiceRepository
	now         func() time.Time
}

var _ IInquiryUseCase = (*InquiryUseCase)(nil)

func NewInquiryUseCase(repo interfaces.IInquiryRepository, counters interfaces.ICounterRepository, serviceRepo interfaces.IServiceRepository) *InquiryUseCase {
	return &InquiryUseCase{repo: repo, counters: counters, serviceRepo: serviceRepo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *InquiryUseCase) CreateInquiry(ctx context.Context, in CreateInquiryInput) (entities.Inquiry, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.ServiceID = strings.TrimSpace(in.ServiceID)
	in.Message = strings.TrimSpace(in.Message)
	in.TotalAmount = strings.TrimSpace(in.TotalAmount)

	if in.ClientID == "" {
		return entities.Inquiry{}, ErrInvalidClientID
	}
	if in.ServiceID == "" {
		return entities.Inquiry{}, ErrInvalidServiceID
	}
	if in.Message == "" {
		return entities.Inquiry{}, ErrMissingMessage
	}
	if in.TotalAmount == "" {
		return entities.Inquiry{}, ErrMissingTotalAmount
	}

	svc, err := u.serviceRepo.GetByID(ctx, in.ServiceID)
	if err != nil {
		return entities.Inquiry{}, err
	}
	if svc.ID == "" {
		return entities.Inquiry{}, ErrServiceNotFound
	}

	packageName := strings.TrimSpace(in.PackageName)
	packagePrice := ""
	if packageName != "" {
		pkg, ok := svc.PackageByName(packageName)
		if !ok {
			return entities.Inquiry{}, ErrUnknownPackage
		}
		packagePrice = pkg.Price
	}

	changedBy := strings.TrimSpace(in.ChangedBy)
	if changedBy == "" {
		changedBy = defaultCreationActor
	}

	now := u.now()
	inquiry := entities.Inquiry{
		ID:            uuid.NewString(),
		ClientID:      in.ClientID,
		ClientName:    strings.TrimSpace(in.ClientName),
		ClientEmail:   strings.TrimSpace(in.ClientEmail),
		ServiceID:     svc.ID,
		ServiceName:   svc.Name,
		PackageName:   packageName,
		PackagePrice:  packagePrice,
		TotalAmount:   in.TotalAmount,
		Message:       in.Message,
		Status:        entities.InquiryStatusPending,
		PaymentStatus: entities.PaymentStatusUnpaid,
		StatusHistory: []entities.StatusHistoryEntry{{
			Status:    entities.InquiryStatusPending,
			ChangedBy: changedBy,
			ChangedAt: now,
			Note:      creationHistoryNoteText,
		}},
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}

	// The invoice number comes from an atomic yearly counter and is claimed
	// transactionally with the inquiry itself. A claim collision means another
	// writer raced us; take a fresh sequence value and try again.
	for attempt := 1; attempt <= createInvoiceRetries; attempt++ {
		seq, err := u.counters.Next(ctx, fmt.Sprintf("%s-%d", invoiceCounterPrefix, now.Year()))
		if err != nil {
			return entities.Inquiry{}, err
		}
		inquiry.InvoiceNumber = entities.FormatInvoiceNumber(now.Year(), seq)

		created, err := u.repo.Create(ctx, inquiry)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, interfaces.ErrDuplicateInvoiceNumber) {
			return entities.Inquiry{}, err
		}
		log.Printf("[inquiry][usecase] invoice number collision invoice_number=%s attempt=%d", inquiry.InvoiceNumber, attempt)
	}
	return entities.Inquiry{}, ErrDuplicateInvoice
}

func (u *InquiryUseCase) UpdateInquiry(ctx context.Context, id string, in UpdateInquiryInput) (entities.Inquiry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Inquiry{}, ErrInvalidInquiryID
	}
	if strings.TrimSpace(in.ClientID) != "" {
		return entities.Inquiry{}, ErrClientReassignment
	}
	if in.empty() {
		return entities.Inquiry{}, ErrEmptyUpdate
	}
	if in.Status != "" && strings.TrimSpace(in.ChangedBy) == "" {
		return entities.Inquiry{}, ErrMissingChangedBy
	}

	// Read-apply-write under the version check; a conflict means another
	// admin session committed first, so re-read and re-apply on top of it.
	var lastErr error
	for attempt := 1; attempt <= updateConflictRetries; attempt++ {
		inquiry, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Inquiry{}, err
		}
		if inquiry.ID == "" {
			return entities.Inquiry{}, ErrInquiryNotFound
		}

		expected := inquiry.Version
		now := u.now()

		if in.Status != "" {
			if err := inquiry.ApplyStatusChange(entities.InquiryStatus(in.Status), strings.TrimSpace(in.ChangedBy), strings.TrimSpace(in.Note), now); err != nil {
				return entities.Inquiry{}, err
			}
		}
		if in.PaymentStatus != "" {
			if err := inquiry.ApplyPaymentStatusChange(entities.PaymentStatus(in.PaymentStatus), now); err != nil {
				return entities.Inquiry{}, err
			}
		}
		if v := strings.TrimSpace(in.TotalAmount); v != "" {
			inquiry.TotalAmount = v
		}
		if v := strings.TrimSpace(in.AdminNotes); v != "" {
			inquiry.AdminNotes = v
		}
		if v := strings.TrimSpace(in.Notes); v != "" {
			inquiry.Notes = v
		}
		inquiry.UpdatedAt = now

		updated, err := u.repo.Update(ctx, inquiry, expected)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Inquiry{}, err
		}
		lastErr = err
		log.Printf("[inquiry][usecase] update version conflict inquiry_id=%s attempt=%d", id, attempt)
	}
	return entities.Inquiry{}, lastErr
}

func (u *InquiryUseCase) GetByID(ctx context.Context, id string) (entities.Inquiry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Inquiry{}, ErrInvalidInquiryID
	}

	inquiry, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Inquiry{}, err
	}
	if inquiry.ID == "" {
		return entities.Inquiry{}, ErrInquiryNotFound
	}
	return inquiry, nil
}

func (u *InquiryUseCase) GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (entities.Inquiry, error) {
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	if invoiceNumber == "" {
		return entities.Inquiry{}, ErrInquiryNotFound
	}

	inquiry, err := u.repo.GetByInvoiceNumber(ctx, invoiceNumber)
	if err != nil {
		return entities.Inquiry{}, err
	}
	if inquiry.ID == "" {
		return entities.Inquiry{}, ErrInquiryNotFound
	}
	return inquiry, nil
}

func (u *InquiryUseCase) ListByClient(ctx context.Context, clientID string, limit int32) ([]entities.Inquiry, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClientID(ctx, clientID, normalizeLimit(limit))
}

func (u *InquiryUseCase) ListByStatus(ctx context.Context, status string, limit int32) ([]entities.Inquiry, error) {
	s := entities.InquiryStatus(strings.TrimSpace(status))
	if !entities.ValidInquiryStatus(s) {
		return nil, entities.ErrInvalidStatus
	}
	return u.repo.ListByStatus(ctx, s, normalizeLimit(limit))
}

func (u *InquiryUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInquiryID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrInquiryNotFound
	}
	return nil
}

func normalizeLimit(limit int32) int32 {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
