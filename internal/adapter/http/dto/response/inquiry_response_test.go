package response

import (
	"testing"
	"time"

	"estatedesk/internal/domain/entities"
)

func TestFromInquiry(t *testing.T) {
	now := time.Now().UTC()
	i := entities.Inquiry{
		ID:            "inq-1",
		InvoiceNumber: "INV-2026-00001",
		ClientID:      "client-1",
		ServiceID:     "svc-1",
		ServiceName:   "Web Development",
		PackageName:   "premium",
		PackagePrice:  "$8000",
		TotalAmount:   "$8000",
		Message:       "Need a storefront",
		Status:        entities.InquiryStatusApproved,
		PaymentStatus: entities.PaymentStatusUnpaid,
		StatusHistory: []entities.StatusHistoryEntry{
			{Status: entities.InquiryStatusPending, ChangedBy: "client", ChangedAt: now},
			{Status: entities.InquiryStatusApproved, ChangedBy: "Admin", ChangedAt: now, Note: "reviewed"},
		},
		CreatedAt: now,
		UpdatedAt: now,
		Version:   3,
	}

	res := FromInquiry(i)
	if res.ID != "inq-1" || res.InvoiceNumber != "INV-2026-00001" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "approved" || res.PaymentStatus != "unpaid" {
		t.Fatalf("unexpected statuses: %+v", res)
	}
	if len(res.StatusHistory) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(res.StatusHistory))
	}
	if res.StatusHistory[1].Status != "approved" || res.StatusHistory[1].Note != "reviewed" {
		t.Fatalf("unexpected history entry: %+v", res.StatusHistory[1])
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromInquiries(t *testing.T) {
	out := FromInquiries(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", out)
	}

	out = FromInquiries([]entities.Inquiry{{ID: "a"}, {ID: "b"}})
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "b" {
		t.Fatalf("unexpected result: %+v", out)
	}
}
