package entities

import (
	"errors"
	"testing"
	"time"
)

func baseInquiry(t *testing.T) Inquiry {
	t.Helper()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return Inquiry{
		ID:            "inq-1",
		InvoiceNumber: "INV-2026-00001",
		ClientID:      "client-1",
		ServiceID:     "svc-1",
		ServiceName:   "Web Development",
		TotalAmount:   "$5000",
		Message:       "Need a website",
		Status:        InquiryStatusPending,
		PaymentStatus: PaymentStatusUnpaid,
		StatusHistory: []StatusHistoryEntry{{
			Status:    InquiryStatusPending,
			ChangedBy: "client",
			ChangedAt: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}
}

func TestApplyStatusChange(t *testing.T) {
	t.Run("unknown status rejected", func(t *testing.T) {
		i := baseInquiry(t)
		err := i.ApplyStatusChange("shipped", "Admin", "", time.Now().UTC())
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
		if len(i.StatusHistory) != 1 {
			t.Fatalf("history must not grow on rejected change, got %d", len(i.StatusHistory))
		}
	})

	t.Run("change appends exactly one entry", func(t *testing.T) {
		i := baseInquiry(t)
		at := i.UpdatedAt.Add(time.Hour)
		if err := i.ApplyStatusChange(InquiryStatusApproved, "Admin", "looks good", at); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if i.Status != InquiryStatusApproved {
			t.Fatalf("expected approved, got %s", i.Status)
		}
		if len(i.StatusHistory) != 2 {
			t.Fatalf("expected 2 history entries, got %d", len(i.StatusHistory))
		}
		last := i.StatusHistory[len(i.StatusHistory)-1]
		if last.Status != InquiryStatusApproved || last.ChangedBy != "Admin" || last.Note != "looks good" || !last.ChangedAt.Equal(at) {
			t.Fatalf("unexpected history entry: %+v", last)
		}
		if !i.UpdatedAt.Equal(at) {
			t.Fatalf("expected UpdatedAt refreshed")
		}
	})

	t.Run("same status is idempotent for history", func(t *testing.T) {
		i := baseInquiry(t)
		at := i.UpdatedAt.Add(time.Hour)
		if err := i.ApplyStatusChange(InquiryStatusPending, "Admin", "", at); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(i.StatusHistory) != 1 {
			t.Fatalf("expected history unchanged, got %d entries", len(i.StatusHistory))
		}
		if !i.UpdatedAt.Equal(at) {
			t.Fatalf("expected UpdatedAt refreshed even for a no-op")
		}
	})

	t.Run("terminal statuses reject changes", func(t *testing.T) {
		for _, terminal := range []InquiryStatus{InquiryStatusCompleted, InquiryStatusCancelled} {
			i := baseInquiry(t)
			i.Status = terminal
			err := i.ApplyStatusChange(InquiryStatusApproved, "Admin", "", time.Now().UTC())
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("%s: expected ErrInvalidTransition, got %v", terminal, err)
			}
		}
	})

	t.Run("cancelled reachable from any non-terminal status", func(t *testing.T) {
		for _, from := range []InquiryStatus{InquiryStatusPending, InquiryStatusApproved, InquiryStatusPaid, InquiryStatusInProgress} {
			i := baseInquiry(t)
			i.Status = from
			if err := i.ApplyStatusChange(InquiryStatusCancelled, "Admin", "", time.Now().UTC()); err != nil {
				t.Fatalf("%s -> cancelled: unexpected error %v", from, err)
			}
		}
	})

	t.Run("replaying history reconstructs current status", func(t *testing.T) {
		i := baseInquiry(t)
		steps := []InquiryStatus{InquiryStatusApproved, InquiryStatusPaid, InquiryStatusInProgress, InquiryStatusCompleted}
		for n, s := range steps {
			if err := i.ApplyStatusChange(s, "Admin", "", i.UpdatedAt.Add(time.Duration(n+1)*time.Minute)); err != nil {
				t.Fatalf("step %s: %v", s, err)
			}
		}
		if got := len(i.StatusHistory); got != 1+len(steps) {
			t.Fatalf("expected %d history entries, got %d", 1+len(steps), got)
		}
		replayed := i.StatusHistory[0].Status
		for _, e := range i.StatusHistory[1:] {
			replayed = e.Status
		}
		if replayed != i.Status {
			t.Fatalf("replayed %s, current %s", replayed, i.Status)
		}
	})
}

func TestApplyPaymentStatusChange(t *testing.T) {
	t.Run("unknown value rejected", func(t *testing.T) {
		i := baseInquiry(t)
		if err := i.ApplyPaymentStatusChange("charged", time.Now().UTC()); !errors.Is(err, ErrInvalidPaymentStatus) {
			t.Fatalf("expected ErrInvalidPaymentStatus, got %v", err)
		}
	})

	t.Run("unpaid to paid to refunded", func(t *testing.T) {
		i := baseInquiry(t)
		if err := i.ApplyPaymentStatusChange(PaymentStatusPaid, time.Now().UTC()); err != nil {
			t.Fatalf("unpaid -> paid: %v", err)
		}
		if err := i.ApplyPaymentStatusChange(PaymentStatusRefunded, time.Now().UTC()); err != nil {
			t.Fatalf("paid -> refunded: %v", err)
		}
		if i.PaymentStatus != PaymentStatusRefunded {
			t.Fatalf("expected refunded, got %s", i.PaymentStatus)
		}
	})

	t.Run("refund requires paid", func(t *testing.T) {
		i := baseInquiry(t)
		if err := i.ApplyPaymentStatusChange(PaymentStatusRefunded, time.Now().UTC()); !errors.Is(err, ErrInvalidPaymentTransition) {
			t.Fatalf("expected ErrInvalidPaymentTransition, got %v", err)
		}
	})

	t.Run("independent from status axis", func(t *testing.T) {
		i := baseInquiry(t)
		i.Status = InquiryStatusCompleted
		if err := i.ApplyPaymentStatusChange(PaymentStatusPaid, time.Now().UTC()); err != nil {
			t.Fatalf("completed inquiry must still accept payment flips: %v", err)
		}
		if len(i.StatusHistory) != 1 {
			t.Fatalf("payment flips must not touch the status history")
		}
	})
}

func TestFormatInvoiceNumber(t *testing.T) {
	if got := FormatInvoiceNumber(2026, 7); got != "INV-2026-00007" {
		t.Fatalf("unexpected invoice number: %s", got)
	}
	if got := FormatInvoiceNumber(2026, 123456); got != "INV-2026-123456" {
		t.Fatalf("sequence wider than the pad must not truncate: %s", got)
	}
}
