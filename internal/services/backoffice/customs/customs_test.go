package customs

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/goods"
)

var fixedNow = time.Date(2025, 7, 14, 10, 0, 0, 123_000_000, time.UTC)

func fixedClock() time.Time { return fixedNow }

func fixedID() (string, error) { return "doc-1", nil }

func sampleItems() []goods.Item {
	return []goods.Item{
		{Name: "Laptop", Quantity: 10, Value: money.FromInt(150_000_000)},
		{Name: "Monitor", Quantity: 5, Value: money.FromInt(20_000_000)},
	}
}

func TestNewDocumentInbound(t *testing.T) {
	t.Parallel()

	doc, err := NewDocument(NewDocumentInput{
		QuotationID:  "q-1",
		Direction:    DirectionInbound,
		CustomerName: "PT Maju",
		Items:        sampleItems(),
	}, fixedClock, fixedID)
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	if doc.BCType != TypeBC23 {
		t.Fatalf("bc type = %q, want %q", doc.BCType, TypeBC23)
	}
	wantNumber := "BC23-200123"
	if doc.BCNumber != wantNumber {
		t.Fatalf("bc number = %q, want %q", doc.BCNumber, wantNumber)
	}
	if doc.TotalItems != 15 {
		t.Fatalf("total items = %d, want 15", doc.TotalItems)
	}
	if !doc.TotalValue.Equal(money.FromInt(170_000_000)) {
		t.Fatalf("total value = %s", doc.TotalValue)
	}
	if doc.Status != StatusPending || doc.SubmittedDate != "2025-07-14" {
		t.Fatalf("status/date = %s/%s", doc.Status, doc.SubmittedDate)
	}
}

func TestNewDocumentOutbound(t *testing.T) {
	t.Parallel()

	doc, err := NewDocument(NewDocumentInput{Direction: DirectionOutbound, Items: sampleItems()}, fixedClock, fixedID)
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	if doc.BCType != TypeBC27 || doc.BCNumber[:5] != "BC27-" {
		t.Fatalf("outbound doc = %s %s", doc.BCType, doc.BCNumber)
	}
}

func TestNewDocumentRequiresItemsAndDirection(t *testing.T) {
	t.Parallel()

	if _, err := NewDocument(NewDocumentInput{Direction: DirectionInbound}, fixedClock, fixedID); err == nil {
		t.Fatal("expected items error")
	}
	if _, err := NewDocument(NewDocumentInput{Direction: "sideways", Items: sampleItems()}, fixedClock, fixedID); err == nil {
		t.Fatal("expected direction error")
	}
}

func TestApproveTransitions(t *testing.T) {
	t.Parallel()

	doc := Document{BCNumber: "BC23-000001", Status: StatusPending}
	approved, err := Approve(doc, " Rina ", fixedClock)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != StatusApproved || approved.ApprovedBy != "Rina" || approved.ApprovedDate != "2025-07-14" {
		t.Fatalf("approved = %+v", approved)
	}

	_, err = Approve(approved, "Rina", fixedClock)
	if !errors.Is(err, ErrNotPending) {
		t.Fatalf("re-approve err = %v, want ErrNotPending", err)
	}
	_, err = Reject(approved, "late", fixedClock)
	if !errors.Is(err, ErrNotPending) {
		t.Fatalf("reject approved err = %v, want ErrNotPending", err)
	}
}

func TestApproveRequiresApprover(t *testing.T) {
	t.Parallel()

	_, err := Approve(Document{Status: StatusPending}, "  ", fixedClock)
	if !errors.Is(err, ErrApproverRequired) {
		t.Fatalf("err = %v, want ErrApproverRequired", err)
	}
}

func TestRejectTransitions(t *testing.T) {
	t.Parallel()

	doc := Document{Status: StatusPending}
	if _, err := Reject(doc, "", fixedClock); !errors.Is(err, ErrReasonRequired) {
		t.Fatalf("err = %v, want ErrReasonRequired", err)
	}
	rejected, err := Reject(doc, "dokumen tidak lengkap", fixedClock)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != StatusRejected || rejected.RejectionReason != "dokumen tidak lengkap" {
		t.Fatalf("rejected = %+v", rejected)
	}
	if _, err := Approve(rejected, "Rina", fixedClock); apperrors.CodeOf(err) != apperrors.CodeBCDocumentNotPending {
		t.Fatalf("approve rejected err = %v", err)
	}
}

func TestBCCodeLifecycle(t *testing.T) {
	t.Parallel()

	code, err := CreateBCCode(BCCodeInput{Code: " bc 2.3 ", Name: "Pemasukan TPB", Category: "Inbound"}, fixedClock, fixedID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if code.Code != "BC 2.3" || code.Category != CategoryInbound || !code.IsActive {
		t.Fatalf("code = %+v", code)
	}
	inactive := false
	input := BCCodeInputFrom(code)
	input.IsActive = &inactive
	updated, err := UpdateBCCode(code, input, fixedClock)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.IsActive {
		t.Fatal("expected inactive code")
	}
	if _, err := CreateBCCode(BCCodeInput{Code: "BC 9", Name: "X", Category: "other"}, fixedClock, fixedID); err == nil {
		t.Fatal("expected category error")
	}
}
