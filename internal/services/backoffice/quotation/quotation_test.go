package quotation

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/customs"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/goods"
)

var fixedNow = time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func sequenceIDs(ids ...string) func() (string, error) {
	i := 0
	return func() (string, error) {
		if i >= len(ids) {
			return "", errors.New("out of ids")
		}
		i++
		return ids[i-1], nil
	}
}

func sampleInput() Input {
	return Input{
		Direction:    customs.DirectionInbound,
		CustomerID:   "cust-1",
		CustomerName: "PT Maju",
		Origin:       "Shenzhen",
		Destination:  "Jakarta",
		Items: []goods.Item{
			{Name: "Server rack", Quantity: 2, Value: money.FromInt(8_000_000)},
			{Name: "Switch", Quantity: 3, Value: money.FromInt(2_000_000)},
		},
		Services: []goods.ServiceLine{
			{Type: goods.ServiceHandling, Quantity: 5, UnitPrice: money.FromInt(100_000)},
			{Type: goods.ServiceStorage, Days: 10, DailyRate: money.FromInt(50_000)},
		},
		CustomCosts: []CustomCost{{Description: "Fumigasi", Amount: money.FromInt(500_000)}},
	}
}

func TestSummarizePercentage(t *testing.T) {
	t.Parallel()

	in := sampleInput()
	s, err := Summarize(in.Items, in.Services, in.CustomCosts, Discount{Type: DiscountPercentage, Value: money.FromInt(10)}, DefaultTaxRate)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	checks := []struct {
		name string
		got  money.Amount
		want int64
	}{
		{"items", s.ItemsSubtotal, 10_000_000},
		{"services", s.ServiceSubtotal, 1_000_000},
		{"custom", s.CustomCostsSubtotal, 500_000},
		{"subtotal", s.Subtotal, 11_500_000},
		{"discount", s.DiscountAmount, 1_150_000},
		{"after", s.AfterDiscount, 10_350_000},
		{"tax", s.TaxAmount, 1_138_500},
		{"grand", s.GrandTotal, 11_488_500},
	}
	for _, c := range checks {
		if !c.got.Equal(money.FromInt(c.want)) {
			t.Fatalf("%s = %s, want %d", c.name, c.got, c.want)
		}
	}
}

func TestSummarizeNominalAndRanges(t *testing.T) {
	t.Parallel()

	items := []goods.Item{{Name: "A", Quantity: 1, Value: money.FromInt(1000)}}
	s, err := Summarize(items, nil, nil, Discount{Type: DiscountNominal, Value: money.FromInt(200)}, money.Zero())
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if !s.GrandTotal.Equal(money.FromInt(800)) {
		t.Fatalf("grand = %s, want 800", s.GrandTotal)
	}

	tests := []struct {
		name     string
		discount Discount
		tax      money.Amount
		code     apperrors.Code
	}{
		{"percent over 100", Discount{Type: DiscountPercentage, Value: money.FromInt(101)}, DefaultTaxRate, apperrors.CodeQuotationDiscountRange},
		{"nominal over subtotal", Discount{Type: DiscountNominal, Value: money.FromInt(1001)}, DefaultTaxRate, apperrors.CodeQuotationDiscountRange},
		{"negative discount", Discount{Type: DiscountNominal, Value: money.FromInt(-1)}, DefaultTaxRate, apperrors.CodeQuotationDiscountRange},
		{"tax over 100", Discount{}, money.FromInt(150), apperrors.CodeQuotationTaxRateRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Summarize(items, nil, nil, tc.discount, tc.tax)
			if got := apperrors.CodeOf(err); got != tc.code {
				t.Fatalf("code = %s, want %s", got, tc.code)
			}
		})
	}
}

func TestCreateDraft(t *testing.T) {
	t.Parallel()

	q, err := Create(sampleInput(), fixedClock, sequenceIDs("q-1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if q.Status != StatusDraft || q.Number != "QT-1754040600000-Q1" {
		t.Fatalf("status/number = %s/%s", q.Status, q.Number)
	}
	if !q.TaxRate.Equal(DefaultTaxRate) {
		t.Fatalf("tax rate = %s, want default", q.TaxRate)
	}
	if q.Date != "2025-08-01" || q.Discount.Type != DiscountPercentage {
		t.Fatalf("defaults: date=%s discount=%s", q.Date, q.Discount.Type)
	}
	if !q.Summary.GrandTotal.Equal(money.FromInt(12_765_000)) {
		t.Fatalf("grand total = %s", q.Summary.GrandTotal)
	}
}

func TestCreateExplicitZeroTax(t *testing.T) {
	t.Parallel()

	in := sampleInput()
	zero := money.Zero()
	in.TaxRate = &zero
	q, err := Create(in, fixedClock, sequenceIDs("q-1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !q.Summary.TaxAmount.IsZero() {
		t.Fatalf("tax = %s, want 0", q.Summary.TaxAmount)
	}
}

func TestCreateRequiresCustomer(t *testing.T) {
	t.Parallel()

	in := sampleInput()
	in.CustomerID, in.CustomerName = "", ""
	_, err := Create(in, fixedClock, sequenceIDs("q-1"))
	if apperrors.CodeOf(err) != apperrors.CodeQuotationCustomerMissed {
		t.Fatalf("err = %v", err)
	}
}

func TestConfirmCreatesBCDocument(t *testing.T) {
	t.Parallel()

	q, err := Create(sampleInput(), fixedClock, sequenceIDs("q-1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	confirmed, doc, err := Confirm(q, fixedClock, sequenceIDs("doc-1"))
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Status != StatusConfirmed || confirmed.BCDocumentID != "doc-1" {
		t.Fatalf("confirmed = %s/%s", confirmed.Status, confirmed.BCDocumentID)
	}
	if doc.QuotationID != "q-1" || doc.Status != customs.StatusPending || doc.BCType != customs.TypeBC23 {
		t.Fatalf("doc = %+v", doc)
	}
	if doc.TotalItems != 5 || !doc.TotalValue.Equal(money.FromInt(10_000_000)) {
		t.Fatalf("doc totals = %d/%s", doc.TotalItems, doc.TotalValue)
	}

	if _, _, err := Confirm(confirmed, fixedClock, sequenceIDs("doc-2")); !errors.Is(err, ErrNotDraft) {
		t.Fatalf("second confirm err = %v, want ErrNotDraft", err)
	}
	if _, err := Reject(confirmed, fixedClock); !errors.Is(err, ErrNotDraft) {
		t.Fatalf("reject confirmed err = %v, want ErrNotDraft", err)
	}
	if _, err := Update(confirmed, sampleInput(), fixedClock); !errors.Is(err, ErrNotDraft) {
		t.Fatalf("update confirmed err = %v, want ErrNotDraft", err)
	}
}

func TestRejectDraft(t *testing.T) {
	t.Parallel()

	q, err := Create(sampleInput(), fixedClock, sequenceIDs("q-1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	rejected, err := Reject(q, fixedClock)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != StatusRejected {
		t.Fatalf("status = %s", rejected.Status)
	}
}

func TestUpdateDraftRecomputesSummary(t *testing.T) {
	t.Parallel()

	q, err := Create(sampleInput(), fixedClock, sequenceIDs("q-1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	in := sampleInput()
	in.Services = nil
	in.CustomCosts = nil
	zero := money.Zero()
	in.TaxRate = &zero
	updated, err := Update(q, in, fixedClock)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Summary.GrandTotal.Equal(money.FromInt(10_000_000)) {
		t.Fatalf("grand = %s", updated.Summary.GrandTotal)
	}
	if updated.ID != q.ID || updated.Number != q.Number {
		t.Fatal("identity changed on update")
	}
}
