package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tppb-bridge/backoffice/internal/platform/calendar"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/approval"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/customs"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/finance"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/quotation"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/transaction"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/warehouse"
)

var fixedNow = time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)

func tx(direction customs.Direction, date string, value, direct int64) transaction.Transaction {
	return transaction.Transaction{
		Direction: direction,
		Date:      date,
		Totals: transaction.Totals{
			Value:            money.FromInt(value),
			TotalDirectCosts: money.FromInt(direct),
		},
	}
}

func sampleTransactions() []transaction.Transaction {
	return []transaction.Transaction{
		tx(customs.DirectionOutbound, "2025-07-02", 10_000_000, 1_000_000),
		tx(customs.DirectionInbound, "2025-07-05", 4_000_000, 500_000),
		tx(customs.DirectionOutbound, "2025-05-20", 6_000_000, 0),
		tx(customs.DirectionInbound, "2024-12-31", 99_000_000, 0),
	}
}

func TestBuildPabean(t *testing.T) {
	t.Parallel()

	quotes := []quotation.Quotation{
		{Status: quotation.StatusDraft}, {Status: quotation.StatusConfirmed},
		{Status: quotation.StatusConfirmed}, {Status: quotation.StatusRejected},
	}
	got := BuildPabean(sampleTransactions(), []transaction.RejectRecord{{}}, quotes)
	want := Pabean{TotalInbound: 2, TotalOutbound: 2, TotalReject: 1, DocsPending: 1, DocsApproved: 2, DocsRejected: 1, DocsTotal: 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("pabean mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeRevenueMonth(t *testing.T) {
	t.Parallel()

	r := AnalyzeRevenue(sampleTransactions(), calendar.PeriodMonth, fixedNow)
	checks := []struct {
		name string
		got  money.Amount
		want int64
	}{
		{"sales", r.SalesRevenue, 10_000_000},
		{"inbound cost", r.InboundCost, 4_000_000},
		{"operational", r.OperationalCosts, 1_500_000},
		{"gross", r.GrossProfit, 10_000_000},
		{"net", r.NetProfit, 8_500_000},
		{"margin", r.ProfitMargin, 85},
		{"average", r.AverageValue, 7_000_000},
	}
	for _, c := range checks {
		if !c.got.Equal(money.FromInt(c.want)) {
			t.Fatalf("%s = %s, want %d", c.name, c.got, c.want)
		}
	}
	if r.TransactionCount != 2 || r.From != "2025-07-01" || r.To != "2025-07-31" {
		t.Fatalf("revenue = %+v", r)
	}
}

func TestAnalyzeRevenuePeriods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		period calendar.Period
		count  int
	}{
		{calendar.PeriodQuarter, 2},
		{calendar.PeriodYear, 3},
		{calendar.PeriodAll, 4},
	}
	for _, tt := range tests {
		if got := AnalyzeRevenue(sampleTransactions(), tt.period, fixedNow).TransactionCount; got != tt.count {
			t.Fatalf("%s count = %d, want %d", tt.period, got, tt.count)
		}
	}

	empty := AnalyzeRevenue(nil, calendar.PeriodAll, fixedNow)
	if !empty.ProfitMargin.IsZero() || !empty.AverageValue.IsZero() {
		t.Fatalf("empty revenue = %+v", empty)
	}
}

type fakeSource struct {
	failApprovals bool
}

func (fakeSource) AllTransactions(context.Context) ([]transaction.Transaction, error) {
	return sampleTransactions(), nil
}

func (fakeSource) AllRejects(context.Context) ([]transaction.RejectRecord, error) {
	return nil, nil
}

func (fakeSource) AllQuotations(context.Context) ([]quotation.Quotation, error) {
	return []quotation.Quotation{{Status: quotation.StatusDraft}}, nil
}

func (fakeSource) AllMutationLogs(context.Context) ([]warehouse.MutationLog, error) {
	return []warehouse.MutationLog{{Date: "2025-07-14"}, {Date: "2025-07-01"}}, nil
}

func (f fakeSource) AllApprovals(context.Context) ([]approval.Request, error) {
	if f.failApprovals {
		return nil, errors.New("boom")
	}
	return []approval.Request{{Status: approval.StatusPending}}, nil
}

func (fakeSource) AllFinanceEntries(context.Context) ([]finance.Entry, error) {
	return []finance.Entry{{Type: finance.TypeIncome, Amount: money.FromInt(100)}}, nil
}

func TestBuildDashboard(t *testing.T) {
	t.Parallel()

	d, err := BuildDashboard(context.Background(), fakeSource{}, calendar.PeriodMonth, fixedNow)
	if err != nil {
		t.Fatalf("build dashboard: %v", err)
	}
	if d.Pabean.DocsPending != 1 || d.Warehouse.MutationsToday != 1 || d.Approvals.Pending != 1 || !d.Finance.Balance.Equal(money.FromInt(100)) {
		t.Fatalf("dashboard = %+v", d)
	}
	if d.Revenue.TransactionCount != 2 {
		t.Fatalf("revenue count = %d", d.Revenue.TransactionCount)
	}
}

func TestBuildDashboardPropagatesErrors(t *testing.T) {
	t.Parallel()

	if _, err := BuildDashboard(context.Background(), fakeSource{failApprovals: true}, calendar.PeriodAll, fixedNow); err == nil {
		t.Fatal("expected load error")
	}
}
