package reports

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tppb-bridge/backoffice/internal/platform/calendar"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/approval"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/finance"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/quotation"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/transaction"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/warehouse"
)

// Source loads the records the dashboard summarizes.
type Source interface {
	AllTransactions(ctx context.Context) ([]transaction.Transaction, error)
	AllRejects(ctx context.Context) ([]transaction.RejectRecord, error)
	AllQuotations(ctx context.Context) ([]quotation.Quotation, error)
	AllMutationLogs(ctx context.Context) ([]warehouse.MutationLog, error)
	AllApprovals(ctx context.Context) ([]approval.Request, error)
	AllFinanceEntries(ctx context.Context) ([]finance.Entry, error)
}

// Dashboard is the back-office overview.
type Dashboard struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Pabean      Pabean          `json:"pabean"`
	Revenue     Revenue         `json:"revenue"`
	Warehouse   warehouse.Stats `json:"warehouse"`
	Approvals   approval.Stats  `json:"approvals"`
	Finance     finance.Summary `json:"finance"`
}

// BuildDashboard loads every section concurrently and summarizes revenue for
// period. The first load error cancels the rest.
func BuildDashboard(ctx context.Context, src Source, period calendar.Period, now time.Time) (Dashboard, error) {
	var (
		txs     []transaction.Transaction
		rejects []transaction.RejectRecord
		quotes  []quotation.Quotation
		logs    []warehouse.MutationLog
		reqs    []approval.Request
		entries []finance.Entry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		txs, err = src.AllTransactions(gctx)
		return wrap("transactions", err)
	})
	g.Go(func() (err error) {
		rejects, err = src.AllRejects(gctx)
		return wrap("rejects", err)
	})
	g.Go(func() (err error) {
		quotes, err = src.AllQuotations(gctx)
		return wrap("quotations", err)
	})
	g.Go(func() (err error) {
		logs, err = src.AllMutationLogs(gctx)
		return wrap("mutation logs", err)
	})
	g.Go(func() (err error) {
		reqs, err = src.AllApprovals(gctx)
		return wrap("approvals", err)
	})
	g.Go(func() (err error) {
		entries, err = src.AllFinanceEntries(gctx)
		return wrap("finance", err)
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	return Dashboard{
		GeneratedAt: now.UTC(),
		Pabean:      BuildPabean(txs, rejects, quotes),
		Revenue:     AnalyzeRevenue(txs, period, now),
		Warehouse:   warehouse.ComputeStats(logs, now),
		Approvals:   approval.ComputeStats(reqs),
		Finance:     finance.Summarize(entries),
	}, nil
}

func wrap(section string, err error) error {
	if err != nil {
		return fmt.Errorf("load %s: %w", section, err)
	}
	return nil
}
