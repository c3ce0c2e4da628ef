package service

import (
	"context"

	"github.com/tppb-bridge/backoffice/internal/platform/calendar"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/activity"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/approval"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/finance"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/quotation"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/reports"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/storage"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/transaction"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/warehouse"
)

var _ reports.Source = (*Service)(nil)

// AllTransactions loads every transaction.
func (s *Service) AllTransactions(ctx context.Context) ([]transaction.Transaction, error) {
	return s.ListTransactions(ctx, storage.ListQuery{})
}

// AllRejects loads every reject record.
func (s *Service) AllRejects(ctx context.Context) ([]transaction.RejectRecord, error) {
	return s.ListRejects(ctx, storage.ListQuery{})
}

// AllQuotations loads every quotation.
func (s *Service) AllQuotations(ctx context.Context) ([]quotation.Quotation, error) {
	return s.ListQuotations(ctx, storage.ListQuery{})
}

// AllMutationLogs loads the whole mutation log.
func (s *Service) AllMutationLogs(ctx context.Context) ([]warehouse.MutationLog, error) {
	return s.ListMutationLogs(ctx, storage.ListQuery{})
}

// AllApprovals loads every approval request.
func (s *Service) AllApprovals(ctx context.Context) ([]approval.Request, error) {
	return s.ListApprovals(ctx, storage.ListQuery{})
}

// AllFinanceEntries loads the whole finance ledger.
func (s *Service) AllFinanceEntries(ctx context.Context) ([]finance.Entry, error) {
	return s.ListFinanceEntries(ctx, storage.ListQuery{})
}

// Dashboard summarizes every area with revenue for period.
func (s *Service) Dashboard(ctx context.Context, period calendar.Period) (reports.Dashboard, error) {
	ctx, span := s.tracer.Start(ctx, "Dashboard")
	defer span.End()
	return reports.BuildDashboard(ctx, s, period, s.now())
}

// Revenue analyzes transactions over period.
func (s *Service) Revenue(ctx context.Context, period calendar.Period) (reports.Revenue, error) {
	txs, err := s.AllTransactions(ctx)
	if err != nil {
		return reports.Revenue{}, err
	}
	return reports.AnalyzeRevenue(txs, period, s.now()), nil
}

// Pabean counts customs activity.
func (s *Service) Pabean(ctx context.Context) (reports.Pabean, error) {
	txs, err := s.AllTransactions(ctx)
	if err != nil {
		return reports.Pabean{}, err
	}
	rejects, err := s.AllRejects(ctx)
	if err != nil {
		return reports.Pabean{}, err
	}
	quotes, err := s.AllQuotations(ctx)
	if err != nil {
		return reports.Pabean{}, err
	}
	return reports.BuildPabean(txs, rejects, quotes), nil
}

// ListActivity lists audit entries, newest first.
func (s *Service) ListActivity(ctx context.Context, q storage.ListQuery) ([]activity.Entry, error) {
	return list(ctx, s, "ListActivity", "activity", q, storage.Stores.ListActivity)
}
