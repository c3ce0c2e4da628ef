package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tppb-bridge/backoffice/internal/services/backoffice/activity"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/finance"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/storage"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/transaction"
)

// CreateTransaction records a customs transaction and issues its invoice.
func (s *Service) CreateTransaction(ctx context.Context, input transaction.Input) (transaction.Transaction, transaction.Invoice, error) {
	tx, err := transaction.Create(input, s.now, s.newID)
	if err != nil {
		return transaction.Transaction{}, transaction.Invoice{}, err
	}
	inv, err := transaction.IssueInvoice(tx, s.now, s.newID)
	if err != nil {
		return transaction.Transaction{}, transaction.Invoice{}, err
	}
	err = s.update(ctx, "CreateTransaction", func(st storage.Stores) error {
		if err := st.PutTransaction(ctx, tx); err != nil {
			return storageErr("transaction", err)
		}
		if err := st.PutInvoice(ctx, inv); err != nil {
			return storageErr("invoice", err)
		}
		return s.record(ctx, st, activity.ActionAdd, activity.ModuleTransaction, "transaction", tx.ID, tx.DocNumber(), string(tx.Direction))
	})
	if err != nil {
		return transaction.Transaction{}, transaction.Invoice{}, err
	}
	s.logChange(ctx, "transaction created", zap.String("transaction_id", tx.ID), zap.String("invoice_id", inv.ID))
	return tx, inv, nil
}

// UpdateTransaction edits a transaction and refreshes its unpaid invoice,
// issuing one when none exists.
func (s *Service) UpdateTransaction(ctx context.Context, transactionID string, input transaction.Input) (transaction.Transaction, transaction.Invoice, error) {
	var (
		tx  transaction.Transaction
		inv transaction.Invoice
	)
	err := s.update(ctx, "UpdateTransaction", func(st storage.Stores) error {
		existing, err := st.GetTransaction(ctx, transactionID)
		if err != nil {
			return storageErr("transaction", err)
		}
		if tx, err = transaction.Update(existing, input, s.now); err != nil {
			return err
		}
		current, err := st.GetInvoiceByTransaction(ctx, tx.ID)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			if inv, err = transaction.IssueInvoice(tx, s.now, s.newID); err != nil {
				return err
			}
		case err != nil:
			return storageErr("invoice", err)
		default:
			if inv, err = current.Sync(tx, s.now()); err != nil {
				return err
			}
		}
		if err := st.PutTransaction(ctx, tx); err != nil {
			return storageErr("transaction", err)
		}
		if err := st.PutInvoice(ctx, inv); err != nil {
			return storageErr("invoice", err)
		}
		return s.record(ctx, st, activity.ActionEdit, activity.ModuleTransaction, "transaction", tx.ID, tx.DocNumber(), string(tx.Status))
	})
	if err != nil {
		return transaction.Transaction{}, transaction.Invoice{}, err
	}
	s.logChange(ctx, "transaction updated", zap.String("transaction_id", tx.ID))
	return tx, inv, nil
}

// DeleteTransaction removes a transaction with its unpaid invoice. A paid
// invoice stays as the record behind its finance entry.
func (s *Service) DeleteTransaction(ctx context.Context, transactionID string) error {
	err := s.update(ctx, "DeleteTransaction", func(st storage.Stores) error {
		existing, err := st.GetTransaction(ctx, transactionID)
		if err != nil {
			return storageErr("transaction", err)
		}
		inv, err := st.GetInvoiceByTransaction(ctx, existing.ID)
		switch {
		case errors.Is(err, storage.ErrNotFound):
		case err != nil:
			return storageErr("invoice", err)
		case inv.Status == transaction.InvoiceUnpaid:
			if err := st.DeleteInvoice(ctx, inv.ID); err != nil {
				return storageErr("invoice", err)
			}
		}
		if err := st.DeleteTransaction(ctx, existing.ID); err != nil {
			return storageErr("transaction", err)
		}
		return s.record(ctx, st, activity.ActionDelete, activity.ModuleTransaction, "transaction", existing.ID, existing.DocNumber(), "")
	})
	if err != nil {
		return err
	}
	s.logChange(ctx, "transaction deleted", zap.String("transaction_id", transactionID))
	return nil
}

// GetTransaction returns one transaction.
func (s *Service) GetTransaction(ctx context.Context, transactionID string) (transaction.Transaction, error) {
	return get(ctx, s, "GetTransaction", "transaction", transactionID, storage.Stores.GetTransaction)
}

// ListTransactions lists transactions by date, newest first.
func (s *Service) ListTransactions(ctx context.Context, q storage.ListQuery) ([]transaction.Transaction, error) {
	return list(ctx, s, "ListTransactions", "transaction", q, storage.Stores.ListTransactions)
}

// PayInvoice marks an invoice paid and books the payment as bridge service
// income. Zero amount invoices book nothing.
func (s *Service) PayInvoice(ctx context.Context, invoiceID string) (transaction.Invoice, *finance.Entry, error) {
	var (
		inv   transaction.Invoice
		entry *finance.Entry
	)
	err := s.update(ctx, "PayInvoice", func(st storage.Stores) error {
		existing, err := st.GetInvoice(ctx, invoiceID)
		if err != nil {
			return storageErr("invoice", err)
		}
		if inv, err = transaction.Pay(existing, s.now); err != nil {
			return err
		}
		if err := st.PutInvoice(ctx, inv); err != nil {
			return storageErr("invoice", err)
		}
		if inv.Amount.IsPositive() {
			income, err := finance.Create(finance.Input{
				Type:        finance.TypeIncome,
				Category:    "Service",
				Amount:      inv.Amount,
				Description: inv.Description(),
				Module:      finance.ModuleBridge,
				Date:        inv.PaidDate,
				Reference:   inv.Number,
			}, s.now, s.newID)
			if err != nil {
				return err
			}
			if err := st.PutFinanceEntry(ctx, income); err != nil {
				return storageErr("finance_entry", err)
			}
			entry = &income
		}
		return s.record(ctx, st, activity.ActionEdit, activity.ModuleFinance, "invoice", inv.ID, inv.Number, "paid")
	})
	if err != nil {
		return transaction.Invoice{}, nil, err
	}
	s.logChange(ctx, "invoice paid", zap.String("invoice_id", inv.ID), zap.Stringer("amount", inv.Amount))
	return inv, entry, nil
}

// GetInvoice returns one invoice.
func (s *Service) GetInvoice(ctx context.Context, invoiceID string) (transaction.Invoice, error) {
	return get(ctx, s, "GetInvoice", "invoice", invoiceID, storage.Stores.GetInvoice)
}

// ListInvoices lists invoices, newest first.
func (s *Service) ListInvoices(ctx context.Context, q storage.ListQuery) ([]transaction.Invoice, error) {
	return list(ctx, s, "ListInvoices", "invoice", q, storage.Stores.ListInvoices)
}

// CreateReject records rejected goods.
func (s *Service) CreateReject(ctx context.Context, input transaction.RejectInput) (transaction.RejectRecord, error) {
	rec, err := transaction.CreateReject(input, s.now, s.newID)
	if err != nil {
		return transaction.RejectRecord{}, err
	}
	err = s.update(ctx, "CreateReject", func(st storage.Stores) error {
		if err := st.PutReject(ctx, rec); err != nil {
			return storageErr("reject", err)
		}
		return s.record(ctx, st, activity.ActionAdd, activity.ModuleTransaction, "reject", rec.ID, rec.AssetName, rec.Reason)
	})
	if err != nil {
		return transaction.RejectRecord{}, err
	}
	s.logChange(ctx, "reject recorded", zap.String("reject_id", rec.ID))
	return rec, nil
}

// DeleteReject removes a reject record.
func (s *Service) DeleteReject(ctx context.Context, rejectID string) error {
	err := s.update(ctx, "DeleteReject", func(st storage.Stores) error {
		if err := st.DeleteReject(ctx, rejectID); err != nil {
			return storageErr("reject", err)
		}
		return s.record(ctx, st, activity.ActionDelete, activity.ModuleTransaction, "reject", rejectID, "", "")
	})
	if err != nil {
		return err
	}
	s.logChange(ctx, "reject deleted", zap.String("reject_id", rejectID))
	return nil
}

// ListRejects lists reject records by date, newest first.
func (s *Service) ListRejects(ctx context.Context, q storage.ListQuery) ([]transaction.RejectRecord, error) {
	return list(ctx, s, "ListRejects", "reject", q, storage.Stores.ListRejects)
}

// MonitoringLedger builds the customs IN/OUT/BROKE ledger.
func (s *Service) MonitoringLedger(ctx context.Context, q transaction.LedgerQuery) (transaction.Ledger, error) {
	txs, err := s.ListTransactions(ctx, storage.ListQuery{})
	if err != nil {
		return transaction.Ledger{}, err
	}
	rejects, err := s.ListRejects(ctx, storage.ListQuery{})
	if err != nil {
		return transaction.Ledger{}, err
	}
	return transaction.BuildLedger(txs, rejects, q), nil
}
