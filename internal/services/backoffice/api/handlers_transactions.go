package api

import (
	"context"
	"net/http"

	"github.com/tppb-bridge/backoffice/internal/services/backoffice/api/module/crud"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/finance"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/transaction"
)

type transactionBody struct {
	Transaction transaction.Transaction `json:"transaction"`
	Invoice     transaction.Invoice     `json:"invoice"`
}

type paymentBody struct {
	Invoice      transaction.Invoice `json:"invoice"`
	FinanceEntry *finance.Entry      `json:"finance_entry,omitempty"`
}

// Transactions serves customs transactions. Writes answer with the
// transaction and its synced invoice.
func (h *Handler) Transactions() crud.Resource {
	create := func(ctx context.Context, input transaction.Input) (transactionBody, error) {
		tx, inv, err := h.svc.CreateTransaction(ctx, input)
		return transactionBody{Transaction: tx, Invoice: inv}, err
	}
	update := func(ctx context.Context, id string, input transaction.Input) (transactionBody, error) {
		tx, inv, err := h.svc.UpdateTransaction(ctx, id, input)
		return transactionBody{Transaction: tx, Invoice: inv}, err
	}
	return resource{
		list:   listJSON(h, h.svc.ListTransactions),
		create: createJSON(h, create),
		get:    getJSON(h, h.svc.GetTransaction),
		update: updateJSON(h, update),
		remove: deleteJSON(h, h.svc.DeleteTransaction),
	}
}

// Rejects serves reject records; they are immutable once written.
func (h *Handler) Rejects() crud.Resource {
	return resource{
		list:   listJSON(h, h.svc.ListRejects),
		create: createJSON(h, h.svc.CreateReject),
		remove: deleteJSON(h, h.svc.DeleteReject),
	}
}

// HandleInvoiceList lists invoices.
func (h *Handler) HandleInvoiceList(w http.ResponseWriter, r *http.Request) {
	listJSON(h, h.svc.ListInvoices)(w, r)
}

// HandleInvoiceGet returns one invoice.
func (h *Handler) HandleInvoiceGet(w http.ResponseWriter, r *http.Request, id string) {
	getJSON(h, h.svc.GetInvoice)(w, r, id)
}

// HandleInvoicePay marks an invoice paid and books its income.
func (h *Handler) HandleInvoicePay(w http.ResponseWriter, r *http.Request, id string) {
	inv, entry, err := h.svc.PayInvoice(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, paymentBody{Invoice: inv, FinanceEntry: entry})
}

// HandleMonitoring renders the customs monitoring ledger for
// ?from=&to=&goods_type=.
func (h *Handler) HandleMonitoring(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ledger, err := h.svc.MonitoringLedger(r.Context(), transaction.LedgerQuery{
		From:      q.Get("from"),
		To:        q.Get("to"),
		GoodsType: q.Get("goods_type"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ledger)
}
