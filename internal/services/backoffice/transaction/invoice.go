package transaction

import (
	"fmt"
	"strings"
	"time"

	"github.com/tppb-bridge/backoffice/internal/platform/calendar"
	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/id"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
)

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceUnpaid InvoiceStatus = "unpaid"
	InvoicePaid   InvoiceStatus = "paid"
)

// ErrInvoicePaid indicates a second payment attempt.
var ErrInvoicePaid = apperrors.New(apperrors.CodeInvoiceAlreadyPaid, "invoice already paid")

// Invoice bills the service grand total of one transaction.
type Invoice struct {
	ID                string        `json:"id"`
	Number            string        `json:"number"`
	TransactionID     string        `json:"transaction_id"`
	TransactionNumber string        `json:"transaction_number"`
	BCDocNumber       string        `json:"bc_doc_number"`
	Party             string        `json:"party"`
	Amount            money.Amount  `json:"amount"`
	Status            InvoiceStatus `json:"status"`
	IssuedDate        string        `json:"issued_date"`
	PaidDate          string        `json:"paid_date,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// IssueInvoice raises the unpaid invoice for tx.
func IssueInvoice(tx Transaction, now func() time.Time, idGenerator func() (string, error)) (Invoice, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	invoiceID, err := idGenerator()
	if err != nil {
		return Invoice{}, fmt.Errorf("generate invoice id: %w", err)
	}
	at := now().UTC()
	return Invoice{
		ID:                invoiceID,
		Number:            id.Number("INV", at, invoiceID),
		TransactionID:     tx.ID,
		TransactionNumber: tx.Number,
		BCDocNumber:       tx.BCDocNumber,
		Party:             tx.Party,
		Amount:            tx.Totals.ServiceGrandTotal,
		Status:            InvoiceUnpaid,
		IssuedDate:        calendar.Today(at),
		CreatedAt:         at,
		UpdatedAt:         at,
	}, nil
}

// Sync refreshes an unpaid invoice after its transaction changed. A paid
// invoice is left as booked, and an edit that would change its amount is
// rejected with ErrInvoicePaid.
func (inv Invoice) Sync(tx Transaction, now time.Time) (Invoice, error) {
	if inv.Status == InvoicePaid {
		if !tx.Totals.ServiceGrandTotal.Equal(inv.Amount) {
			return Invoice{}, alreadyPaid(inv)
		}
		return inv, nil
	}
	inv.Amount = tx.Totals.ServiceGrandTotal
	inv.BCDocNumber = tx.BCDocNumber
	inv.Party = tx.Party
	inv.UpdatedAt = now.UTC()
	return inv, nil
}

// Pay marks an unpaid invoice paid.
func Pay(inv Invoice, now func() time.Time) (Invoice, error) {
	if now == nil {
		now = time.Now
	}
	if inv.Status == InvoicePaid {
		return Invoice{}, alreadyPaid(inv)
	}
	at := now().UTC()
	inv.Status = InvoicePaid
	inv.PaidDate = calendar.Today(at)
	inv.UpdatedAt = at
	return inv, nil
}

func alreadyPaid(inv Invoice) error {
	return apperrors.WithMetadata(apperrors.CodeInvoiceAlreadyPaid,
		fmt.Sprintf("invoice %s already paid", inv.Number),
		map[string]string{"Number": inv.Number})
}

// Description is the finance ledger text for the invoice payment.
func (inv Invoice) Description() string {
	parts := []string{"Payment " + inv.Number}
	if inv.Party != "" {
		parts = append(parts, inv.Party)
	}
	if inv.BCDocNumber != "" {
		parts = append(parts, inv.BCDocNumber)
	}
	return strings.Join(parts, " / ")
}
