// Package storage defines persistence contracts for back-office state.
package storage

import (
	"context"
	"errors"

	"github.com/tppb-bridge/backoffice/internal/services/backoffice/activity"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/approval"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/customs"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/finance"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/inspection"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/logistics"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/quotation"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/registry"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/transaction"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/warehouse"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a unique key is already taken.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrBusy indicates the database stayed locked past the busy timeout.
	ErrBusy = errors.New("storage is busy")
)

// ListQuery narrows a list. Filter is an AIP-160 expression over the
// entity's declared fields; Search is a case-insensitive substring matched
// against the entity's search columns.
type ListQuery struct {
	Filter string
	Search string
}

// CustomerStore persists registry customers.
type CustomerStore interface {
	PutCustomer(ctx context.Context, c registry.Customer) error
	GetCustomer(ctx context.Context, id string) (registry.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
	ListCustomers(ctx context.Context, q ListQuery) ([]registry.Customer, error)
}

// VendorStore persists registry vendors.
type VendorStore interface {
	PutVendor(ctx context.Context, v registry.Vendor) error
	GetVendor(ctx context.Context, id string) (registry.Vendor, error)
	DeleteVendor(ctx context.Context, id string) error
	ListVendors(ctx context.Context, q ListQuery) ([]registry.Vendor, error)
}

// BCCodeStore persists the BC code master. Codes are unique.
type BCCodeStore interface {
	PutBCCode(ctx context.Context, c customs.BCCode) error
	GetBCCode(ctx context.Context, id string) (customs.BCCode, error)
	DeleteBCCode(ctx context.Context, id string) error
	ListBCCodes(ctx context.Context, q ListQuery) ([]customs.BCCode, error)
}

// BCDocumentStore persists BC documents.
type BCDocumentStore interface {
	PutBCDocument(ctx context.Context, d customs.Document) error
	GetBCDocument(ctx context.Context, id string) (customs.Document, error)
	ListBCDocuments(ctx context.Context, q ListQuery) ([]customs.Document, error)
}

// QuotationStore persists quotations.
type QuotationStore interface {
	PutQuotation(ctx context.Context, q quotation.Quotation) error
	GetQuotation(ctx context.Context, id string) (quotation.Quotation, error)
	DeleteQuotation(ctx context.Context, id string) error
	ListQuotations(ctx context.Context, q ListQuery) ([]quotation.Quotation, error)
}

// ItemCodeStore persists the item code master. Codes are unique.
type ItemCodeStore interface {
	PutItemCode(ctx context.Context, c warehouse.ItemCode) error
	GetItemCode(ctx context.Context, id string) (warehouse.ItemCode, error)
	DeleteItemCode(ctx context.Context, id string) error
	ListItemCodes(ctx context.Context, q ListQuery) ([]warehouse.ItemCode, error)
}

// RegistrationStore persists warehouse registrations and their mutation log.
type RegistrationStore interface {
	PutRegistration(ctx context.Context, r warehouse.Registration) error
	GetRegistration(ctx context.Context, id string) (warehouse.Registration, error)
	DeleteRegistration(ctx context.Context, id string) error
	ListRegistrations(ctx context.Context, q ListQuery) ([]warehouse.Registration, error)
	AppendMutationLog(ctx context.Context, l warehouse.MutationLog) error
	ListMutationLogs(ctx context.Context, q ListQuery) ([]warehouse.MutationLog, error)
}

// InspectionStore persists goods movements and their inspections.
type InspectionStore interface {
	PutGoodsMovement(ctx context.Context, m inspection.Movement) error
	GetGoodsMovement(ctx context.Context, id string) (inspection.Movement, error)
	ListGoodsMovements(ctx context.Context, q ListQuery) ([]inspection.Movement, error)
	PutInspection(ctx context.Context, i inspection.Inspection) error
	GetInspection(ctx context.Context, id string) (inspection.Inspection, error)
	ListInspections(ctx context.Context, q ListQuery) ([]inspection.Inspection, error)
}

// TransactionStore persists customs transactions, invoices and rejects.
type TransactionStore interface {
	PutTransaction(ctx context.Context, t transaction.Transaction) error
	GetTransaction(ctx context.Context, id string) (transaction.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	ListTransactions(ctx context.Context, q ListQuery) ([]transaction.Transaction, error)
	PutInvoice(ctx context.Context, inv transaction.Invoice) error
	GetInvoice(ctx context.Context, id string) (transaction.Invoice, error)
	GetInvoiceByTransaction(ctx context.Context, transactionID string) (transaction.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error
	ListInvoices(ctx context.Context, q ListQuery) ([]transaction.Invoice, error)
	PutReject(ctx context.Context, r transaction.RejectRecord) error
	DeleteReject(ctx context.Context, id string) error
	ListRejects(ctx context.Context, q ListQuery) ([]transaction.RejectRecord, error)
}

// ApprovalStore persists approval requests.
type ApprovalStore interface {
	PutApproval(ctx context.Context, r approval.Request) error
	GetApproval(ctx context.Context, id string) (approval.Request, error)
	ListApprovals(ctx context.Context, q ListQuery) ([]approval.Request, error)
}

// ActivityStore persists the audit trail.
type ActivityStore interface {
	AppendActivity(ctx context.Context, e activity.Entry) error
	ListActivity(ctx context.Context, q ListQuery) ([]activity.Entry, error)
}

// FinanceStore persists ledger entries.
type FinanceStore interface {
	PutFinanceEntry(ctx context.Context, e finance.Entry) error
	GetFinanceEntry(ctx context.Context, id string) (finance.Entry, error)
	DeleteFinanceEntry(ctx context.Context, id string) error
	ListFinanceEntries(ctx context.Context, q ListQuery) ([]finance.Entry, error)
}

// LogisticsStore persists shipments and events.
type LogisticsStore interface {
	PutShipment(ctx context.Context, s logistics.Shipment) error
	GetShipment(ctx context.Context, id string) (logistics.Shipment, error)
	DeleteShipment(ctx context.Context, id string) error
	ListShipments(ctx context.Context, q ListQuery) ([]logistics.Shipment, error)
	PutEvent(ctx context.Context, e logistics.Event) error
	GetEvent(ctx context.Context, id string) (logistics.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListEvents(ctx context.Context, q ListQuery) ([]logistics.Event, error)
}

// Stores groups every entity store.
type Stores interface {
	CustomerStore
	VendorStore
	BCCodeStore
	BCDocumentStore
	QuotationStore
	ItemCodeStore
	RegistrationStore
	InspectionStore
	TransactionStore
	ApprovalStore
	ActivityStore
	FinanceStore
	LogisticsStore
}

// Store is the root persistence handle. InTx runs fn against stores bound
// to one transaction, committing only when fn returns nil.
type Store interface {
	Stores
	InTx(ctx context.Context, fn func(Stores) error) error
	Close() error
}
