package sqlite

import (
	"context"
	"strings"

	"github.com/tppb-bridge/backoffice/internal/services/backoffice/activity"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/approval"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/customs"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/finance"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/inspection"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/logistics"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/quotation"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/registry"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/storage"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/transaction"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/warehouse"
)

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

// PutCustomer upserts a customer.
func (r repo) PutCustomer(ctx context.Context, c registry.Customer) error {
	return customersTable.put(ctx, r.q, c.ID, []any{c.Name, c.Company, c.Email, string(c.Status), toMillis(c.CreatedAt)}, c)
}

// GetCustomer returns one customer.
func (r repo) GetCustomer(ctx context.Context, id string) (registry.Customer, error) {
	return getRecord[registry.Customer](ctx, r.q, customersTable, id)
}

// DeleteCustomer removes one customer.
func (r repo) DeleteCustomer(ctx context.Context, id string) error {
	return customersTable.delete(ctx, r.q, id)
}

// ListCustomers returns customers, newest first.
func (r repo) ListCustomers(ctx context.Context, q storage.ListQuery) ([]registry.Customer, error) {
	return listRecords[registry.Customer](ctx, r.q, customersTable, q)
}

func (r repo) PutVendor(ctx context.Context, v registry.Vendor) error {
	return vendorsTable.put(ctx, r.q, v.ID, []any{v.Name, string(v.Category), v.Email, string(v.Status), toMillis(v.CreatedAt)}, v)
}

func (r repo) GetVendor(ctx context.Context, id string) (registry.Vendor, error) {
	return getRecord[registry.Vendor](ctx, r.q, vendorsTable, id)
}

func (r repo) DeleteVendor(ctx context.Context, id string) error {
	return vendorsTable.delete(ctx, r.q, id)
}

func (r repo) ListVendors(ctx context.Context, q storage.ListQuery) ([]registry.Vendor, error) {
	return listRecords[registry.Vendor](ctx, r.q, vendorsTable, q)
}

// PutBCCode upserts a BC code; a taken code yields storage.ErrAlreadyExists.
func (r repo) PutBCCode(ctx context.Context, c customs.BCCode) error {
	return bcCodesTable.put(ctx, r.q, c.ID, []any{c.Code, c.Name, string(c.Category), boolInt(c.IsActive), toMillis(c.CreatedAt)}, c)
}

func (r repo) GetBCCode(ctx context.Context, id string) (customs.BCCode, error) {
	return getRecord[customs.BCCode](ctx, r.q, bcCodesTable, id)
}

func (r repo) DeleteBCCode(ctx context.Context, id string) error {
	return bcCodesTable.delete(ctx, r.q, id)
}

func (r repo) ListBCCodes(ctx context.Context, q storage.ListQuery) ([]customs.BCCode, error) {
	return listRecords[customs.BCCode](ctx, r.q, bcCodesTable, q)
}

func (r repo) PutBCDocument(ctx context.Context, d customs.Document) error {
	return bcDocumentsTable.put(ctx, r.q, d.ID, []any{
		d.BCNumber, d.BCType, string(d.Direction), string(d.Status), d.CustomerName, d.QuotationID, d.SubmittedDate, toMillis(d.CreatedAt),
	}, d)
}

func (r repo) GetBCDocument(ctx context.Context, id string) (customs.Document, error) {
	return getRecord[customs.Document](ctx, r.q, bcDocumentsTable, id)
}

func (r repo) ListBCDocuments(ctx context.Context, q storage.ListQuery) ([]customs.Document, error) {
	return listRecords[customs.Document](ctx, r.q, bcDocumentsTable, q)
}

func (r repo) PutQuotation(ctx context.Context, q quotation.Quotation) error {
	return quotationsTable.put(ctx, r.q, q.ID, []any{
		q.Number, string(q.Direction), string(q.Status), q.CustomerName, q.Date, toMillis(q.CreatedAt),
	}, q)
}

func (r repo) GetQuotation(ctx context.Context, id string) (quotation.Quotation, error) {
	return getRecord[quotation.Quotation](ctx, r.q, quotationsTable, id)
}

func (r repo) DeleteQuotation(ctx context.Context, id string) error {
	return quotationsTable.delete(ctx, r.q, id)
}

func (r repo) ListQuotations(ctx context.Context, q storage.ListQuery) ([]quotation.Quotation, error) {
	return listRecords[quotation.Quotation](ctx, r.q, quotationsTable, q)
}

func (r repo) PutItemCode(ctx context.Context, c warehouse.ItemCode) error {
	return itemCodesTable.put(ctx, r.q, c.ID, []any{c.ItemCode, c.ItemType, toMillis(c.CreatedAt)}, c)
}

func (r repo) GetItemCode(ctx context.Context, id string) (warehouse.ItemCode, error) {
	return getRecord[warehouse.ItemCode](ctx, r.q, itemCodesTable, id)
}

func (r repo) DeleteItemCode(ctx context.Context, id string) error {
	return itemCodesTable.delete(ctx, r.q, id)
}

func (r repo) ListItemCodes(ctx context.Context, q storage.ListQuery) ([]warehouse.ItemCode, error) {
	return listRecords[warehouse.ItemCode](ctx, r.q, itemCodesTable, q)
}

func (r repo) PutRegistration(ctx context.Context, reg warehouse.Registration) error {
	return registrationsTable.put(ctx, r.q, reg.ID, []any{
		reg.Number, reg.BCDocumentNumber, reg.CustomerName, reg.Title, reg.SubmissionDate, toMillis(reg.CreatedAt),
		registrationItemNames(reg),
	}, reg)
}

// registrationItemNames is the searchable text of a registration's items.
func registrationItemNames(reg warehouse.Registration) string {
	var names []string
	for _, pkg := range reg.Packages {
		for _, item := range pkg.Items {
			names = append(names, item.Name)
		}
	}
	return strings.Join(names, "\n")
}

func (r repo) GetRegistration(ctx context.Context, id string) (warehouse.Registration, error) {
	return getRecord[warehouse.Registration](ctx, r.q, registrationsTable, id)
}

func (r repo) DeleteRegistration(ctx context.Context, id string) error {
	return registrationsTable.delete(ctx, r.q, id)
}

// ListRegistrations searches number, BC number, customer, title and item
// names.
func (r repo) ListRegistrations(ctx context.Context, q storage.ListQuery) ([]warehouse.Registration, error) {
	return listRecords[warehouse.Registration](ctx, r.q, registrationsTable, q)
}

func (r repo) AppendMutationLog(ctx context.Context, l warehouse.MutationLog) error {
	return mutationLogsTable.put(ctx, r.q, l.ID, []any{
		l.RegistrationID, l.RegistrationNumber, l.BCDocumentNumber, l.ItemName, l.PIC, string(l.Type), l.Date, toMillis(l.CreatedAt),
	}, l)
}

func (r repo) ListMutationLogs(ctx context.Context, q storage.ListQuery) ([]warehouse.MutationLog, error) {
	return listRecords[warehouse.MutationLog](ctx, r.q, mutationLogsTable, q)
}

func (r repo) PutGoodsMovement(ctx context.Context, m inspection.Movement) error {
	return goodsMovementsTable.put(ctx, r.q, m.ID, []any{
		m.Number, m.BCDocID, m.BCNumber, string(m.Direction), string(m.Status), m.MovementDate, toMillis(m.CreatedAt),
	}, m)
}

func (r repo) GetGoodsMovement(ctx context.Context, id string) (inspection.Movement, error) {
	return getRecord[inspection.Movement](ctx, r.q, goodsMovementsTable, id)
}

func (r repo) ListGoodsMovements(ctx context.Context, q storage.ListQuery) ([]inspection.Movement, error) {
	return listRecords[inspection.Movement](ctx, r.q, goodsMovementsTable, q)
}

// PutInspection stores an inspection; a movement can be inspected once.
func (r repo) PutInspection(ctx context.Context, i inspection.Inspection) error {
	return inspectionsTable.put(ctx, r.q, i.ID, []any{
		i.Number, i.GoodsMovementID, i.BCNumber, i.Inspector, string(i.OverallStatus), i.InspectionDate, toMillis(i.CreatedAt),
	}, i)
}

func (r repo) GetInspection(ctx context.Context, id string) (inspection.Inspection, error) {
	return getRecord[inspection.Inspection](ctx, r.q, inspectionsTable, id)
}

func (r repo) ListInspections(ctx context.Context, q storage.ListQuery) ([]inspection.Inspection, error) {
	return listRecords[inspection.Inspection](ctx, r.q, inspectionsTable, q)
}

func (r repo) PutTransaction(ctx context.Context, t transaction.Transaction) error {
	return transactionsTable.put(ctx, r.q, t.ID, []any{
		t.Number, string(t.Direction), t.BCDocNumber, t.Party, string(t.Status), t.Date, toMillis(t.CreatedAt),
	}, t)
}

func (r repo) GetTransaction(ctx context.Context, id string) (transaction.Transaction, error) {
	return getRecord[transaction.Transaction](ctx, r.q, transactionsTable, id)
}

func (r repo) DeleteTransaction(ctx context.Context, id string) error {
	return transactionsTable.delete(ctx, r.q, id)
}

func (r repo) ListTransactions(ctx context.Context, q storage.ListQuery) ([]transaction.Transaction, error) {
	return listRecords[transaction.Transaction](ctx, r.q, transactionsTable, q)
}

func (r repo) PutInvoice(ctx context.Context, inv transaction.Invoice) error {
	return invoicesTable.put(ctx, r.q, inv.ID, []any{
		inv.Number, inv.TransactionID, inv.Party, string(inv.Status), inv.IssuedDate, toMillis(inv.CreatedAt),
	}, inv)
}

func (r repo) GetInvoice(ctx context.Context, id string) (transaction.Invoice, error) {
	return getRecord[transaction.Invoice](ctx, r.q, invoicesTable, id)
}

// GetInvoiceByTransaction returns the invoice issued for a transaction.
func (r repo) GetInvoiceByTransaction(ctx context.Context, transactionID string) (transaction.Invoice, error) {
	return findRecord[transaction.Invoice](ctx, r.q, invoicesTable, "transaction_id", transactionID)
}

func (r repo) DeleteInvoice(ctx context.Context, id string) error {
	return invoicesTable.delete(ctx, r.q, id)
}

func (r repo) ListInvoices(ctx context.Context, q storage.ListQuery) ([]transaction.Invoice, error) {
	return listRecords[transaction.Invoice](ctx, r.q, invoicesTable, q)
}

func (r repo) PutReject(ctx context.Context, rec transaction.RejectRecord) error {
	return rejectsTable.put(ctx, r.q, rec.ID, []any{
		rec.CustomsDocNumber, rec.AssetName, rec.Reason, rec.GoodsType, rec.Date, toMillis(rec.CreatedAt),
	}, rec)
}

func (r repo) DeleteReject(ctx context.Context, id string) error {
	return rejectsTable.delete(ctx, r.q, id)
}

func (r repo) ListRejects(ctx context.Context, q storage.ListQuery) ([]transaction.RejectRecord, error) {
	return listRecords[transaction.RejectRecord](ctx, r.q, rejectsTable, q)
}

func (r repo) PutApproval(ctx context.Context, a approval.Request) error {
	return approvalsTable.put(ctx, r.q, a.ID, []any{
		string(a.Type), string(a.EntityType), a.EntityID, a.EntityName, a.RequestedBy, a.Details, string(a.Status), toMillis(a.RequestDate),
	}, a)
}

func (r repo) GetApproval(ctx context.Context, id string) (approval.Request, error) {
	return getRecord[approval.Request](ctx, r.q, approvalsTable, id)
}

func (r repo) ListApprovals(ctx context.Context, q storage.ListQuery) ([]approval.Request, error) {
	return listRecords[approval.Request](ctx, r.q, approvalsTable, q)
}

func (r repo) AppendActivity(ctx context.Context, e activity.Entry) error {
	return activityTable.put(ctx, r.q, e.ID, []any{
		e.User, string(e.Action), e.Module, e.EntityType, e.EntityName, e.Details, toMillis(e.Timestamp),
	}, e)
}

func (r repo) ListActivity(ctx context.Context, q storage.ListQuery) ([]activity.Entry, error) {
	return listRecords[activity.Entry](ctx, r.q, activityTable, q)
}

func (r repo) PutFinanceEntry(ctx context.Context, e finance.Entry) error {
	return financeTable.put(ctx, r.q, e.ID, []any{
		string(e.Type), e.Category, e.Module, e.Description, e.Date, toMillis(e.CreatedAt),
	}, e)
}

func (r repo) GetFinanceEntry(ctx context.Context, id string) (finance.Entry, error) {
	return getRecord[finance.Entry](ctx, r.q, financeTable, id)
}

func (r repo) DeleteFinanceEntry(ctx context.Context, id string) error {
	return financeTable.delete(ctx, r.q, id)
}

func (r repo) ListFinanceEntries(ctx context.Context, q storage.ListQuery) ([]finance.Entry, error) {
	return listRecords[finance.Entry](ctx, r.q, financeTable, q)
}

func (r repo) PutShipment(ctx context.Context, s logistics.Shipment) error {
	return shipmentsTable.put(ctx, r.q, s.ID, []any{
		s.Origin, s.Destination, s.CustomerName, s.VendorName, string(s.Status), toMillis(s.CreatedAt),
	}, s)
}

func (r repo) GetShipment(ctx context.Context, id string) (logistics.Shipment, error) {
	return getRecord[logistics.Shipment](ctx, r.q, shipmentsTable, id)
}

func (r repo) DeleteShipment(ctx context.Context, id string) error {
	return shipmentsTable.delete(ctx, r.q, id)
}

func (r repo) ListShipments(ctx context.Context, q storage.ListQuery) ([]logistics.Shipment, error) {
	return listRecords[logistics.Shipment](ctx, r.q, shipmentsTable, q)
}

func (r repo) PutEvent(ctx context.Context, e logistics.Event) error {
	return eventsTable.put(ctx, r.q, e.ID, []any{
		e.Name, e.Location, e.CustomerName, string(e.Status), e.Date, toMillis(e.CreatedAt),
	}, e)
}

func (r repo) GetEvent(ctx context.Context, id string) (logistics.Event, error) {
	return getRecord[logistics.Event](ctx, r.q, eventsTable, id)
}

func (r repo) DeleteEvent(ctx context.Context, id string) error {
	return eventsTable.delete(ctx, r.q, id)
}

func (r repo) ListEvents(ctx context.Context, q storage.ListQuery) ([]logistics.Event, error) {
	return listRecords[logistics.Event](ctx, r.q, eventsTable, q)
}
