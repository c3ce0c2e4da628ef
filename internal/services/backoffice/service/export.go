package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/tppb-bridge/backoffice/internal/platform/csvexport"
	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/activity"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/approval"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/customs"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/finance"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/logistics"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/quotation"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/registry"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/storage"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/transaction"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/warehouse"
)

// Table is one exportable dataset.
type Table struct {
	Name    string
	Columns []csvexport.Column
	Rows    []csvexport.Row
}

// WriteCSV renders the table. An empty table is CodeExportNoData.
func (t Table) WriteCSV(w io.Writer) error {
	if err := csvexport.Write(w, t.Columns, t.Rows); err != nil {
		if errors.Is(err, csvexport.ErrNoData) {
			return apperrors.Wrap(apperrors.CodeExportNoData, fmt.Sprintf("export %s has no rows", t.Name), err)
		}
		return fmt.Errorf("write %s csv: %w", t.Name, err)
	}
	return nil
}

type exporter func(ctx context.Context, s *Service, q storage.ListQuery) (Table, error)

var exporters = map[string]exporter{
	"customers":    exportCustomers,
	"vendors":      exportVendors,
	"bc-codes":     exportBCCodes,
	"item-codes":   exportItemCodes,
	"quotations":   exportQuotations,
	"bc-documents": exportBCDocuments,
	"stock":        exportStock,
	"mutations":    exportMutations,
	"transactions": exportTransactions,
	"invoices":     exportInvoices,
	"rejects":      exportRejects,
	"approvals":    exportApprovals,
	"activity":     exportActivity,
	"finance":      exportFinance,
	"shipments":    exportShipments,
	"events":       exportEvents,
}

// ExportDatasets lists the dataset names Export accepts.
func ExportDatasets() []string {
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Export loads dataset narrowed by q as CSV-ready rows.
func (s *Service) Export(ctx context.Context, dataset string, q storage.ListQuery) (Table, error) {
	name := strings.ToLower(strings.TrimSpace(dataset))
	fn, ok := exporters[name]
	if !ok {
		return Table{}, apperrors.NotFound("dataset", fmt.Sprintf("export dataset %q is unknown", dataset))
	}
	table, err := fn(ctx, s, q)
	if err != nil {
		return Table{}, err
	}
	table.Name = name
	return table, nil
}

func cols(pairs ...string) []csvexport.Column {
	out := make([]csvexport.Column, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, csvexport.Column{Key: pairs[i], Header: pairs[i+1]})
	}
	return out
}

func table[T any](records []T, err error, columns []csvexport.Column, row func(T) csvexport.Row) (Table, error) {
	if err != nil {
		return Table{}, err
	}
	out := make([]csvexport.Row, 0, len(records))
	for _, r := range records {
		out = append(out, row(r))
	}
	return Table{Columns: columns, Rows: out}, nil
}

func exportCustomers(ctx context.Context, s *Service, q storage.ListQuery) (Table, error) {
	list, err := s.ListCustomers(ctx, q)
	return table(list, err,
		cols("name", "Name", "company", "Company", "email", "Email", "phone", "Phone", "address", "Address", "npwp", "NPWP", "status", "Status"),
		func(c registry.Customer) csvexport.Row {
			return csvexport.Row{"name": c.Name, "company": c.Company, "email": c.Email, "phone": c.Phone,
				"address": c.Address, "npwp": c.NPWP, "status": string(c.Status)}
		})
}

func exportVendors(ctx context.Context, s *Service, q storage.ListQuery) (Table, error) {
	list, err := s.ListVendors(ctx, q)
	return table(list, err,
		cols("name", "Name", "contact", "Contact", "email", "Email", "phone", "Phone", "category", "Category", "npwp", "NPWP", "status", "Status"),
		func(v registry.Vendor) csvexport.Row {
			return csvexport.Row{"name": v.Name, "contact": v.Contact, "email": v.Email, "phone": v.Phone,
				"category": string(v.Category), "npwp": v.NPWP, "status": string(v.Status)}
		})
}

func exportBCCodes(ctx context.Context, s *Service, q storage.ListQuery) (Table, error) {
	list, err := s.ListBCCodes(ctx, q)
	return table(list, err,
		cols("code", "Code", "name", "Name", "category", "Category", "description", "Description", "active", "Active"),
		func(c customs.BCCode) csvexport.Row {
			return csvexport.Row{"code": c.Code, "name": c.Name, "category": string(c.Category),
				"description": c.Description, "active": c.IsActive}
		})
}

func exportItemCodes(ctx context.Context, s *Service, q storage.ListQuery) (Table, error) {
	list, err := s.ListItemCodes(ctx, q)
	return table(list, err,
		cols("item_code", "Item Code", "item_type", "Item Type"),
		func(c warehouse.ItemCode) csvexport.Row {
			return csvexport.Row{"item_code": c.ItemCode, "item_type": c.ItemType}
		})
}

func exportQuotations(ctx context.Context, s *Service, q storage.ListQuery) (Table, error) {
	list, err := s.ListQuotations(ctx, q)
	return table(list, err,
		cols("number", "Number", "date", "Date", "direction", "Direction", "customer", "Customer", "origin", "Origin",
			"destination", "Destination", "subtotal", "Subtotal", "discount", "Discount", "tax", "Tax",
			"grand_total", "Grand Total", "status", "Status"),
		func(qt quotation.Quotation) csvexport.Row {
			return csvexport.Row{"number": qt.Number, "date": qt.Date, "direction": string(qt.Direction),
				"customer": qt.CustomerName, "origin": qt.Origin, "destination": qt.Destination,
				"subtotal": qt.Summary.Subtotal, "discount": qt.Summary.DiscountAmount, "tax": qt.Summary.TaxAmount,
				"grand_total": qt.Summary.GrandTotal, "status": string(qt.Status)}
		})
}

func exportBCDocuments(ctx context.Context, s *Service, q storage.ListQuery) (Table, error) {
	list, err := s.ListBCDocuments(ctx, q)
	return table(list, err,
		cols("bc_number", "BC Number", "bc_type", "BC Type", "submitted_date", "Submitted", "customer", "Customer",
			"total_items", "Total Items", "total_value", "Total Value", "status", "Status", "approved_by", "Approved By"),
		func(d customs.Document) csvexport.Row {
			return csvexport.Row{"bc_number": d.BCNumber, "bc_type": d.BCType, "submitted_date": d.SubmittedDate,
				"customer": d.CustomerName, "total_items": d.TotalItems, "total_value": d.TotalValue,
				"status": string(d.Status), "approved_by": d.ApprovedBy}
		})
}

// stockLine flattens one registration item for export.
type stockLine struct {
	reg  warehouse.Registration
	pkg  string
	item warehouse.StockItem
}

func exportStock(ctx context.Context, s *Service, q storage.ListQuery) (Table, error) {
	regs, err := s.ListRegistrations(ctx, q)
	var lines []stockLine
	for _, reg := range regs {
		for _, pkg := range reg.Packages {
			for _, item := range pkg.Items {
				lines = append(lines, stockLine{reg: reg, pkg: pkg.PackageNumber, item: item})
			}
		}
	}
	return table(lines, err,
		cols("registration", "Registration", "bc_number", "BC Number", "package", "Package", "item_code", "Item Code",
			"name", "Name", "serial", "Serial Number", "quantity", "Stock", "unit", "Unit", "condition", "Condition",
			"value", "Unit Value", "room", "Room", "rack", "Rack", "slot", "Slot", "position", "Position"),
		func(l stockLine) csvexport.Row {
			return csvexport.Row{"registration": l.reg.Number, "bc_number": l.reg.BCDocumentNumber, "package": l.pkg,
				"item_code": l.item.ItemCode, "name": l.item.Name, "serial": l.item.SerialNumber,
				"quantity": l.item.Quantity, "unit": l.item.Unit, "condition": string(l.item.Condition),
				"value": l.item.Value, "room": l.item.Location.Room, "rack": l.item.Location.Rack,
				"slot": l.item.Location.Slot, "position": string(l.item.Position)}
		})
}

func exportMutations(ctx context.Context, s *Service, q storage.ListQuery) (Table, error) {
	list, err := s.ListMutationLogs(ctx, q)
	return table(list, err,
		cols("date", "Date", "time", "Time", "registration", "Registration", "bc_number", "BC Number", "item", "Item",
			"serial", "Serial Number", "type", "Type", "total_stock", "Stock Before", "mutated", "Mutated",
			"remaining", "Remaining", "origin", "Origin", "destination", "Destination", "pic", "PIC", "remarks", "Remarks"),
		func(l warehouse.MutationLog) csvexport.Row {
			return csvexport.Row{"date": l.Date, "time": l.Time, "registration": l.RegistrationNumber,
				"bc_number": l.BCDocumentNumber, "item": l.ItemName, "serial": l.SerialNumber, "type": string(l.Type),
				"total_stock": l.TotalStock, "mutated": l.MutatedQty, "remaining": l.RemainingStock,
				"origin": string(l.Origin), "destination": string(l.Destination), "pic": l.PIC, "remarks": l.Remarks}
		})
}

func exportTransactions(ctx context.Context, s *Service, q storage.ListQuery) (Table, error) {
	list, err := s.ListTransactions(ctx, q)
	return table(list, err,
		cols("number", "Number", "date", "Date", "direction", "Direction", "bc_number", "BC Number", "party", "Party",
			"value", "Value", "service_total", "Service Total", "direct_costs", "Direct Costs",
			"gross_profit", "Gross Profit", "margin", "Margin %", "status", "Status"),
		func(t transaction.Transaction) csvexport.Row {
			return csvexport.Row{"number": t.Number, "date": t.Date, "direction": string(t.Direction),
				"bc_number": t.BCDocNumber, "party": t.Party, "value": t.Totals.Value,
				"service_total": t.Totals.ServiceGrandTotal, "direct_costs": t.Totals.TotalDirectCosts,
				"gross_profit": t.Totals.GrossProfit, "margin": t.Totals.ProfitMargin, "status": string(t.Status)}
		})
}

func exportInvoices(ctx context.Context, s *Service, q storage.ListQuery) (Table, error) {
	list, err := s.ListInvoices(ctx, q)
	return table(list, err,
		cols("number", "Number", "issued", "Issued", "transaction", "Transaction", "bc_number", "BC Number",
			"party", "Party", "amount", "Amount", "status", "Status", "paid", "Paid"),
		func(inv transaction.Invoice) csvexport.Row {
			return csvexport.Row{"number": inv.Number, "issued": inv.IssuedDate, "transaction": inv.TransactionNumber,
				"bc_number": inv.BCDocNumber, "party": inv.Party, "amount": inv.Amount,
				"status": string(inv.Status), "paid": inv.PaidDate}
		})
}

func exportRejects(ctx context.Context, s *Service, q storage.ListQuery) (Table, error) {
	list, err := s.ListRejects(ctx, q)
	return table(list, err,
		cols("date", "Date", "doc_type", "Doc Type", "doc_number", "Doc Number", "receipt", "Receipt",
			"item_code", "Item Code", "asset", "Asset", "goods_type", "Goods Type", "quantity", "Quantity",
			"unit", "Unit", "value", "Value", "currency", "Currency", "reason", "Reason"),
		func(r transaction.RejectRecord) csvexport.Row {
			return csvexport.Row{"date": r.Date, "doc_type": r.CustomsDocType, "doc_number": r.CustomsDocNumber,
				"receipt": r.ReceiptNumber, "item_code": r.ItemCode, "asset": r.AssetName, "goods_type": r.GoodsType,
				"quantity": r.Quantity, "unit": r.Unit, "value": r.Value, "currency": r.Currency, "reason": r.Reason}
		})
}

func exportApprovals(ctx context.Context, s *Service, q storage.ListQuery) (Table, error) {
	list, err := s.ListApprovals(ctx, q)
	return table(list, err,
		cols("requested", "Requested", "type", "Type", "entity_type", "Entity Type", "entity", "Entity",
			"requested_by", "Requested By", "status", "Status", "reviewed_by", "Reviewed By", "reason", "Reason"),
		func(r approval.Request) csvexport.Row {
			return csvexport.Row{"requested": r.RequestDate, "type": string(r.Type), "entity_type": string(r.EntityType),
				"entity": r.EntityName, "requested_by": r.RequestedBy, "status": string(r.Status),
				"reviewed_by": r.ReviewedBy, "reason": r.RejectReason}
		})
}

func exportActivity(ctx context.Context, s *Service, q storage.ListQuery) (Table, error) {
	list, err := s.ListActivity(ctx, q)
	return table(list, err,
		cols("timestamp", "Timestamp", "user", "User", "action", "Action", "module", "Module",
			"entity_type", "Entity Type", "entity", "Entity", "details", "Details"),
		func(e activity.Entry) csvexport.Row {
			return csvexport.Row{"timestamp": e.Timestamp.Format("2006-01-02 15:04:05"), "user": e.User,
				"action": string(e.Action), "module": e.Module, "entity_type": e.EntityType,
				"entity": e.EntityName, "details": e.Details}
		})
}

func exportFinance(ctx context.Context, s *Service, q storage.ListQuery) (Table, error) {
	list, err := s.ListFinanceEntries(ctx, q)
	return table(list, err,
		cols("date", "Date", "type", "Type", "category", "Category", "module", "Module",
			"description", "Description", "amount", "Amount", "reference", "Reference"),
		func(e finance.Entry) csvexport.Row {
			return csvexport.Row{"date": e.Date, "type": string(e.Type), "category": e.Category, "module": e.Module,
				"description": e.Description, "amount": e.Amount, "reference": e.Reference}
		})
}

func exportShipments(ctx context.Context, s *Service, q storage.ListQuery) (Table, error) {
	list, err := s.ListShipments(ctx, q)
	return table(list, err,
		cols("origin", "Origin", "destination", "Destination", "customer", "Customer", "vendor", "Vendor",
			"status", "Status", "cost", "Cost"),
		func(sh logistics.Shipment) csvexport.Row {
			return csvexport.Row{"origin": sh.Origin, "destination": sh.Destination, "customer": sh.CustomerName,
				"vendor": sh.VendorName, "status": string(sh.Status), "cost": sh.Cost}
		})
}

func exportEvents(ctx context.Context, s *Service, q storage.ListQuery) (Table, error) {
	list, err := s.ListEvents(ctx, q)
	return table(list, err,
		cols("name", "Name", "date", "Date", "location", "Location", "customer", "Customer",
			"budget", "Budget", "status", "Status"),
		func(e logistics.Event) csvexport.Row {
			return csvexport.Row{"name": e.Name, "date": e.Date, "location": e.Location, "customer": e.CustomerName,
				"budget": e.Budget, "status": string(e.Status)}
		})
}
