// Package routepath holds the back-office URL layout.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root             = "/{$}"
	DashboardContent = "/dashboard/content"
	Health           = "/healthz"
)

const (
	APIPrefix = "/api"

	Customers     = APIPrefix + "/customers"
	Vendors       = APIPrefix + "/vendors"
	BCCodes       = APIPrefix + "/bc-codes"
	ItemCodes     = APIPrefix + "/item-codes"
	Quotations    = APIPrefix + "/quotations"
	BCDocuments   = APIPrefix + "/bc-documents"
	Movements     = APIPrefix + "/goods-movements"
	Inspections   = APIPrefix + "/inspections"
	Registrations = APIPrefix + "/registrations"
	Mutations     = APIPrefix + "/mutations"
	Transactions  = APIPrefix + "/transactions"
	Invoices      = APIPrefix + "/invoices"
	Rejects       = APIPrefix + "/rejects"
	Monitoring    = APIPrefix + "/monitoring"
	Approvals     = APIPrefix + "/approvals"
	Finance       = APIPrefix + "/finance"
	Shipments     = APIPrefix + "/shipments"
	Events        = APIPrefix + "/events"
	Activity      = APIPrefix + "/activity"
	Reports       = APIPrefix + "/reports"
	Session       = APIPrefix + "/session"
)

const (
	WarehouseStats = APIPrefix + "/warehouse/stats"
	ApprovalStats  = Approvals + "/stats"
	FinanceSummary = Finance + "/summary"
	Revenue        = Reports + "/revenue"
	Pabean         = Reports + "/pabean"
	Dashboard      = Reports + "/dashboard"
)

const (
	Export       = "/export"
	ExportSuffix = ".csv"
)

// Item returns the path of one record under collection.
func Item(collection, id string) string {
	return collection + "/" + escapeSegment(id)
}

// Action returns the path of a state-changing action on one record.
func Action(collection, id, action string) string {
	return Item(collection, id) + "/" + action
}

// ExportFile returns the download path of a dataset.
func ExportFile(dataset string) string {
	return Export + "/" + escapeSegment(dataset) + ExportSuffix
}

// IsAPI reports whether path belongs to the JSON API.
func IsAPI(path string) bool {
	return path == APIPrefix || strings.HasPrefix(path, APIPrefix+"/")
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
