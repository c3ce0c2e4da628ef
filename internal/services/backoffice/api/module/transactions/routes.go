package transactions

import (
	"net/http"

	"github.com/tppb-bridge/backoffice/internal/services/backoffice/api/module/crud"
	routepath "github.com/tppb-bridge/backoffice/internal/services/backoffice/api/routepath"
)

// Service defines customs transaction, invoice and reject handlers.
type Service interface {
	Transactions() crud.Resource
	Rejects() crud.Resource
	HandleInvoiceList(w http.ResponseWriter, r *http.Request)
	HandleInvoiceGet(w http.ResponseWriter, r *http.Request, id string)
	HandleInvoicePay(w http.ResponseWriter, r *http.Request, id string)
	HandleMonitoring(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires transaction routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	crud.RegisterRoutes(mux, routepath.Transactions, service.Transactions())
	crud.RegisterRoutes(mux, routepath.Rejects, service.Rejects())
	mux.HandleFunc("GET "+routepath.Invoices, service.HandleInvoiceList)
	crud.HandleID(mux, "GET "+routepath.Invoices+"/{id}", service.HandleInvoiceGet)
	crud.HandleID(mux, "POST "+routepath.Invoices+"/{id}/pay", service.HandleInvoicePay)
	mux.HandleFunc("GET "+routepath.Monitoring, service.HandleMonitoring)
}
