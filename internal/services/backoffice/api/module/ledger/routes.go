package ledger

import (
	"net/http"

	"github.com/tppb-bridge/backoffice/internal/services/backoffice/api/module/crud"
	routepath "github.com/tppb-bridge/backoffice/internal/services/backoffice/api/routepath"
)

// Service defines finance and logistics handlers.
type Service interface {
	FinanceEntries() crud.Resource
	Shipments() crud.Resource
	Events() crud.Resource
	HandleFinanceSummary(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires finance, shipment and event routes into the mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	crud.RegisterRoutes(mux, routepath.Finance, service.FinanceEntries())
	crud.RegisterRoutes(mux, routepath.Shipments, service.Shipments())
	crud.RegisterRoutes(mux, routepath.Events, service.Events())
	mux.HandleFunc("GET "+routepath.FinanceSummary, service.HandleFinanceSummary)
}
