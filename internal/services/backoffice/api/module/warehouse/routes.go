package warehouse

import (
	"net/http"

	"github.com/tppb-bridge/backoffice/internal/services/backoffice/api/module/crud"
	routepath "github.com/tppb-bridge/backoffice/internal/services/backoffice/api/routepath"
)

// Service defines warehouse route handlers.
type Service interface {
	ItemCodes() crud.Resource
	Registrations() crud.Resource
	HandleMutationList(w http.ResponseWriter, r *http.Request)
	HandleMutationSubmit(w http.ResponseWriter, r *http.Request)
	HandleWarehouseStats(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires warehouse routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	crud.RegisterRoutes(mux, routepath.ItemCodes, service.ItemCodes())
	crud.RegisterRoutes(mux, routepath.Registrations, service.Registrations())
	mux.HandleFunc("GET "+routepath.Mutations, service.HandleMutationList)
	mux.HandleFunc("POST "+routepath.Mutations, service.HandleMutationSubmit)
	mux.HandleFunc("GET "+routepath.WarehouseStats, service.HandleWarehouseStats)
}
