package approvals

import (
	"net/http"

	"github.com/tppb-bridge/backoffice/internal/services/backoffice/api/module/crud"
	routepath "github.com/tppb-bridge/backoffice/internal/services/backoffice/api/routepath"
)

// Service defines approval workflow handlers.
type Service interface {
	HandleApprovalList(w http.ResponseWriter, r *http.Request)
	HandleApprovalCreate(w http.ResponseWriter, r *http.Request)
	HandleApprovalStats(w http.ResponseWriter, r *http.Request)
	HandleApprovalGet(w http.ResponseWriter, r *http.Request, id string)
	HandleApprovalApprove(w http.ResponseWriter, r *http.Request, id string)
	HandleApprovalReject(w http.ResponseWriter, r *http.Request, id string)
}

// RegisterRoutes wires approval routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc("GET "+routepath.Approvals, service.HandleApprovalList)
	mux.HandleFunc("POST "+routepath.Approvals, service.HandleApprovalCreate)
	mux.HandleFunc("GET "+routepath.ApprovalStats, service.HandleApprovalStats)
	crud.HandleID(mux, "GET "+routepath.Approvals+"/{id}", service.HandleApprovalGet)
	crud.HandleID(mux, "POST "+routepath.Approvals+"/{id}/approve", service.HandleApprovalApprove)
	crud.HandleID(mux, "POST "+routepath.Approvals+"/{id}/reject", service.HandleApprovalReject)
}
