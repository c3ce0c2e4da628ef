package customs

import (
	"net/http"

	"github.com/tppb-bridge/backoffice/internal/services/backoffice/api/module/crud"
	routepath "github.com/tppb-bridge/backoffice/internal/services/backoffice/api/routepath"
)

// Service defines customs route handlers: BC codes, quotations, BC
// documents, goods movements and inspections.
type Service interface {
	BCCodes() crud.Resource
	Quotations() crud.Resource
	HandleQuotationConfirm(w http.ResponseWriter, r *http.Request, id string)
	HandleQuotationReject(w http.ResponseWriter, r *http.Request, id string)
	HandleBCDocumentList(w http.ResponseWriter, r *http.Request)
	HandleBCDocumentGet(w http.ResponseWriter, r *http.Request, id string)
	HandleBCDocumentApprove(w http.ResponseWriter, r *http.Request, id string)
	HandleBCDocumentReject(w http.ResponseWriter, r *http.Request, id string)
	HandleMovementList(w http.ResponseWriter, r *http.Request)
	HandleMovementGet(w http.ResponseWriter, r *http.Request, id string)
	HandleMovementInspect(w http.ResponseWriter, r *http.Request, id string)
	HandleInspectionList(w http.ResponseWriter, r *http.Request)
	HandleInspectionGet(w http.ResponseWriter, r *http.Request, id string)
}

// RegisterRoutes wires customs routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	crud.RegisterRoutes(mux, routepath.BCCodes, service.BCCodes())
	crud.RegisterRoutes(mux, routepath.Quotations, service.Quotations())
	crud.HandleID(mux, "POST "+routepath.Quotations+"/{id}/confirm", service.HandleQuotationConfirm)
	crud.HandleID(mux, "POST "+routepath.Quotations+"/{id}/reject", service.HandleQuotationReject)

	mux.HandleFunc("GET "+routepath.BCDocuments, service.HandleBCDocumentList)
	crud.HandleID(mux, "GET "+routepath.BCDocuments+"/{id}", service.HandleBCDocumentGet)
	crud.HandleID(mux, "POST "+routepath.BCDocuments+"/{id}/approve", service.HandleBCDocumentApprove)
	crud.HandleID(mux, "POST "+routepath.BCDocuments+"/{id}/reject", service.HandleBCDocumentReject)

	mux.HandleFunc("GET "+routepath.Movements, service.HandleMovementList)
	crud.HandleID(mux, "GET "+routepath.Movements+"/{id}", service.HandleMovementGet)
	crud.HandleID(mux, "POST "+routepath.Movements+"/{id}/inspect", service.HandleMovementInspect)

	mux.HandleFunc("GET "+routepath.Inspections, service.HandleInspectionList)
	crud.HandleID(mux, "GET "+routepath.Inspections+"/{id}", service.HandleInspectionGet)
}
