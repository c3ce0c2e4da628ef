package api

import (
	"net/http"

	"github.com/tppb-bridge/backoffice/internal/services/backoffice/api/module/crud"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/customs"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/inspection"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/quotation"
)

type confirmBody struct {
	Quotation  quotation.Quotation `json:"quotation"`
	BCDocument customs.Document    `json:"bc_document"`
}

type approveBody struct {
	Document customs.Document    `json:"bc_document"`
	Movement inspection.Movement `json:"goods_movement"`
}

type approverInput struct {
	Approver string `json:"approver"`
}

type reasonInput struct {
	Reason string `json:"reason"`
}

// Quotations serves quotation drafts.
func (h *Handler) Quotations() crud.Resource {
	return resource{
		list:   listJSON(h, h.svc.ListQuotations),
		create: createJSON(h, h.svc.CreateQuotation),
		get:    getJSON(h, h.svc.GetQuotation),
		update: updateJSON(h, h.svc.UpdateQuotation),
		remove: deleteJSON(h, h.svc.DeleteQuotation),
	}
}

// HandleQuotationConfirm confirms a draft and raises its BC document.
func (h *Handler) HandleQuotationConfirm(w http.ResponseWriter, r *http.Request, id string) {
	q, doc, err := h.svc.ConfirmQuotation(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, confirmBody{Quotation: q, BCDocument: doc})
}

// HandleQuotationReject rejects a draft.
func (h *Handler) HandleQuotationReject(w http.ResponseWriter, r *http.Request, id string) {
	getJSON(h, h.svc.RejectQuotation)(w, r, id)
}

// HandleBCDocumentList lists BC documents.
func (h *Handler) HandleBCDocumentList(w http.ResponseWriter, r *http.Request) {
	listJSON(h, h.svc.ListBCDocuments)(w, r)
}

// HandleBCDocumentGet returns one BC document.
func (h *Handler) HandleBCDocumentGet(w http.ResponseWriter, r *http.Request, id string) {
	getJSON(h, h.svc.GetBCDocument)(w, r, id)
}

// HandleBCDocumentApprove approves a pending document. The approver
// defaults to the signed-in operator.
func (h *Handler) HandleBCDocumentApprove(w http.ResponseWriter, r *http.Request, id string) {
	var input approverInput
	if err := decodeJSON(w, r, &input, true); err != nil {
		h.writeError(w, r, err)
		return
	}
	doc, mv, err := h.svc.ApproveBCDocument(r.Context(), id, input.Approver)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, approveBody{Document: doc, Movement: mv})
}

// HandleBCDocumentReject rejects a pending document with a reason.
func (h *Handler) HandleBCDocumentReject(w http.ResponseWriter, r *http.Request, id string) {
	var input reasonInput
	if err := decodeJSON(w, r, &input, false); err != nil {
		h.writeError(w, r, err)
		return
	}
	doc, err := h.svc.RejectBCDocument(r.Context(), id, input.Reason)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// HandleMovementList lists goods movements.
func (h *Handler) HandleMovementList(w http.ResponseWriter, r *http.Request) {
	listJSON(h, h.svc.ListGoodsMovements)(w, r)
}

// HandleMovementGet returns one goods movement.
func (h *Handler) HandleMovementGet(w http.ResponseWriter, r *http.Request, id string) {
	getJSON(h, h.svc.GetGoodsMovement)(w, r, id)
}

// HandleMovementInspect records the inspection of a pending movement.
func (h *Handler) HandleMovementInspect(w http.ResponseWriter, r *http.Request, id string) {
	updateJSON(h, h.svc.InspectMovement)(w, r, id)
}

// HandleInspectionList lists inspections.
func (h *Handler) HandleInspectionList(w http.ResponseWriter, r *http.Request) {
	listJSON(h, h.svc.ListInspections)(w, r)
}

// HandleInspectionGet returns one inspection.
func (h *Handler) HandleInspectionGet(w http.ResponseWriter, r *http.Request, id string) {
	getJSON(h, h.svc.GetInspection)(w, r, id)
}
