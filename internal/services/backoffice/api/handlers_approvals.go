package api

import (
	"net/http"
)

// HandleApprovalList lists approval requests.
func (h *Handler) HandleApprovalList(w http.ResponseWriter, r *http.Request) {
	listJSON(h, h.svc.ListApprovals)(w, r)
}

// HandleApprovalCreate files an edit or delete request.
func (h *Handler) HandleApprovalCreate(w http.ResponseWriter, r *http.Request) {
	createJSON(h, h.svc.RequestApproval)(w, r)
}

// HandleApprovalStats counts requests per status.
func (h *Handler) HandleApprovalStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.ApprovalStats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// HandleApprovalGet returns one request.
func (h *Handler) HandleApprovalGet(w http.ResponseWriter, r *http.Request, id string) {
	getJSON(h, h.svc.GetApproval)(w, r, id)
}

// HandleApprovalApprove approves a pending request and applies it.
func (h *Handler) HandleApprovalApprove(w http.ResponseWriter, r *http.Request, id string) {
	getJSON(h, h.svc.ApproveRequest)(w, r, id)
}

// HandleApprovalReject rejects a pending request with a reason.
func (h *Handler) HandleApprovalReject(w http.ResponseWriter, r *http.Request, id string) {
	var input reasonInput
	if err := decodeJSON(w, r, &input, false); err != nil {
		h.writeError(w, r, err)
		return
	}
	req, err := h.svc.RejectRequest(r.Context(), id, input.Reason)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}
