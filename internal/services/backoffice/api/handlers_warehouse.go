package api

import (
	"net/http"

	"github.com/tppb-bridge/backoffice/internal/services/backoffice/api/module/crud"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/warehouse"
)

type mutationBatch struct {
	Mutations []warehouse.MovementRequest `json:"mutations"`
}

// Registrations serves warehouse goods registrations.
func (h *Handler) Registrations() crud.Resource {
	return resource{
		list:   listJSON(h, h.svc.ListRegistrations),
		create: createJSON(h, h.svc.CreateRegistration),
		get:    getJSON(h, h.svc.GetRegistration),
		update: updateJSON(h, h.svc.UpdateRegistration),
		remove: deleteJSON(h, h.svc.DeleteRegistration),
	}
}

// HandleMutationList lists the stock mutation log.
func (h *Handler) HandleMutationList(w http.ResponseWriter, r *http.Request) {
	listJSON(h, h.svc.ListMutationLogs)(w, r)
}

// HandleMutationSubmit applies a batch of movements atomically.
func (h *Handler) HandleMutationSubmit(w http.ResponseWriter, r *http.Request) {
	var batch mutationBatch
	if err := decodeJSON(w, r, &batch, false); err != nil {
		h.writeError(w, r, err)
		return
	}
	logs, err := h.svc.SubmitMutations(r.Context(), batch.Mutations)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newListBody(logs))
}

// HandleWarehouseStats summarizes the mutation log.
func (h *Handler) HandleWarehouseStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.WarehouseStats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
