package api

import (
	"net/http"

	"github.com/tppb-bridge/backoffice/internal/services/backoffice/api/module/crud"
)

// FinanceEntries serves income and expense entries.
func (h *Handler) FinanceEntries() crud.Resource {
	return resource{
		list:   listJSON(h, h.svc.ListFinanceEntries),
		create: createJSON(h, h.svc.CreateFinanceEntry),
		get:    getJSON(h, h.svc.GetFinanceEntry),
		update: updateJSON(h, h.svc.UpdateFinanceEntry),
		remove: deleteJSON(h, h.svc.DeleteFinanceEntry),
	}
}

// Shipments serves the shipment log.
func (h *Handler) Shipments() crud.Resource {
	return resource{
		list:   listJSON(h, h.svc.ListShipments),
		create: createJSON(h, h.svc.CreateShipment),
		get:    getJSON(h, h.svc.GetShipment),
		update: updateJSON(h, h.svc.UpdateShipment),
		remove: deleteJSON(h, h.svc.DeleteShipment),
	}
}

// Events serves exhibition events.
func (h *Handler) Events() crud.Resource {
	return resource{
		list:   listJSON(h, h.svc.ListEvents),
		create: createJSON(h, h.svc.CreateEvent),
		get:    getJSON(h, h.svc.GetEvent),
		update: updateJSON(h, h.svc.UpdateEvent),
		remove: deleteJSON(h, h.svc.DeleteEvent),
	}
}

// HandleFinanceSummary totals the entries matching ?filter=.
func (h *Handler) HandleFinanceSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.FinanceSummary(r.Context(), listQuery(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
