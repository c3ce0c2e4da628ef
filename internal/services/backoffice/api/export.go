package api

import (
	"bytes"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/tppb-bridge/backoffice/internal/platform/csvexport"
)

// HandleExport downloads dataset as CSV, narrowed by ?filter= and ?q=.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request, dataset string) {
	table, err := h.svc.Export(r.Context(), dataset, listQuery(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := table.WriteCSV(&buf); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", csvexport.Filename(table.Name, h.now())))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("write export", zap.String("dataset", table.Name), zap.Error(err))
	}
}
