package export

import (
	"net/http"
	"strings"

	routepath "github.com/tppb-bridge/backoffice/internal/services/backoffice/api/routepath"
)

// Service defines CSV export handlers.
type Service interface {
	HandleExportIndex(w http.ResponseWriter, r *http.Request)
	HandleExport(w http.ResponseWriter, r *http.Request, dataset string)
}

// RegisterRoutes wires export routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc("GET "+routepath.Export, service.HandleExportIndex)
	mux.HandleFunc("GET "+routepath.Export+"/{file}", func(w http.ResponseWriter, r *http.Request) {
		HandleExportPath(w, r, service)
	})
}

// HandleExportPath accepts only "<dataset>.csv" file names.
func HandleExportPath(w http.ResponseWriter, r *http.Request, service Service) {
	dataset, ok := strings.CutSuffix(r.PathValue("file"), routepath.ExportSuffix)
	if !ok || dataset == "" {
		http.NotFound(w, r)
		return
	}
	service.HandleExport(w, r, dataset)
}
