package reports

import (
	"net/http"

	routepath "github.com/tppb-bridge/backoffice/internal/services/backoffice/api/routepath"
)

// Service defines report, activity and session handlers.
type Service interface {
	HandleDashboardReport(w http.ResponseWriter, r *http.Request)
	HandleRevenue(w http.ResponseWriter, r *http.Request)
	HandlePabean(w http.ResponseWriter, r *http.Request)
	HandleActivityList(w http.ResponseWriter, r *http.Request)
	HandleSession(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires report routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc("GET "+routepath.Dashboard, service.HandleDashboardReport)
	mux.HandleFunc("GET "+routepath.Revenue, service.HandleRevenue)
	mux.HandleFunc("GET "+routepath.Pabean, service.HandlePabean)
	mux.HandleFunc("GET "+routepath.Activity, service.HandleActivityList)
	mux.HandleFunc("GET "+routepath.Session, service.HandleSession)
}
