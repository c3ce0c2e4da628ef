package dashboard

import (
	"net/http"

	routepath "github.com/tppb-bridge/backoffice/internal/services/backoffice/api/routepath"
)

// Service defines dashboard route handlers consumed by this route module.
type Service interface {
	HandleDashboard(w http.ResponseWriter, r *http.Request)
	HandleDashboardContent(w http.ResponseWriter, r *http.Request)
	HandleHealth(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires dashboard routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc("GET "+routepath.Root, service.HandleDashboard)
	mux.HandleFunc("GET "+routepath.DashboardContent, service.HandleDashboardContent)
	mux.HandleFunc("GET "+routepath.Health, service.HandleHealth)
}
