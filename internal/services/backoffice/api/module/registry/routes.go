package registry

import (
	"net/http"

	"github.com/tppb-bridge/backoffice/internal/services/backoffice/api/module/crud"
	routepath "github.com/tppb-bridge/backoffice/internal/services/backoffice/api/routepath"
)

// Service exposes the customer and vendor collections.
type Service interface {
	Customers() crud.Resource
	Vendors() crud.Resource
}

// RegisterRoutes wires registry routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	crud.RegisterRoutes(mux, routepath.Customers, service.Customers())
	crud.RegisterRoutes(mux, routepath.Vendors, service.Vendors())
}
