package api

import (
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/api/module/crud"
)

// Customers serves the customer registry.
func (h *Handler) Customers() crud.Resource {
	return resource{
		list:   listJSON(h, h.svc.ListCustomers),
		create: createJSON(h, h.svc.CreateCustomer),
		get:    getJSON(h, h.svc.GetCustomer),
		update: updateJSON(h, h.svc.UpdateCustomer),
		remove: deleteJSON(h, h.svc.DeleteCustomer),
	}
}

// Vendors serves the vendor registry.
func (h *Handler) Vendors() crud.Resource {
	return resource{
		list:   listJSON(h, h.svc.ListVendors),
		create: createJSON(h, h.svc.CreateVendor),
		get:    getJSON(h, h.svc.GetVendor),
		update: updateJSON(h, h.svc.UpdateVendor),
		remove: deleteJSON(h, h.svc.DeleteVendor),
	}
}

// BCCodes serves the customs document code master.
func (h *Handler) BCCodes() crud.Resource {
	return resource{
		list:   listJSON(h, h.svc.ListBCCodes),
		create: createJSON(h, h.svc.CreateBCCode),
		get:    getJSON(h, h.svc.GetBCCode),
		update: updateJSON(h, h.svc.UpdateBCCode),
		remove: deleteJSON(h, h.svc.DeleteBCCode),
	}
}

// ItemCodes serves the warehouse item code master.
func (h *Handler) ItemCodes() crud.Resource {
	return resource{
		list:   listJSON(h, h.svc.ListItemCodes),
		create: createJSON(h, h.svc.CreateItemCode),
		get:    getJSON(h, h.svc.GetItemCode),
		update: updateJSON(h, h.svc.UpdateItemCode),
		remove: deleteJSON(h, h.svc.DeleteItemCode),
	}
}
