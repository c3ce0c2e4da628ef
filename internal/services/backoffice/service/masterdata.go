package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/tppb-bridge/backoffice/internal/services/backoffice/activity"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/customs"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/registry"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/storage"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/warehouse"
)

// CreateCustomer adds a customer.
func (s *Service) CreateCustomer(ctx context.Context, input registry.CustomerInput) (registry.Customer, error) {
	c, err := registry.CreateCustomer(input, s.now, s.newID)
	if err != nil {
		return registry.Customer{}, err
	}
	err = s.update(ctx, "CreateCustomer", func(st storage.Stores) error {
		if err := st.PutCustomer(ctx, c); err != nil {
			return storageErr("customer", err)
		}
		return s.record(ctx, st, activity.ActionAdd, activity.ModuleRegistry, "customer", c.ID, c.Name, "")
	})
	if err != nil {
		return registry.Customer{}, err
	}
	s.logChange(ctx, "customer created", zap.String("customer_id", c.ID))
	return c, nil
}

// UpdateCustomer replaces the editable fields of a customer.
func (s *Service) UpdateCustomer(ctx context.Context, customerID string, input registry.CustomerInput) (registry.Customer, error) {
	var updated registry.Customer
	err := s.update(ctx, "UpdateCustomer", func(st storage.Stores) error {
		existing, err := st.GetCustomer(ctx, customerID)
		if err != nil {
			return storageErr("customer", err)
		}
		if updated, err = registry.UpdateCustomer(existing, input, s.now); err != nil {
			return err
		}
		if err := st.PutCustomer(ctx, updated); err != nil {
			return storageErr("customer", err)
		}
		return s.record(ctx, st, activity.ActionEdit, activity.ModuleRegistry, "customer", updated.ID, updated.Name, "")
	})
	if err != nil {
		return registry.Customer{}, err
	}
	s.logChange(ctx, "customer updated", zap.String("customer_id", updated.ID))
	return updated, nil
}

// DeleteCustomer removes a customer.
func (s *Service) DeleteCustomer(ctx context.Context, customerID string) error {
	err := s.update(ctx, "DeleteCustomer", func(st storage.Stores) error {
		existing, err := st.GetCustomer(ctx, customerID)
		if err != nil {
			return storageErr("customer", err)
		}
		return s.deleteCustomer(ctx, st, existing)
	})
	if err != nil {
		return err
	}
	s.logChange(ctx, "customer deleted", zap.String("customer_id", customerID))
	return nil
}

func (s *Service) deleteCustomer(ctx context.Context, st storage.Stores, c registry.Customer) error {
	if err := st.DeleteCustomer(ctx, c.ID); err != nil {
		return storageErr("customer", err)
	}
	return s.record(ctx, st, activity.ActionDelete, activity.ModuleRegistry, "customer", c.ID, c.Name, "")
}

// GetCustomer returns one customer.
func (s *Service) GetCustomer(ctx context.Context, customerID string) (registry.Customer, error) {
	return get(ctx, s, "GetCustomer", "customer", customerID, storage.Stores.GetCustomer)
}

// ListCustomers lists customers.
func (s *Service) ListCustomers(ctx context.Context, q storage.ListQuery) ([]registry.Customer, error) {
	return list(ctx, s, "ListCustomers", "customer", q, storage.Stores.ListCustomers)
}

// CreateVendor adds a vendor.
func (s *Service) CreateVendor(ctx context.Context, input registry.VendorInput) (registry.Vendor, error) {
	v, err := registry.CreateVendor(input, s.now, s.newID)
	if err != nil {
		return registry.Vendor{}, err
	}
	err = s.update(ctx, "CreateVendor", func(st storage.Stores) error {
		if err := st.PutVendor(ctx, v); err != nil {
			return storageErr("vendor", err)
		}
		return s.record(ctx, st, activity.ActionAdd, activity.ModuleRegistry, "vendor", v.ID, v.Name, string(v.Category))
	})
	if err != nil {
		return registry.Vendor{}, err
	}
	s.logChange(ctx, "vendor created", zap.String("vendor_id", v.ID))
	return v, nil
}

// UpdateVendor replaces the editable fields of a vendor.
func (s *Service) UpdateVendor(ctx context.Context, vendorID string, input registry.VendorInput) (registry.Vendor, error) {
	var updated registry.Vendor
	err := s.update(ctx, "UpdateVendor", func(st storage.Stores) error {
		existing, err := st.GetVendor(ctx, vendorID)
		if err != nil {
			return storageErr("vendor", err)
		}
		if updated, err = registry.UpdateVendor(existing, input, s.now); err != nil {
			return err
		}
		if err := st.PutVendor(ctx, updated); err != nil {
			return storageErr("vendor", err)
		}
		return s.record(ctx, st, activity.ActionEdit, activity.ModuleRegistry, "vendor", updated.ID, updated.Name, "")
	})
	if err != nil {
		return registry.Vendor{}, err
	}
	s.logChange(ctx, "vendor updated", zap.String("vendor_id", updated.ID))
	return updated, nil
}

// DeleteVendor removes a vendor.
func (s *Service) DeleteVendor(ctx context.Context, vendorID string) error {
	err := s.update(ctx, "DeleteVendor", func(st storage.Stores) error {
		existing, err := st.GetVendor(ctx, vendorID)
		if err != nil {
			return storageErr("vendor", err)
		}
		return s.deleteVendor(ctx, st, existing)
	})
	if err != nil {
		return err
	}
	s.logChange(ctx, "vendor deleted", zap.String("vendor_id", vendorID))
	return nil
}

func (s *Service) deleteVendor(ctx context.Context, st storage.Stores, v registry.Vendor) error {
	if err := st.DeleteVendor(ctx, v.ID); err != nil {
		return storageErr("vendor", err)
	}
	return s.record(ctx, st, activity.ActionDelete, activity.ModuleRegistry, "vendor", v.ID, v.Name, "")
}

// GetVendor returns one vendor.
func (s *Service) GetVendor(ctx context.Context, vendorID string) (registry.Vendor, error) {
	return get(ctx, s, "GetVendor", "vendor", vendorID, storage.Stores.GetVendor)
}

// ListVendors lists vendors.
func (s *Service) ListVendors(ctx context.Context, q storage.ListQuery) ([]registry.Vendor, error) {
	return list(ctx, s, "ListVendors", "vendor", q, storage.Stores.ListVendors)
}

// CreateBCCode adds a BC code; codes are unique.
func (s *Service) CreateBCCode(ctx context.Context, input customs.BCCodeInput) (customs.BCCode, error) {
	code, err := customs.CreateBCCode(input, s.now, s.newID)
	if err != nil {
		return customs.BCCode{}, err
	}
	err = s.update(ctx, "CreateBCCode", func(st storage.Stores) error {
		if err := st.PutBCCode(ctx, code); err != nil {
			return storageErr("bc_code", err)
		}
		return s.record(ctx, st, activity.ActionAdd, activity.ModuleCustoms, "bc_code", code.ID, code.Code, code.Name)
	})
	if err != nil {
		return customs.BCCode{}, err
	}
	s.logChange(ctx, "bc code created", zap.String("bc_code_id", code.ID), zap.String("code", code.Code))
	return code, nil
}

// UpdateBCCode edits a BC code.
func (s *Service) UpdateBCCode(ctx context.Context, codeID string, input customs.BCCodeInput) (customs.BCCode, error) {
	var updated customs.BCCode
	err := s.update(ctx, "UpdateBCCode", func(st storage.Stores) error {
		existing, err := st.GetBCCode(ctx, codeID)
		if err != nil {
			return storageErr("bc_code", err)
		}
		if updated, err = customs.UpdateBCCode(existing, input, s.now); err != nil {
			return err
		}
		if err := st.PutBCCode(ctx, updated); err != nil {
			return storageErr("bc_code", err)
		}
		return s.record(ctx, st, activity.ActionEdit, activity.ModuleCustoms, "bc_code", updated.ID, updated.Code, updated.Name)
	})
	if err != nil {
		return customs.BCCode{}, err
	}
	s.logChange(ctx, "bc code updated", zap.String("bc_code_id", updated.ID))
	return updated, nil
}

// DeleteBCCode removes a BC code.
func (s *Service) DeleteBCCode(ctx context.Context, codeID string) error {
	err := s.update(ctx, "DeleteBCCode", func(st storage.Stores) error {
		existing, err := st.GetBCCode(ctx, codeID)
		if err != nil {
			return storageErr("bc_code", err)
		}
		return s.deleteBCCode(ctx, st, existing)
	})
	if err != nil {
		return err
	}
	s.logChange(ctx, "bc code deleted", zap.String("bc_code_id", codeID))
	return nil
}

func (s *Service) deleteBCCode(ctx context.Context, st storage.Stores, code customs.BCCode) error {
	if err := st.DeleteBCCode(ctx, code.ID); err != nil {
		return storageErr("bc_code", err)
	}
	return s.record(ctx, st, activity.ActionDelete, activity.ModuleCustoms, "bc_code", code.ID, code.Code, code.Name)
}

// GetBCCode returns one BC code.
func (s *Service) GetBCCode(ctx context.Context, codeID string) (customs.BCCode, error) {
	return get(ctx, s, "GetBCCode", "bc_code", codeID, storage.Stores.GetBCCode)
}

// ListBCCodes lists BC codes ordered by code.
func (s *Service) ListBCCodes(ctx context.Context, q storage.ListQuery) ([]customs.BCCode, error) {
	return list(ctx, s, "ListBCCodes", "bc_code", q, storage.Stores.ListBCCodes)
}

// CreateItemCode adds an item code; codes are unique.
func (s *Service) CreateItemCode(ctx context.Context, input warehouse.ItemCodeInput) (warehouse.ItemCode, error) {
	code, err := warehouse.CreateItemCode(input, s.now, s.newID)
	if err != nil {
		return warehouse.ItemCode{}, err
	}
	err = s.update(ctx, "CreateItemCode", func(st storage.Stores) error {
		if err := st.PutItemCode(ctx, code); err != nil {
			return storageErr("item_code", err)
		}
		return s.record(ctx, st, activity.ActionAdd, activity.ModuleWarehouse, "item_code", code.ID, code.ItemCode, code.ItemType)
	})
	if err != nil {
		return warehouse.ItemCode{}, err
	}
	s.logChange(ctx, "item code created", zap.String("item_code_id", code.ID), zap.String("code", code.ItemCode))
	return code, nil
}

// UpdateItemCode edits an item code.
func (s *Service) UpdateItemCode(ctx context.Context, codeID string, input warehouse.ItemCodeInput) (warehouse.ItemCode, error) {
	var updated warehouse.ItemCode
	err := s.update(ctx, "UpdateItemCode", func(st storage.Stores) error {
		existing, err := st.GetItemCode(ctx, codeID)
		if err != nil {
			return storageErr("item_code", err)
		}
		if updated, err = warehouse.UpdateItemCode(existing, input, s.now); err != nil {
			return err
		}
		if err := st.PutItemCode(ctx, updated); err != nil {
			return storageErr("item_code", err)
		}
		return s.record(ctx, st, activity.ActionEdit, activity.ModuleWarehouse, "item_code", updated.ID, updated.ItemCode, updated.ItemType)
	})
	if err != nil {
		return warehouse.ItemCode{}, err
	}
	s.logChange(ctx, "item code updated", zap.String("item_code_id", updated.ID))
	return updated, nil
}

// DeleteItemCode removes an item code.
func (s *Service) DeleteItemCode(ctx context.Context, codeID string) error {
	err := s.update(ctx, "DeleteItemCode", func(st storage.Stores) error {
		existing, err := st.GetItemCode(ctx, codeID)
		if err != nil {
			return storageErr("item_code", err)
		}
		return s.deleteItemCode(ctx, st, existing)
	})
	if err != nil {
		return err
	}
	s.logChange(ctx, "item code deleted", zap.String("item_code_id", codeID))
	return nil
}

func (s *Service) deleteItemCode(ctx context.Context, st storage.Stores, code warehouse.ItemCode) error {
	if err := st.DeleteItemCode(ctx, code.ID); err != nil {
		return storageErr("item_code", err)
	}
	return s.record(ctx, st, activity.ActionDelete, activity.ModuleWarehouse, "item_code", code.ID, code.ItemCode, code.ItemType)
}

// GetItemCode returns one item code.
func (s *Service) GetItemCode(ctx context.Context, codeID string) (warehouse.ItemCode, error) {
	return get(ctx, s, "GetItemCode", "item_code", codeID, storage.Stores.GetItemCode)
}

// ListItemCodes lists item codes ordered by code.
func (s *Service) ListItemCodes(ctx context.Context, q storage.ListQuery) ([]warehouse.ItemCode, error) {
	return list(ctx, s, "ListItemCodes", "item_code", q, storage.Stores.ListItemCodes)
}
