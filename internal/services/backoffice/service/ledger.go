package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tppb-bridge/backoffice/internal/services/backoffice/activity"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/finance"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/logistics"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/storage"
)

// CreateFinanceEntry books income or expense.
func (s *Service) CreateFinanceEntry(ctx context.Context, input finance.Input) (finance.Entry, error) {
	entry, err := finance.Create(input, s.now, s.newID)
	if err != nil {
		return finance.Entry{}, err
	}
	err = s.update(ctx, "CreateFinanceEntry", func(st storage.Stores) error {
		if err := st.PutFinanceEntry(ctx, entry); err != nil {
			return storageErr("finance_entry", err)
		}
		return s.record(ctx, st, activity.ActionAdd, activity.ModuleFinance, "finance", entry.ID, entry.Description, string(entry.Type))
	})
	if err != nil {
		return finance.Entry{}, err
	}
	s.logChange(ctx, "finance entry created", zap.String("finance_entry_id", entry.ID))
	return entry, nil
}

// UpdateFinanceEntry edits a ledger entry.
func (s *Service) UpdateFinanceEntry(ctx context.Context, entryID string, input finance.Input) (finance.Entry, error) {
	var entry finance.Entry
	err := s.update(ctx, "UpdateFinanceEntry", func(st storage.Stores) error {
		existing, err := st.GetFinanceEntry(ctx, entryID)
		if err != nil {
			return storageErr("finance_entry", err)
		}
		if entry, err = finance.Update(existing, input, s.now); err != nil {
			return err
		}
		if err := st.PutFinanceEntry(ctx, entry); err != nil {
			return storageErr("finance_entry", err)
		}
		return s.record(ctx, st, activity.ActionEdit, activity.ModuleFinance, "finance", entry.ID, entry.Description, "")
	})
	if err != nil {
		return finance.Entry{}, err
	}
	s.logChange(ctx, "finance entry updated", zap.String("finance_entry_id", entry.ID))
	return entry, nil
}

// DeleteFinanceEntry removes a ledger entry.
func (s *Service) DeleteFinanceEntry(ctx context.Context, entryID string) error {
	err := s.update(ctx, "DeleteFinanceEntry", func(st storage.Stores) error {
		existing, err := st.GetFinanceEntry(ctx, entryID)
		if err != nil {
			return storageErr("finance_entry", err)
		}
		return s.deleteFinanceEntry(ctx, st, existing)
	})
	if err != nil {
		return err
	}
	s.logChange(ctx, "finance entry deleted", zap.String("finance_entry_id", entryID))
	return nil
}

func (s *Service) deleteFinanceEntry(ctx context.Context, st storage.Stores, entry finance.Entry) error {
	if err := st.DeleteFinanceEntry(ctx, entry.ID); err != nil {
		return storageErr("finance_entry", err)
	}
	return s.record(ctx, st, activity.ActionDelete, activity.ModuleFinance, "finance", entry.ID, entry.Description, "")
}

// GetFinanceEntry returns one ledger entry.
func (s *Service) GetFinanceEntry(ctx context.Context, entryID string) (finance.Entry, error) {
	return get(ctx, s, "GetFinanceEntry", "finance_entry", entryID, storage.Stores.GetFinanceEntry)
}

// ListFinanceEntries lists ledger entries by date, newest first.
func (s *Service) ListFinanceEntries(ctx context.Context, q storage.ListQuery) ([]finance.Entry, error) {
	return list(ctx, s, "ListFinanceEntries", "finance_entry", q, storage.Stores.ListFinanceEntries)
}

// FinanceSummary totals the entries matching q.
func (s *Service) FinanceSummary(ctx context.Context, q storage.ListQuery) (finance.Summary, error) {
	entries, err := s.ListFinanceEntries(ctx, q)
	if err != nil {
		return finance.Summary{}, err
	}
	return finance.Summarize(entries), nil
}

// names resolves registry display names; blank ids resolve to "".
func (s *Service) names(ctx context.Context, st storage.Stores, customerID, vendorID string) (logistics.Names, error) {
	var names logistics.Names
	if customerID = strings.TrimSpace(customerID); customerID != "" {
		c, err := st.GetCustomer(ctx, customerID)
		if err != nil {
			return logistics.Names{}, storageErr("customer", err)
		}
		names.Customer = c.Name
	}
	if vendorID = strings.TrimSpace(vendorID); vendorID != "" {
		v, err := st.GetVendor(ctx, vendorID)
		if err != nil {
			return logistics.Names{}, storageErr("vendor", err)
		}
		names.Vendor = v.Name
	}
	return names, nil
}

// CreateShipment books a shipment for registry parties.
func (s *Service) CreateShipment(ctx context.Context, input logistics.ShipmentInput) (logistics.Shipment, error) {
	var sh logistics.Shipment
	err := s.update(ctx, "CreateShipment", func(st storage.Stores) error {
		names, err := s.names(ctx, st, input.CustomerID, input.VendorID)
		if err != nil {
			return err
		}
		if sh, err = logistics.CreateShipment(input, names, s.now, s.newID); err != nil {
			return err
		}
		if err := st.PutShipment(ctx, sh); err != nil {
			return storageErr("shipment", err)
		}
		return s.record(ctx, st, activity.ActionAdd, activity.ModuleLogistics, "shipment", sh.ID, sh.Origin+" -> "+sh.Destination, sh.CustomerName)
	})
	if err != nil {
		return logistics.Shipment{}, err
	}
	s.logChange(ctx, "shipment created", zap.String("shipment_id", sh.ID))
	return sh, nil
}

// UpdateShipment edits a shipment and refreshes its party names.
func (s *Service) UpdateShipment(ctx context.Context, shipmentID string, input logistics.ShipmentInput) (logistics.Shipment, error) {
	var sh logistics.Shipment
	err := s.update(ctx, "UpdateShipment", func(st storage.Stores) error {
		existing, err := st.GetShipment(ctx, shipmentID)
		if err != nil {
			return storageErr("shipment", err)
		}
		names, err := s.names(ctx, st, input.CustomerID, input.VendorID)
		if err != nil {
			return err
		}
		if sh, err = logistics.UpdateShipment(existing, input, names, s.now); err != nil {
			return err
		}
		if err := st.PutShipment(ctx, sh); err != nil {
			return storageErr("shipment", err)
		}
		return s.record(ctx, st, activity.ActionEdit, activity.ModuleLogistics, "shipment", sh.ID, sh.Origin+" -> "+sh.Destination, string(sh.Status))
	})
	if err != nil {
		return logistics.Shipment{}, err
	}
	s.logChange(ctx, "shipment updated", zap.String("shipment_id", sh.ID))
	return sh, nil
}

// DeleteShipment removes a shipment.
func (s *Service) DeleteShipment(ctx context.Context, shipmentID string) error {
	err := s.update(ctx, "DeleteShipment", func(st storage.Stores) error {
		existing, err := st.GetShipment(ctx, shipmentID)
		if err != nil {
			return storageErr("shipment", err)
		}
		if err := st.DeleteShipment(ctx, existing.ID); err != nil {
			return storageErr("shipment", err)
		}
		return s.record(ctx, st, activity.ActionDelete, activity.ModuleLogistics, "shipment", existing.ID, existing.Origin+" -> "+existing.Destination, "")
	})
	if err != nil {
		return err
	}
	s.logChange(ctx, "shipment deleted", zap.String("shipment_id", shipmentID))
	return nil
}

// GetShipment returns one shipment.
func (s *Service) GetShipment(ctx context.Context, shipmentID string) (logistics.Shipment, error) {
	return get(ctx, s, "GetShipment", "shipment", shipmentID, storage.Stores.GetShipment)
}

// ListShipments lists shipments, newest first.
func (s *Service) ListShipments(ctx context.Context, q storage.ListQuery) ([]logistics.Shipment, error) {
	return list(ctx, s, "ListShipments", "shipment", q, storage.Stores.ListShipments)
}

// CreateEvent books an event for a registry customer.
func (s *Service) CreateEvent(ctx context.Context, input logistics.EventInput) (logistics.Event, error) {
	var ev logistics.Event
	err := s.update(ctx, "CreateEvent", func(st storage.Stores) error {
		names, err := s.names(ctx, st, input.CustomerID, "")
		if err != nil {
			return err
		}
		if ev, err = logistics.CreateEvent(input, names.Customer, s.now, s.newID); err != nil {
			return err
		}
		if err := st.PutEvent(ctx, ev); err != nil {
			return storageErr("event", err)
		}
		return s.record(ctx, st, activity.ActionAdd, activity.ModuleLogistics, "event", ev.ID, ev.Name, ev.Date)
	})
	if err != nil {
		return logistics.Event{}, err
	}
	s.logChange(ctx, "event created", zap.String("event_id", ev.ID))
	return ev, nil
}

// UpdateEvent edits an event.
func (s *Service) UpdateEvent(ctx context.Context, eventID string, input logistics.EventInput) (logistics.Event, error) {
	var ev logistics.Event
	err := s.update(ctx, "UpdateEvent", func(st storage.Stores) error {
		existing, err := st.GetEvent(ctx, eventID)
		if err != nil {
			return storageErr("event", err)
		}
		names, err := s.names(ctx, st, input.CustomerID, "")
		if err != nil {
			return err
		}
		if ev, err = logistics.UpdateEvent(existing, input, names.Customer, s.now); err != nil {
			return err
		}
		if err := st.PutEvent(ctx, ev); err != nil {
			return storageErr("event", err)
		}
		return s.record(ctx, st, activity.ActionEdit, activity.ModuleLogistics, "event", ev.ID, ev.Name, string(ev.Status))
	})
	if err != nil {
		return logistics.Event{}, err
	}
	s.logChange(ctx, "event updated", zap.String("event_id", ev.ID))
	return ev, nil
}

// DeleteEvent removes an event.
func (s *Service) DeleteEvent(ctx context.Context, eventID string) error {
	err := s.update(ctx, "DeleteEvent", func(st storage.Stores) error {
		existing, err := st.GetEvent(ctx, eventID)
		if err != nil {
			return storageErr("event", err)
		}
		if err := st.DeleteEvent(ctx, existing.ID); err != nil {
			return storageErr("event", err)
		}
		return s.record(ctx, st, activity.ActionDelete, activity.ModuleLogistics, "event", existing.ID, existing.Name, "")
	})
	if err != nil {
		return err
	}
	s.logChange(ctx, "event deleted", zap.String("event_id", eventID))
	return nil
}

// GetEvent returns one event.
func (s *Service) GetEvent(ctx context.Context, eventID string) (logistics.Event, error) {
	return get(ctx, s, "GetEvent", "event", eventID, storage.Stores.GetEvent)
}

// ListEvents lists events by date, newest first.
func (s *Service) ListEvents(ctx context.Context, q storage.ListQuery) ([]logistics.Event, error) {
	return list(ctx, s, "ListEvents", "event", q, storage.Stores.ListEvents)
}
