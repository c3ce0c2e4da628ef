package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/tppb-bridge/backoffice/internal/services/backoffice/activity"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/storage"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/warehouse"
)

// CreateRegistration registers goods in the warehouse.
func (s *Service) CreateRegistration(ctx context.Context, input warehouse.RegistrationInput) (warehouse.Registration, error) {
	reg, err := warehouse.CreateRegistration(input, s.now, s.newID)
	if err != nil {
		return warehouse.Registration{}, err
	}
	err = s.update(ctx, "CreateRegistration", func(st storage.Stores) error {
		if err := st.PutRegistration(ctx, reg); err != nil {
			return storageErr("registration", err)
		}
		return s.record(ctx, st, activity.ActionAdd, activity.ModuleWarehouse, "registration", reg.ID, reg.Number, reg.Title)
	})
	if err != nil {
		return warehouse.Registration{}, err
	}
	s.logChange(ctx, "registration created", zap.String("registration_id", reg.ID), zap.Int64("total_stock", reg.TotalStock()))
	return reg, nil
}

// UpdateRegistration relocates every item of a registration.
func (s *Service) UpdateRegistration(ctx context.Context, registrationID string, input warehouse.UpdateInput) (warehouse.Registration, error) {
	var reg warehouse.Registration
	err := s.update(ctx, "UpdateRegistration", func(st storage.Stores) error {
		existing, err := st.GetRegistration(ctx, registrationID)
		if err != nil {
			return storageErr("registration", err)
		}
		reg = warehouse.UpdateRegistration(existing, input, s.now)
		if err := st.PutRegistration(ctx, reg); err != nil {
			return storageErr("registration", err)
		}
		loc := input.Location
		details := fmt.Sprintf("location %s/%s/%s", loc.Room, loc.Rack, loc.Slot)
		return s.record(ctx, st, activity.ActionEdit, activity.ModuleWarehouse, "registration", reg.ID, reg.Number, details)
	})
	if err != nil {
		return warehouse.Registration{}, err
	}
	s.logChange(ctx, "registration updated", zap.String("registration_id", reg.ID))
	return reg, nil
}

// DeleteRegistration removes a registration. Its mutation history stays.
func (s *Service) DeleteRegistration(ctx context.Context, registrationID string) error {
	err := s.update(ctx, "DeleteRegistration", func(st storage.Stores) error {
		existing, err := st.GetRegistration(ctx, registrationID)
		if err != nil {
			return storageErr("registration", err)
		}
		if err := st.DeleteRegistration(ctx, existing.ID); err != nil {
			return storageErr("registration", err)
		}
		return s.record(ctx, st, activity.ActionDelete, activity.ModuleWarehouse, "registration", existing.ID, existing.Number, "")
	})
	if err != nil {
		return err
	}
	s.logChange(ctx, "registration deleted", zap.String("registration_id", registrationID))
	return nil
}

// GetRegistration returns one registration.
func (s *Service) GetRegistration(ctx context.Context, registrationID string) (warehouse.Registration, error) {
	return get(ctx, s, "GetRegistration", "registration", registrationID, storage.Stores.GetRegistration)
}

// ListRegistrations lists registrations. Search also matches item names.
func (s *Service) ListRegistrations(ctx context.Context, q storage.ListQuery) ([]warehouse.Registration, error) {
	return list(ctx, s, "ListRegistrations", "registration", q, storage.Stores.ListRegistrations)
}

// SubmitMutations applies a batch of stock movements all-or-nothing and
// returns the mutation log entries written.
func (s *Service) SubmitMutations(ctx context.Context, reqs []warehouse.MovementRequest) ([]warehouse.MutationLog, error) {
	if len(reqs) == 0 {
		return nil, warehouse.ErrEmptyBatch
	}
	var logs []warehouse.MutationLog
	err := s.update(ctx, "SubmitMutations", func(st storage.Stores) error {
		regs := make(map[string]warehouse.Registration)
		for _, req := range reqs {
			if _, ok := regs[req.RegistrationID]; ok {
				continue
			}
			reg, err := st.GetRegistration(ctx, req.RegistrationID)
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			if err != nil {
				return storageErr("registration", err)
			}
			regs[reg.ID] = reg
		}
		changed, applied, err := warehouse.ApplyMutations(regs, reqs, s.now, s.newID)
		if err != nil {
			return err
		}
		for _, regID := range slices.Sorted(maps.Keys(changed)) {
			if err := st.PutRegistration(ctx, changed[regID]); err != nil {
				return storageErr("registration", err)
			}
		}
		for _, l := range applied {
			if err := st.AppendMutationLog(ctx, l); err != nil {
				return storageErr("mutation_log", err)
			}
			details := fmt.Sprintf("%s %d %s -> %s", l.Type, l.MutatedQty, l.Origin, l.Destination)
			if err := s.record(ctx, st, activity.ActionMutate, activity.ModuleWarehouse, "mutation", l.ID, l.ItemName, details); err != nil {
				return err
			}
		}
		logs = applied
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logChange(ctx, "mutations submitted", zap.Int("count", len(logs)))
	return logs, nil
}

// ListMutationLogs lists mutation log entries, newest first.
func (s *Service) ListMutationLogs(ctx context.Context, q storage.ListQuery) ([]warehouse.MutationLog, error) {
	return list(ctx, s, "ListMutationLogs", "mutation_log", q, storage.Stores.ListMutationLogs)
}

// WarehouseStats counts all mutations and today's.
func (s *Service) WarehouseStats(ctx context.Context) (warehouse.Stats, error) {
	logs, err := s.ListMutationLogs(ctx, storage.ListQuery{})
	if err != nil {
		return warehouse.Stats{}, err
	}
	return warehouse.ComputeStats(logs, s.now()), nil
}
