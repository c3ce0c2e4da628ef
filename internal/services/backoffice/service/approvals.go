package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tppb-bridge/backoffice/internal/services/backoffice/activity"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/approval"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/customs"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/finance"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/registry"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/storage"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/warehouse"
)

// RequestApproval files an edit or delete request against an existing
// entity. A blank requester means the current operator and a blank entity
// name is filled from the record.
func (s *Service) RequestApproval(ctx context.Context, input approval.Input) (approval.Request, error) {
	if strings.TrimSpace(input.RequestedBy) == "" {
		input.RequestedBy = s.operator(ctx)
	}
	var req approval.Request
	err := s.update(ctx, "RequestApproval", func(st storage.Stores) error {
		entityType, err := approval.ParseEntityType(string(input.EntityType))
		if err != nil {
			return err
		}
		name, err := s.entityName(ctx, st, entityType, strings.TrimSpace(input.EntityID))
		if err != nil {
			return err
		}
		if strings.TrimSpace(input.EntityName) == "" {
			input.EntityName = name
		}
		if req, err = approval.Create(input, s.now, s.newID); err != nil {
			return err
		}
		if err := st.PutApproval(ctx, req); err != nil {
			return storageErr("approval", err)
		}
		return s.record(ctx, st, activity.ActionAdd, activity.ModuleApproval, string(req.EntityType), req.EntityID, req.EntityName, string(req.Type)+" requested")
	})
	if err != nil {
		return approval.Request{}, err
	}
	s.logChange(ctx, "approval requested", zap.String("approval_id", req.ID), zap.String("entity_type", string(req.EntityType)))
	return req, nil
}

// ApproveRequest approves a pending request and applies its change in the
// same transaction.
func (s *Service) ApproveRequest(ctx context.Context, requestID string) (approval.Request, error) {
	var req approval.Request
	err := s.update(ctx, "ApproveRequest", func(st storage.Stores) error {
		existing, err := st.GetApproval(ctx, requestID)
		if err != nil {
			return storageErr("approval", err)
		}
		if req, err = approval.Approve(existing, s.operator(ctx), s.now); err != nil {
			return err
		}
		if err := s.applyApproval(ctx, st, req); err != nil {
			return err
		}
		if err := st.PutApproval(ctx, req); err != nil {
			return storageErr("approval", err)
		}
		return s.record(ctx, st, activity.ActionApprove, activity.ModuleApproval, string(req.EntityType), req.EntityID, req.EntityName, string(req.Type))
	})
	if err != nil {
		return approval.Request{}, err
	}
	s.logChange(ctx, "approval approved", zap.String("approval_id", req.ID), zap.String("type", string(req.Type)))
	return req, nil
}

// RejectRequest rejects a pending request; nothing is applied.
func (s *Service) RejectRequest(ctx context.Context, requestID, reason string) (approval.Request, error) {
	var req approval.Request
	err := s.update(ctx, "RejectRequest", func(st storage.Stores) error {
		existing, err := st.GetApproval(ctx, requestID)
		if err != nil {
			return storageErr("approval", err)
		}
		if req, err = approval.Reject(existing, s.operator(ctx), reason, s.now); err != nil {
			return err
		}
		if err := st.PutApproval(ctx, req); err != nil {
			return storageErr("approval", err)
		}
		return s.record(ctx, st, activity.ActionReject, activity.ModuleApproval, string(req.EntityType), req.EntityID, req.EntityName, req.RejectReason)
	})
	if err != nil {
		return approval.Request{}, err
	}
	s.logChange(ctx, "approval rejected", zap.String("approval_id", req.ID))
	return req, nil
}

// GetApproval returns one request.
func (s *Service) GetApproval(ctx context.Context, requestID string) (approval.Request, error) {
	return get(ctx, s, "GetApproval", "approval", requestID, storage.Stores.GetApproval)
}

// ListApprovals lists requests, newest first.
func (s *Service) ListApprovals(ctx context.Context, q storage.ListQuery) ([]approval.Request, error) {
	return list(ctx, s, "ListApprovals", "approval", q, storage.Stores.ListApprovals)
}

// ApprovalStats counts every request by status.
func (s *Service) ApprovalStats(ctx context.Context) (approval.Stats, error) {
	reqs, err := s.ListApprovals(ctx, storage.ListQuery{})
	if err != nil {
		return approval.Stats{}, err
	}
	return approval.ComputeStats(reqs), nil
}

func (s *Service) entityName(ctx context.Context, st storage.Stores, entityType approval.EntityType, entityID string) (string, error) {
	switch entityType {
	case approval.EntityCustomer:
		c, err := st.GetCustomer(ctx, entityID)
		return c.Name, storageErr("customer", err)
	case approval.EntityVendor:
		v, err := st.GetVendor(ctx, entityID)
		return v.Name, storageErr("vendor", err)
	case approval.EntityBCCode:
		c, err := st.GetBCCode(ctx, entityID)
		return c.Code, storageErr("bc_code", err)
	case approval.EntityItemCode:
		c, err := st.GetItemCode(ctx, entityID)
		return c.ItemCode, storageErr("item_code", err)
	case approval.EntityFinance:
		e, err := st.GetFinanceEntry(ctx, entityID)
		return e.Description, storageErr("finance_entry", err)
	}
	return "", fmt.Errorf("unsupported entity type %q", entityType)
}

// patch overlays an edit payload onto the input form of existing and runs
// the entity's update.
func patch[T, I any](req approval.Request, existing T, inputFrom func(T) I, update func(T, I, func() time.Time) (T, error), now func() time.Time) (T, error) {
	input := inputFrom(existing)
	if err := approval.ApplyPayload(req, &input); err != nil {
		var zero T
		return zero, err
	}
	return update(existing, input, now)
}

func (s *Service) applyApproval(ctx context.Context, st storage.Stores, req approval.Request) error {
	del := req.Type == approval.TypeDelete
	switch req.EntityType {
	case approval.EntityCustomer:
		c, err := st.GetCustomer(ctx, req.EntityID)
		if err != nil {
			return storageErr("customer", err)
		}
		if del {
			return s.deleteCustomer(ctx, st, c)
		}
		if c, err = patch(req, c, registry.CustomerInputFrom, registry.UpdateCustomer, s.now); err != nil {
			return err
		}
		if err := st.PutCustomer(ctx, c); err != nil {
			return storageErr("customer", err)
		}
		return s.record(ctx, st, activity.ActionEdit, activity.ModuleRegistry, "customer", c.ID, c.Name, "approved edit")
	case approval.EntityVendor:
		v, err := st.GetVendor(ctx, req.EntityID)
		if err != nil {
			return storageErr("vendor", err)
		}
		if del {
			return s.deleteVendor(ctx, st, v)
		}
		if v, err = patch(req, v, registry.VendorInputFrom, registry.UpdateVendor, s.now); err != nil {
			return err
		}
		if err := st.PutVendor(ctx, v); err != nil {
			return storageErr("vendor", err)
		}
		return s.record(ctx, st, activity.ActionEdit, activity.ModuleRegistry, "vendor", v.ID, v.Name, "approved edit")
	case approval.EntityBCCode:
		c, err := st.GetBCCode(ctx, req.EntityID)
		if err != nil {
			return storageErr("bc_code", err)
		}
		if del {
			return s.deleteBCCode(ctx, st, c)
		}
		if c, err = patch(req, c, customs.BCCodeInputFrom, customs.UpdateBCCode, s.now); err != nil {
			return err
		}
		if err := st.PutBCCode(ctx, c); err != nil {
			return storageErr("bc_code", err)
		}
		return s.record(ctx, st, activity.ActionEdit, activity.ModuleCustoms, "bc_code", c.ID, c.Code, "approved edit")
	case approval.EntityItemCode:
		c, err := st.GetItemCode(ctx, req.EntityID)
		if err != nil {
			return storageErr("item_code", err)
		}
		if del {
			return s.deleteItemCode(ctx, st, c)
		}
		if c, err = patch(req, c, warehouse.ItemCodeInputFrom, warehouse.UpdateItemCode, s.now); err != nil {
			return err
		}
		if err := st.PutItemCode(ctx, c); err != nil {
			return storageErr("item_code", err)
		}
		return s.record(ctx, st, activity.ActionEdit, activity.ModuleWarehouse, "item_code", c.ID, c.ItemCode, "approved edit")
	case approval.EntityFinance:
		e, err := st.GetFinanceEntry(ctx, req.EntityID)
		if err != nil {
			return storageErr("finance_entry", err)
		}
		if del {
			return s.deleteFinanceEntry(ctx, st, e)
		}
		if e, err = patch(req, e, finance.InputFrom, finance.Update, s.now); err != nil {
			return err
		}
		if err := st.PutFinanceEntry(ctx, e); err != nil {
			return storageErr("finance_entry", err)
		}
		return s.record(ctx, st, activity.ActionEdit, activity.ModuleFinance, "finance", e.ID, e.Description, "approved edit")
	}
	return fmt.Errorf("unsupported entity type %q", req.EntityType)
}
