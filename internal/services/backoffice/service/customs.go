package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/activity"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/customs"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/inspection"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/quotation"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/storage"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/warehouse"
)

// prepareQuotation applies the configured tax rate and resolves the
// customer name from the registry.
func (s *Service) prepareQuotation(ctx context.Context, st storage.Stores, input quotation.Input) (quotation.Input, error) {
	if input.TaxRate == nil && s.taxRate != nil {
		rate := *s.taxRate
		input.TaxRate = &rate
	}
	customerID := strings.TrimSpace(input.CustomerID)
	if customerID != "" && strings.TrimSpace(input.CustomerName) == "" {
		c, err := st.GetCustomer(ctx, customerID)
		if err != nil {
			return quotation.Input{}, storageErr("customer", err)
		}
		input.CustomerName = c.Name
	}
	return input, nil
}

// CreateQuotation saves a draft quotation.
func (s *Service) CreateQuotation(ctx context.Context, input quotation.Input) (quotation.Quotation, error) {
	var q quotation.Quotation
	err := s.update(ctx, "CreateQuotation", func(st storage.Stores) error {
		prepared, err := s.prepareQuotation(ctx, st, input)
		if err != nil {
			return err
		}
		if q, err = quotation.Create(prepared, s.now, s.newID); err != nil {
			return err
		}
		if err := st.PutQuotation(ctx, q); err != nil {
			return storageErr("quotation", err)
		}
		return s.record(ctx, st, activity.ActionAdd, activity.ModuleQuotation, "quotation", q.ID, q.Number, q.CustomerName)
	})
	if err != nil {
		return quotation.Quotation{}, err
	}
	s.logChange(ctx, "quotation created", zap.String("quotation_id", q.ID), zap.String("number", q.Number))
	return q, nil
}

// UpdateQuotation edits a draft quotation.
func (s *Service) UpdateQuotation(ctx context.Context, quotationID string, input quotation.Input) (quotation.Quotation, error) {
	var q quotation.Quotation
	err := s.update(ctx, "UpdateQuotation", func(st storage.Stores) error {
		existing, err := st.GetQuotation(ctx, quotationID)
		if err != nil {
			return storageErr("quotation", err)
		}
		prepared, err := s.prepareQuotation(ctx, st, input)
		if err != nil {
			return err
		}
		if q, err = quotation.Update(existing, prepared, s.now); err != nil {
			return err
		}
		if err := st.PutQuotation(ctx, q); err != nil {
			return storageErr("quotation", err)
		}
		return s.record(ctx, st, activity.ActionEdit, activity.ModuleQuotation, "quotation", q.ID, q.Number, "")
	})
	if err != nil {
		return quotation.Quotation{}, err
	}
	s.logChange(ctx, "quotation updated", zap.String("quotation_id", q.ID))
	return q, nil
}

// DeleteQuotation removes a quotation that has not raised a BC document.
func (s *Service) DeleteQuotation(ctx context.Context, quotationID string) error {
	err := s.update(ctx, "DeleteQuotation", func(st storage.Stores) error {
		existing, err := st.GetQuotation(ctx, quotationID)
		if err != nil {
			return storageErr("quotation", err)
		}
		if existing.Status == quotation.StatusConfirmed {
			return apperrors.WithMetadata(apperrors.CodeQuotationNotDraft,
				fmt.Sprintf("quotation %s is confirmed", existing.Number),
				map[string]string{"Number": existing.Number})
		}
		if err := st.DeleteQuotation(ctx, existing.ID); err != nil {
			return storageErr("quotation", err)
		}
		return s.record(ctx, st, activity.ActionDelete, activity.ModuleQuotation, "quotation", existing.ID, existing.Number, "")
	})
	if err != nil {
		return err
	}
	s.logChange(ctx, "quotation deleted", zap.String("quotation_id", quotationID))
	return nil
}

// ConfirmQuotation confirms a draft and files its pending BC document.
func (s *Service) ConfirmQuotation(ctx context.Context, quotationID string) (quotation.Quotation, customs.Document, error) {
	var (
		q   quotation.Quotation
		doc customs.Document
	)
	err := s.update(ctx, "ConfirmQuotation", func(st storage.Stores) error {
		existing, err := st.GetQuotation(ctx, quotationID)
		if err != nil {
			return storageErr("quotation", err)
		}
		if q, doc, err = quotation.Confirm(existing, s.now, s.newID); err != nil {
			return err
		}
		if err := st.PutQuotation(ctx, q); err != nil {
			return storageErr("quotation", err)
		}
		if err := st.PutBCDocument(ctx, doc); err != nil {
			return storageErr("bc_document", err)
		}
		if err := s.record(ctx, st, activity.ActionApprove, activity.ModuleQuotation, "quotation", q.ID, q.Number, "confirmed"); err != nil {
			return err
		}
		return s.record(ctx, st, activity.ActionAdd, activity.ModuleCustoms, "bc_document", doc.ID, doc.BCNumber, "from "+q.Number)
	})
	if err != nil {
		return quotation.Quotation{}, customs.Document{}, err
	}
	s.logChange(ctx, "quotation confirmed",
		zap.String("quotation_id", q.ID), zap.String("bc_document_id", doc.ID), zap.String("bc_number", doc.BCNumber))
	return q, doc, nil
}

// RejectQuotation declines a draft.
func (s *Service) RejectQuotation(ctx context.Context, quotationID string) (quotation.Quotation, error) {
	var q quotation.Quotation
	err := s.update(ctx, "RejectQuotation", func(st storage.Stores) error {
		existing, err := st.GetQuotation(ctx, quotationID)
		if err != nil {
			return storageErr("quotation", err)
		}
		if q, err = quotation.Reject(existing, s.now); err != nil {
			return err
		}
		if err := st.PutQuotation(ctx, q); err != nil {
			return storageErr("quotation", err)
		}
		return s.record(ctx, st, activity.ActionReject, activity.ModuleQuotation, "quotation", q.ID, q.Number, "")
	})
	if err != nil {
		return quotation.Quotation{}, err
	}
	s.logChange(ctx, "quotation rejected", zap.String("quotation_id", q.ID))
	return q, nil
}

// GetQuotation returns one quotation.
func (s *Service) GetQuotation(ctx context.Context, quotationID string) (quotation.Quotation, error) {
	return get(ctx, s, "GetQuotation", "quotation", quotationID, storage.Stores.GetQuotation)
}

// ListQuotations lists quotations, newest first.
func (s *Service) ListQuotations(ctx context.Context, q storage.ListQuery) ([]quotation.Quotation, error) {
	return list(ctx, s, "ListQuotations", "quotation", q, storage.Stores.ListQuotations)
}

// ApproveBCDocument approves a pending document and raises the goods
// movement awaiting inspection. A blank approver means the current operator.
func (s *Service) ApproveBCDocument(ctx context.Context, docID, approver string) (customs.Document, inspection.Movement, error) {
	if strings.TrimSpace(approver) == "" {
		approver = s.operator(ctx)
	}
	var (
		doc customs.Document
		mv  inspection.Movement
	)
	err := s.update(ctx, "ApproveBCDocument", func(st storage.Stores) error {
		existing, err := st.GetBCDocument(ctx, docID)
		if err != nil {
			return storageErr("bc_document", err)
		}
		if doc, err = customs.Approve(existing, approver, s.now); err != nil {
			return err
		}
		if mv, err = inspection.NewMovement(doc, s.now, s.newID); err != nil {
			return err
		}
		if err := st.PutBCDocument(ctx, doc); err != nil {
			return storageErr("bc_document", err)
		}
		if err := st.PutGoodsMovement(ctx, mv); err != nil {
			return storageErr("goods_movement", err)
		}
		if err := s.record(ctx, st, activity.ActionApprove, activity.ModuleCustoms, "bc_document", doc.ID, doc.BCNumber, "approved by "+doc.ApprovedBy); err != nil {
			return err
		}
		return s.record(ctx, st, activity.ActionAdd, activity.ModuleInspection, "goods_movement", mv.ID, mv.Number, "from "+doc.BCNumber)
	})
	if err != nil {
		return customs.Document{}, inspection.Movement{}, err
	}
	s.logChange(ctx, "bc document approved", zap.String("bc_document_id", doc.ID), zap.String("goods_movement_id", mv.ID))
	return doc, mv, nil
}

// RejectBCDocument rejects a pending document.
func (s *Service) RejectBCDocument(ctx context.Context, docID, reason string) (customs.Document, error) {
	var doc customs.Document
	err := s.update(ctx, "RejectBCDocument", func(st storage.Stores) error {
		existing, err := st.GetBCDocument(ctx, docID)
		if err != nil {
			return storageErr("bc_document", err)
		}
		if doc, err = customs.Reject(existing, reason, s.now); err != nil {
			return err
		}
		if err := st.PutBCDocument(ctx, doc); err != nil {
			return storageErr("bc_document", err)
		}
		return s.record(ctx, st, activity.ActionReject, activity.ModuleCustoms, "bc_document", doc.ID, doc.BCNumber, doc.RejectionReason)
	})
	if err != nil {
		return customs.Document{}, err
	}
	s.logChange(ctx, "bc document rejected", zap.String("bc_document_id", doc.ID))
	return doc, nil
}

// GetBCDocument returns one BC document.
func (s *Service) GetBCDocument(ctx context.Context, docID string) (customs.Document, error) {
	return get(ctx, s, "GetBCDocument", "bc_document", docID, storage.Stores.GetBCDocument)
}

// ListBCDocuments lists BC documents, newest first.
func (s *Service) ListBCDocuments(ctx context.Context, q storage.ListQuery) ([]customs.Document, error) {
	return list(ctx, s, "ListBCDocuments", "bc_document", q, storage.Stores.ListBCDocuments)
}

// InspectionResult is what an inspection wrote. Registration is set only
// for inbound movements.
type InspectionResult struct {
	Movement     inspection.Movement     `json:"movement"`
	Inspection   inspection.Inspection   `json:"inspection"`
	Registration *warehouse.Registration `json:"registration,omitempty"`
}

// InspectMovement records an inspection and stores the goods. Inbound goods
// are registered in the warehouse with their actual quantities.
func (s *Service) InspectMovement(ctx context.Context, movementID string, input inspection.Input) (InspectionResult, error) {
	var result InspectionResult
	err := s.update(ctx, "InspectMovement", func(st storage.Stores) error {
		existing, err := st.GetGoodsMovement(ctx, movementID)
		if err != nil {
			return storageErr("goods_movement", err)
		}
		mv, ins, err := inspection.Inspect(existing, input, s.now, s.newID)
		if err != nil {
			return err
		}
		if err := st.PutGoodsMovement(ctx, mv); err != nil {
			return storageErr("goods_movement", err)
		}
		if err := st.PutInspection(ctx, ins); err != nil {
			return storageErr("inspection", err)
		}
		result = InspectionResult{Movement: mv, Inspection: ins}
		if err := s.record(ctx, st, activity.ActionAdd, activity.ModuleInspection, "inspection", ins.ID, ins.Number, string(ins.OverallStatus)); err != nil {
			return err
		}
		if mv.Direction != customs.DirectionInbound {
			return nil
		}
		reg, err := warehouse.CreateRegistration(inspection.RegistrationInput(mv, ins), s.now, s.newID)
		if err != nil {
			return err
		}
		if err := st.PutRegistration(ctx, reg); err != nil {
			return storageErr("registration", err)
		}
		result.Registration = &reg
		return s.record(ctx, st, activity.ActionAdd, activity.ModuleWarehouse, "registration", reg.ID, reg.Number, "from "+ins.Number)
	})
	if err != nil {
		return InspectionResult{}, err
	}
	fields := []zap.Field{zap.String("goods_movement_id", movementID), zap.String("inspection_id", result.Inspection.ID)}
	if result.Registration != nil {
		fields = append(fields, zap.String("registration_id", result.Registration.ID))
	}
	s.logChange(ctx, "goods inspected", fields...)
	return result, nil
}

// GetGoodsMovement returns one goods movement.
func (s *Service) GetGoodsMovement(ctx context.Context, movementID string) (inspection.Movement, error) {
	return get(ctx, s, "GetGoodsMovement", "goods_movement", movementID, storage.Stores.GetGoodsMovement)
}

// ListGoodsMovements lists goods movements, newest first.
func (s *Service) ListGoodsMovements(ctx context.Context, q storage.ListQuery) ([]inspection.Movement, error) {
	return list(ctx, s, "ListGoodsMovements", "goods_movement", q, storage.Stores.ListGoodsMovements)
}

// GetInspection returns one inspection.
func (s *Service) GetInspection(ctx context.Context, inspectionID string) (inspection.Inspection, error) {
	return get(ctx, s, "GetInspection", "inspection", inspectionID, storage.Stores.GetInspection)
}

// ListInspections lists inspections, newest first.
func (s *Service) ListInspections(ctx context.Context, q storage.ListQuery) ([]inspection.Inspection, error) {
	return list(ctx, s, "ListInspections", "inspection", q, storage.Stores.ListInspections)
}
