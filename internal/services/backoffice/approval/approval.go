// Package approval holds edit and delete requests against master data that
// only take effect once a reviewer approves them.
package approval

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/id"
)

// Type is the requested change.
type Type string

const (
	TypeEdit   Type = "edit"
	TypeDelete Type = "delete"
)

// EntityType names the record kind a request targets.
type EntityType string

const (
	EntityCustomer EntityType = "customer"
	EntityVendor   EntityType = "vendor"
	EntityBCCode   EntityType = "bc_code"
	EntityItemCode EntityType = "item_code"
	EntityFinance  EntityType = "finance"
)

// EntityTypes lists every entity an approval can target.
var EntityTypes = []EntityType{EntityCustomer, EntityVendor, EntityBCCode, EntityItemCode, EntityFinance}

// Status is the review state.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var (
	// ErrNotPending indicates the request was already reviewed.
	ErrNotPending = apperrors.New(apperrors.CodeApprovalNotPending, "approval request is not pending")
	// ErrReasonRequired indicates a rejection without a reason.
	ErrReasonRequired = apperrors.New(apperrors.CodeApprovalReasonRequired, "rejection reason is required")
)

// Request asks for an edit or delete of one entity.
type Request struct {
	ID           string          `json:"id"`
	Type         Type            `json:"type"`
	EntityType   EntityType      `json:"entity_type"`
	EntityID     string          `json:"entity_id"`
	EntityName   string          `json:"entity_name"`
	RequestedBy  string          `json:"requested_by"`
	RequestDate  time.Time       `json:"request_date"`
	Details      string          `json:"details,omitempty"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	Status       Status          `json:"status"`
	ReviewedBy   string          `json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time      `json:"reviewed_at,omitempty"`
	RejectReason string          `json:"reject_reason,omitempty"`
}

// Input carries a new request.
type Input struct {
	Type        Type            `json:"type"`
	EntityType  EntityType      `json:"entity_type"`
	EntityID    string          `json:"entity_id"`
	EntityName  string          `json:"entity_name"`
	RequestedBy string          `json:"requested_by"`
	Details     string          `json:"details"`
	Payload     json.RawMessage `json:"payload"`
}

// Create validates input and opens a pending request.
func Create(input Input, now func() time.Time, idGenerator func() (string, error)) (Request, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	kind := Type(strings.ToLower(strings.TrimSpace(string(input.Type))))
	if kind != TypeEdit && kind != TypeDelete {
		return Request{}, apperrors.Invalid("type", fmt.Sprintf("request type %q is invalid", input.Type))
	}
	entity, err := ParseEntityType(string(input.EntityType))
	if err != nil {
		return Request{}, err
	}
	entityID := strings.TrimSpace(input.EntityID)
	if entityID == "" {
		return Request{}, apperrors.Invalid("entity_id", "entity id is required")
	}
	requestedBy := strings.TrimSpace(input.RequestedBy)
	if requestedBy == "" {
		return Request{}, apperrors.Invalid("requested_by", "requester is required")
	}
	var payload json.RawMessage
	if kind == TypeEdit {
		trimmed := strings.TrimSpace(string(input.Payload))
		if trimmed == "" || trimmed == "null" {
			return Request{}, apperrors.Invalid("payload", "edit requests need a payload")
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal([]byte(trimmed), &fields); err != nil {
			return Request{}, apperrors.Invalid("payload", "payload must be a JSON object")
		}
		payload = json.RawMessage(trimmed)
	}
	requestID, err := idGenerator()
	if err != nil {
		return Request{}, fmt.Errorf("generate approval id: %w", err)
	}
	return Request{
		ID:          requestID,
		Type:        kind,
		EntityType:  entity,
		EntityID:    entityID,
		EntityName:  strings.TrimSpace(input.EntityName),
		RequestedBy: requestedBy,
		RequestDate: now().UTC(),
		Details:     strings.TrimSpace(input.Details),
		Payload:     payload,
		Status:      StatusPending,
	}, nil
}

// ParseEntityType validates an entity type name.
func ParseEntityType(value string) (EntityType, error) {
	e := EntityType(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range EntityTypes {
		if e == known {
			return e, nil
		}
	}
	return "", apperrors.Invalid("entity_type", fmt.Sprintf("entity type %q is invalid", value))
}

// Approve marks a pending request approved. The caller applies the change.
func Approve(req Request, reviewer string, now func() time.Time) (Request, error) {
	if now == nil {
		now = time.Now
	}
	if req.Status != StatusPending {
		return Request{}, ErrNotPending
	}
	at := now().UTC()
	req.Status = StatusApproved
	req.ReviewedBy = strings.TrimSpace(reviewer)
	req.ReviewedAt = &at
	return req, nil
}

// Reject marks a pending request rejected.
func Reject(req Request, reviewer, reason string, now func() time.Time) (Request, error) {
	if now == nil {
		now = time.Now
	}
	if req.Status != StatusPending {
		return Request{}, ErrNotPending
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Request{}, ErrReasonRequired
	}
	at := now().UTC()
	req.Status = StatusRejected
	req.ReviewedBy = strings.TrimSpace(reviewer)
	req.ReviewedAt = &at
	req.RejectReason = reason
	return req, nil
}

// ApplyPayload overlays the edit payload onto base, which must be a pointer
// to the entity's input struct populated from the current record.
func ApplyPayload(req Request, base any) error {
	if req.Type != TypeEdit {
		return fmt.Errorf("apply payload: request %s is a %s request", req.ID, req.Type)
	}
	if err := json.Unmarshal(req.Payload, base); err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidArgument, "approval payload does not match the entity", err)
	}
	return nil
}

// Stats counts requests by status.
type Stats struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// ComputeStats tallies reqs.
func ComputeStats(reqs []Request) Stats {
	var s Stats
	for _, r := range reqs {
		switch r.Status {
		case StatusPending:
			s.Pending++
		case StatusApproved:
			s.Approved++
		case StatusRejected:
			s.Rejected++
		}
	}
	return s
}
