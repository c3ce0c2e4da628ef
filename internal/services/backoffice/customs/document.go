// Package customs models BC customs declarations: the BC code master and the
// per-shipment BC documents with their approval state machine.
package customs

import (
	"fmt"
	"strings"
	"time"

	"github.com/tppb-bridge/backoffice/internal/platform/calendar"
	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/id"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/goods"
)

// Direction is the flow of goods relative to the bonded warehouse.
type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

// ParseDirection validates a direction string.
func ParseDirection(value string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(value))) {
	case DirectionInbound:
		return DirectionInbound, nil
	case DirectionOutbound:
		return DirectionOutbound, nil
	default:
		return "", apperrors.Invalid("direction", fmt.Sprintf("direction %q is invalid", value))
	}
}

// BC document types issued per direction.
const (
	TypeBC23 = "BC 2.3"
	TypeBC27 = "BC 2.7"
)

// Status is the review state of a BC document.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var (
	// ErrNotPending indicates the document was already reviewed.
	ErrNotPending = apperrors.New(apperrors.CodeBCDocumentNotPending, "bc document is not pending")
	// ErrApproverRequired indicates approval needs an approver name.
	ErrApproverRequired = apperrors.New(apperrors.CodeBCApproverRequired, "approver is required")
	// ErrReasonRequired indicates rejection needs a reason.
	ErrReasonRequired = apperrors.New(apperrors.CodeBCRejectReasonRequired, "rejection reason is required")
)

// Document is a BC customs declaration raised from a confirmed quotation.
type Document struct {
	ID              string       `json:"id"`
	BCType          string       `json:"bc_type"`
	BCNumber        string       `json:"bc_number"`
	SubmittedDate   string       `json:"submitted_date"`
	QuotationID     string       `json:"quotation_id"`
	QuotationNumber string       `json:"quotation_number"`
	Direction       Direction    `json:"direction"`
	CustomerID      string       `json:"customer_id"`
	CustomerName    string       `json:"customer_name"`
	Origin          string       `json:"origin"`
	Destination     string       `json:"destination"`
	Items           []goods.Item `json:"items"`
	TotalItems      int64        `json:"total_items"`
	TotalValue      money.Amount `json:"total_value"`
	Status          Status       `json:"status"`
	ApprovedDate    string       `json:"approved_date,omitempty"`
	ApprovedBy      string       `json:"approved_by,omitempty"`
	RejectionReason string       `json:"rejection_reason,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// NewDocumentInput describes the shipment a BC document declares.
type NewDocumentInput struct {
	QuotationID     string
	QuotationNumber string
	Direction       Direction
	CustomerID      string
	CustomerName    string
	Origin          string
	Destination     string
	Items           []goods.Item
	Notes           string
}

// TypeFor returns the BC document type filed for direction.
func TypeFor(direction Direction) string {
	if direction == DirectionOutbound {
		return TypeBC27
	}
	return TypeBC23
}

// NumberFor returns a BC number: the type prefix plus the last six digits of
// the unix millisecond clock.
func NumberFor(direction Direction, now time.Time) string {
	prefix := "BC23"
	if direction == DirectionOutbound {
		prefix = "BC27"
	}
	return id.ShortNumber(prefix, now)
}

// NewDocument creates a pending BC document totalling input items.
func NewDocument(input NewDocumentInput, now func() time.Time, idGenerator func() (string, error)) (Document, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	direction, err := ParseDirection(string(input.Direction))
	if err != nil {
		return Document{}, err
	}
	items, err := goods.NormalizeItems(input.Items)
	if err != nil {
		return Document{}, err
	}
	docID, err := idGenerator()
	if err != nil {
		return Document{}, fmt.Errorf("generate bc document id: %w", err)
	}
	createdAt := now().UTC()
	return Document{
		ID:              docID,
		BCType:          TypeFor(direction),
		BCNumber:        NumberFor(direction, createdAt),
		SubmittedDate:   calendar.Today(createdAt),
		QuotationID:     strings.TrimSpace(input.QuotationID),
		QuotationNumber: strings.TrimSpace(input.QuotationNumber),
		Direction:       direction,
		CustomerID:      strings.TrimSpace(input.CustomerID),
		CustomerName:    strings.TrimSpace(input.CustomerName),
		Origin:          strings.TrimSpace(input.Origin),
		Destination:     strings.TrimSpace(input.Destination),
		Items:           items,
		TotalItems:      goods.TotalQuantity(items),
		TotalValue:      goods.TotalValue(items),
		Status:          StatusPending,
		Notes:           strings.TrimSpace(input.Notes),
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}, nil
}

// Approve moves a pending document to approved.
func Approve(doc Document, approver string, now func() time.Time) (Document, error) {
	if now == nil {
		now = time.Now
	}
	if doc.Status != StatusPending {
		return Document{}, notPending(doc)
	}
	approver = strings.TrimSpace(approver)
	if approver == "" {
		return Document{}, ErrApproverRequired
	}
	at := now().UTC()
	doc.Status = StatusApproved
	doc.ApprovedBy = approver
	doc.ApprovedDate = calendar.Today(at)
	doc.UpdatedAt = at
	return doc, nil
}

// Reject moves a pending document to rejected.
func Reject(doc Document, reason string, now func() time.Time) (Document, error) {
	if now == nil {
		now = time.Now
	}
	if doc.Status != StatusPending {
		return Document{}, notPending(doc)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Document{}, ErrReasonRequired
	}
	doc.Status = StatusRejected
	doc.RejectionReason = reason
	doc.UpdatedAt = now().UTC()
	return doc, nil
}

func notPending(doc Document) error {
	return apperrors.WithMetadata(
		apperrors.CodeBCDocumentNotPending,
		fmt.Sprintf("bc document %s is %s", doc.BCNumber, doc.Status),
		map[string]string{"Number": doc.BCNumber},
	)
}
