// Package quotation models priced offers for moving goods through the
// bonded warehouse, from draft to confirmation.
package quotation

import (
	"fmt"
	"strings"
	"time"

	"github.com/tppb-bridge/backoffice/internal/platform/calendar"
	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/id"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/customs"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/goods"
)

// DefaultTaxRate is the VAT percentage applied when none is given.
var DefaultTaxRate = money.FromInt(11)

// Status is the lifecycle state of a quotation.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

// ErrNotDraft indicates only drafts can be edited, confirmed or rejected.
var ErrNotDraft = apperrors.New(apperrors.CodeQuotationNotDraft, "quotation is not a draft")

// Quotation is a priced offer to a customer.
type Quotation struct {
	ID           string              `json:"id"`
	Number       string              `json:"number"`
	Direction    customs.Direction   `json:"direction"`
	CustomerID   string              `json:"customer_id"`
	CustomerName string              `json:"customer_name"`
	Origin       string              `json:"origin"`
	Destination  string              `json:"destination"`
	Date         string              `json:"date"`
	Items        []goods.Item        `json:"items"`
	Services     []goods.ServiceLine `json:"services"`
	CustomCosts  []CustomCost        `json:"custom_costs"`
	Discount     Discount            `json:"discount"`
	TaxRate      money.Amount        `json:"tax_rate"`
	Summary      Summary             `json:"summary"`
	Status       Status              `json:"status"`
	BCDocumentID string              `json:"bc_document_id,omitempty"`
	Notes        string              `json:"notes,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// Input carries editable quotation fields. A nil TaxRate means DefaultTaxRate.
type Input struct {
	Direction    customs.Direction   `json:"direction"`
	CustomerID   string              `json:"customer_id"`
	CustomerName string              `json:"customer_name"`
	Origin       string              `json:"origin"`
	Destination  string              `json:"destination"`
	Date         string              `json:"date"`
	Items        []goods.Item        `json:"items"`
	Services     []goods.ServiceLine `json:"services"`
	CustomCosts  []CustomCost        `json:"custom_costs"`
	Discount     Discount            `json:"discount"`
	TaxRate      *money.Amount       `json:"tax_rate,omitempty"`
	Notes        string              `json:"notes"`
}

type normalizedInput struct {
	Input
	taxRate money.Amount
	summary Summary
}

func normalize(input Input, now time.Time) (normalizedInput, error) {
	direction, err := customs.ParseDirection(string(input.Direction))
	if err != nil {
		return normalizedInput{}, err
	}
	input.Direction = direction
	input.CustomerID = strings.TrimSpace(input.CustomerID)
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	if input.CustomerID == "" && input.CustomerName == "" {
		return normalizedInput{}, apperrors.New(apperrors.CodeQuotationCustomerMissed, "customer is required")
	}
	input.Origin = strings.TrimSpace(input.Origin)
	input.Destination = strings.TrimSpace(input.Destination)
	input.Notes = strings.TrimSpace(input.Notes)
	date, err := calendar.NormalizeDate(input.Date, now)
	if err != nil {
		return normalizedInput{}, apperrors.Invalid("date", err.Error())
	}
	input.Date = date

	if input.Items, err = goods.NormalizeItems(input.Items); err != nil {
		return normalizedInput{}, err
	}
	if input.Services, err = goods.NormalizeServices(input.Services); err != nil {
		return normalizedInput{}, err
	}
	if input.CustomCosts, err = normalizeCustomCosts(input.CustomCosts); err != nil {
		return normalizedInput{}, err
	}
	if input.Discount, err = normalizeDiscount(input.Discount); err != nil {
		return normalizedInput{}, err
	}
	taxRate := DefaultTaxRate
	if input.TaxRate != nil {
		taxRate = *input.TaxRate
	}
	summary, err := Summarize(input.Items, input.Services, input.CustomCosts, input.Discount, taxRate)
	if err != nil {
		return normalizedInput{}, err
	}
	return normalizedInput{Input: input, taxRate: taxRate, summary: summary}, nil
}

// Create builds a draft quotation.
func Create(input Input, now func() time.Time, idGenerator func() (string, error)) (Quotation, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	createdAt := now().UTC()
	n, err := normalize(input, createdAt)
	if err != nil {
		return Quotation{}, err
	}
	quotationID, err := idGenerator()
	if err != nil {
		return Quotation{}, fmt.Errorf("generate quotation id: %w", err)
	}
	q := Quotation{
		ID:        quotationID,
		Number:    id.Number("QT", createdAt, quotationID),
		Status:    StatusDraft,
		CreatedAt: createdAt,
	}
	apply(&q, n, createdAt)
	return q, nil
}

// Update replaces the editable fields of a draft.
func Update(existing Quotation, input Input, now func() time.Time) (Quotation, error) {
	if now == nil {
		now = time.Now
	}
	if existing.Status != StatusDraft {
		return Quotation{}, notDraft(existing)
	}
	at := now().UTC()
	n, err := normalize(input, at)
	if err != nil {
		return Quotation{}, err
	}
	apply(&existing, n, at)
	return existing, nil
}

func apply(q *Quotation, n normalizedInput, at time.Time) {
	q.Direction = n.Direction
	q.CustomerID = n.CustomerID
	q.CustomerName = n.CustomerName
	q.Origin = n.Origin
	q.Destination = n.Destination
	q.Date = n.Date
	q.Items = n.Items
	q.Services = n.Services
	q.CustomCosts = n.CustomCosts
	q.Discount = n.Discount
	q.TaxRate = n.taxRate
	q.Summary = n.summary
	q.Notes = n.Notes
	q.UpdatedAt = at
}

// Confirm accepts a draft and returns the BC document it raises. The caller
// persists both together.
func Confirm(q Quotation, now func() time.Time, idGenerator func() (string, error)) (Quotation, customs.Document, error) {
	if now == nil {
		now = time.Now
	}
	if q.Status != StatusDraft {
		return Quotation{}, customs.Document{}, notDraft(q)
	}
	at := now().UTC()
	doc, err := customs.NewDocument(customs.NewDocumentInput{
		QuotationID:     q.ID,
		QuotationNumber: q.Number,
		Direction:       q.Direction,
		CustomerID:      q.CustomerID,
		CustomerName:    q.CustomerName,
		Origin:          q.Origin,
		Destination:     q.Destination,
		Items:           q.Items,
	}, func() time.Time { return at }, idGenerator)
	if err != nil {
		return Quotation{}, customs.Document{}, err
	}
	q.Status = StatusConfirmed
	q.BCDocumentID = doc.ID
	q.UpdatedAt = at
	return q, doc, nil
}

// Reject declines a draft.
func Reject(q Quotation, now func() time.Time) (Quotation, error) {
	if now == nil {
		now = time.Now
	}
	if q.Status != StatusDraft {
		return Quotation{}, notDraft(q)
	}
	q.Status = StatusRejected
	q.UpdatedAt = now().UTC()
	return q, nil
}

func notDraft(q Quotation) error {
	return apperrors.WithMetadata(
		apperrors.CodeQuotationNotDraft,
		fmt.Sprintf("quotation %s is %s", q.Number, q.Status),
		map[string]string{"Number": q.Number},
	)
}
