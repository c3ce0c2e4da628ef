// Package inspection covers goods movements raised by approved BC documents
// and the physical inspection that puts them into storage.
package inspection

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
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/warehouse"
)

// MovementStatus tracks a goods movement through inspection.
type MovementStatus string

const (
	MovementPendingInspection MovementStatus = "pending_inspection"
	MovementStored            MovementStatus = "stored"
)

// Condition is the inspected state of an item.
type Condition string

const (
	ConditionGood    Condition = "good"
	ConditionDamaged Condition = "damaged"
	ConditionBroken  Condition = "broken"
)

// OverallStatus summarizes an inspection.
type OverallStatus string

const (
	OverallPassed    OverallStatus = "passed"
	OverallWithNotes OverallStatus = "with_notes"
	OverallFailed    OverallStatus = "failed"
)

var (
	// ErrAlreadyStored indicates the movement was already inspected.
	ErrAlreadyStored = apperrors.New(apperrors.CodeMovementAlreadyStored, "goods movement already stored")
	// ErrInspectorRequired indicates the inspector name is missing.
	ErrInspectorRequired = apperrors.New(apperrors.CodeInspectorRequired, "inspector is required")
)

// Movement is the physical flow of goods declared by a BC document.
type Movement struct {
	ID           string            `json:"id"`
	Number       string            `json:"number"`
	BCDocID      string            `json:"bc_doc_id"`
	BCNumber     string            `json:"bc_number"`
	BCDate       string            `json:"bc_date"`
	Direction    customs.Direction `json:"direction"`
	CustomerName string            `json:"customer_name"`
	MovementDate string            `json:"movement_date"`
	Items        []goods.Item      `json:"items"`
	Status       MovementStatus    `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// NewMovement raises a movement awaiting inspection for doc.
func NewMovement(doc customs.Document, now func() time.Time, idGenerator func() (string, error)) (Movement, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	movementID, err := idGenerator()
	if err != nil {
		return Movement{}, fmt.Errorf("generate goods movement id: %w", err)
	}
	at := now().UTC()
	return Movement{
		ID:           movementID,
		Number:       id.Number("GM", at, movementID),
		BCDocID:      doc.ID,
		BCNumber:     doc.BCNumber,
		BCDate:       doc.SubmittedDate,
		Direction:    doc.Direction,
		CustomerName: doc.CustomerName,
		MovementDate: calendar.Today(at),
		Items:        append([]goods.Item(nil), doc.Items...),
		Status:       MovementPendingInspection,
		CreatedAt:    at,
		UpdatedAt:    at,
	}, nil
}

// Item is one inspected line compared against the BC declaration.
type Item struct {
	PackageNumber  string    `json:"package_number"`
	ItemCode       string    `json:"item_code,omitempty"`
	GoodsType      string    `json:"goods_type"`
	BCQuantity     int64     `json:"bc_quantity"`
	ActualQuantity int64     `json:"actual_quantity"`
	Unit           string    `json:"unit"`
	Discrepancy    int64     `json:"discrepancy"`
	Condition      Condition `json:"condition"`
	ConditionNotes string    `json:"condition_notes,omitempty"`
	Verified       bool      `json:"verified"`
}

// Inspection records the check of a goods movement.
type Inspection struct {
	ID              string        `json:"id"`
	Number          string        `json:"number"`
	GoodsMovementID string        `json:"goods_movement_id"`
	BCDocID         string        `json:"bc_doc_id"`
	BCNumber        string        `json:"bc_number"`
	InspectionDate  string        `json:"inspection_date"`
	Inspector       string        `json:"inspector"`
	Items           []Item        `json:"items"`
	OverallStatus   OverallStatus `json:"overall_status"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

// ItemResult is the inspector's finding for the movement item at the same
// index.
type ItemResult struct {
	ActualQuantity int64     `json:"actual_quantity"`
	Condition      Condition `json:"condition"`
	ConditionNotes string    `json:"condition_notes"`
	Verified       bool      `json:"verified"`
}

// Input carries an inspection report.
type Input struct {
	InspectionDate string       `json:"inspection_date"`
	Inspector      string       `json:"inspector"`
	Items          []ItemResult `json:"items"`
	Notes          string       `json:"notes"`
}

// Inspect records an inspection of a pending movement and returns the
// movement marked stored.
func Inspect(mv Movement, input Input, now func() time.Time, idGenerator func() (string, error)) (Movement, Inspection, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	if mv.Status != MovementPendingInspection {
		return Movement{}, Inspection{}, apperrors.WithMetadata(
			apperrors.CodeMovementAlreadyStored,
			fmt.Sprintf("goods movement %s is %s", mv.Number, mv.Status),
			map[string]string{"Number": mv.Number},
		)
	}
	inspector := strings.TrimSpace(input.Inspector)
	if inspector == "" {
		return Movement{}, Inspection{}, ErrInspectorRequired
	}
	if len(input.Items) != len(mv.Items) {
		return Movement{}, Inspection{}, apperrors.Invalid("items", fmt.Sprintf("expected %d inspected items, got %d", len(mv.Items), len(input.Items)))
	}
	at := now().UTC()
	date, err := calendar.NormalizeDate(input.InspectionDate, at)
	if err != nil {
		return Movement{}, Inspection{}, apperrors.Invalid("inspection_date", err.Error())
	}
	items := make([]Item, len(mv.Items))
	for i, declared := range mv.Items {
		result := input.Items[i]
		if result.ActualQuantity < 0 {
			return Movement{}, Inspection{}, apperrors.Invalid("items.actual_quantity", "actual quantity must not be negative")
		}
		condition, err := parseCondition(result.Condition)
		if err != nil {
			return Movement{}, Inspection{}, err
		}
		goodsType := declared.GoodsType
		if goodsType == "" {
			goodsType = declared.Name
		}
		items[i] = Item{
			PackageNumber:  declared.PackageNumber,
			ItemCode:       declared.ItemCode,
			GoodsType:      goodsType,
			BCQuantity:     declared.Quantity,
			ActualQuantity: result.ActualQuantity,
			Unit:           declared.Unit,
			Discrepancy:    result.ActualQuantity - declared.Quantity,
			Condition:      condition,
			ConditionNotes: strings.TrimSpace(result.ConditionNotes),
			Verified:       result.Verified,
		}
	}
	inspectionID, err := idGenerator()
	if err != nil {
		return Movement{}, Inspection{}, fmt.Errorf("generate inspection id: %w", err)
	}
	ins := Inspection{
		ID:              inspectionID,
		Number:          id.Number("INS", at, inspectionID),
		GoodsMovementID: mv.ID,
		BCDocID:         mv.BCDocID,
		BCNumber:        mv.BCNumber,
		InspectionDate:  date,
		Inspector:       inspector,
		Items:           items,
		OverallStatus:   Overall(items),
		Notes:           strings.TrimSpace(input.Notes),
		CreatedAt:       at,
	}
	mv.Status = MovementStored
	mv.UpdatedAt = at
	return mv, ins, nil
}

func parseCondition(c Condition) (Condition, error) {
	switch Condition(strings.ToLower(strings.TrimSpace(string(c)))) {
	case "", ConditionGood:
		return ConditionGood, nil
	case ConditionDamaged:
		return ConditionDamaged, nil
	case ConditionBroken:
		return ConditionBroken, nil
	default:
		return "", apperrors.Invalid("items.condition", fmt.Sprintf("condition %q is invalid", c))
	}
}

// Overall derives the inspection outcome from its items.
func Overall(items []Item) OverallStatus {
	notes := false
	for _, item := range items {
		if !item.Verified {
			return OverallFailed
		}
		if item.Discrepancy != 0 || item.Condition != ConditionGood {
			notes = true
		}
	}
	if notes {
		return OverallWithNotes
	}
	return OverallPassed
}

// RegistrationInput builds the warehouse registration for an inspected
// inbound movement, holding the actual counted quantities. Items are grouped
// by package number in declaration order.
func RegistrationInput(mv Movement, ins Inspection) warehouse.RegistrationInput {
	var packages []warehouse.Package
	index := map[string]int{}
	for i, declared := range mv.Items {
		inspected := ins.Items[i]
		key := declared.PackageNumber
		pos, ok := index[key]
		if !ok {
			pos = len(packages)
			index[key] = pos
			packages = append(packages, warehouse.Package{PackageNumber: key})
		}
		unitValue := money.Zero()
		if declared.Quantity > 0 {
			unitValue = declared.Value.Div(money.FromInt(declared.Quantity)).Round(2)
		}
		condition := declared.Condition
		if inspected.Condition != ConditionGood {
			condition = goods.ConditionDamaged
		}
		packages[pos].Items = append(packages[pos].Items, warehouse.StockItem{
			ItemCode:     declared.ItemCode,
			Name:         declared.Name,
			SerialNumber: declared.SerialNumber,
			GoodsType:    declared.GoodsType,
			Quantity:     inspected.ActualQuantity,
			Unit:         declared.Unit,
			Condition:    condition,
			Value:        unitValue,
			Position:     warehouse.PlaceGudang,
		})
	}
	return warehouse.RegistrationInput{
		SubmissionDate:   ins.InspectionDate,
		BCDocumentNumber: mv.BCNumber,
		BCDocumentDate:   mv.BCDate,
		Title:            fmt.Sprintf("Inspection %s", ins.Number),
		CustomerName:     mv.CustomerName,
		InspectionID:     ins.ID,
		Packages:         packages,
		Remarks:          ins.Notes,
	}
}
