// Package goods holds the cargo line items and service charges shared by
// quotations, BC documents, inspections and customs transactions.
package goods

import (
	"fmt"
	"strings"

	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
)

// DefaultCurrency applies to items declared without a currency.
const DefaultCurrency = "IDR"

// Condition describes the declared state of an item.
type Condition string

const (
	ConditionNew         Condition = "new"
	ConditionUsed        Condition = "used"
	ConditionRefurbished Condition = "refurbished"
	ConditionDamaged     Condition = "damaged"
)

// Item is one declared cargo line. Value is the declared value of the whole
// line, not a unit price.
type Item struct {
	ItemCode      string       `json:"item_code"`
	Name          string       `json:"name"`
	SerialNumber  string       `json:"serial_number,omitempty"`
	PackageNumber string       `json:"package_number,omitempty"`
	GoodsType     string       `json:"goods_type,omitempty"`
	Quantity      int64        `json:"quantity"`
	Unit          string       `json:"unit"`
	Condition     Condition    `json:"condition"`
	Value         money.Amount `json:"value"`
	Currency      string       `json:"currency"`
	Weight        string       `json:"weight,omitempty"`
	Dimensions    string       `json:"dimensions,omitempty"`
	Notes         string       `json:"notes,omitempty"`
}

// NormalizeItem trims item text fields and applies defaults.
func NormalizeItem(item Item) (Item, error) {
	item.ItemCode = strings.TrimSpace(item.ItemCode)
	item.Name = strings.TrimSpace(item.Name)
	item.SerialNumber = strings.TrimSpace(item.SerialNumber)
	item.PackageNumber = strings.TrimSpace(item.PackageNumber)
	item.GoodsType = strings.TrimSpace(item.GoodsType)
	item.Unit = strings.TrimSpace(item.Unit)
	item.Currency = strings.ToUpper(strings.TrimSpace(item.Currency))
	item.Weight = strings.TrimSpace(item.Weight)
	item.Dimensions = strings.TrimSpace(item.Dimensions)
	item.Notes = strings.TrimSpace(item.Notes)

	if item.Name == "" && item.GoodsType == "" {
		return Item{}, apperrors.Invalid("items.name", "item name or goods type is required")
	}
	if item.Name == "" {
		item.Name = item.GoodsType
	}
	if item.Quantity <= 0 {
		return Item{}, apperrors.New(apperrors.CodeQuotationItemQuantity, "item quantity must be greater than zero")
	}
	if item.Value.IsNegative() {
		return Item{}, apperrors.Invalid("items.value", "item value must not be negative")
	}
	if item.Unit == "" {
		item.Unit = "pcs"
	}
	if item.Currency == "" {
		item.Currency = DefaultCurrency
	}
	condition, err := ParseCondition(string(item.Condition))
	if err != nil {
		return Item{}, err
	}
	item.Condition = condition
	return item, nil
}

// ParseCondition normalizes a declared item condition; blank means new.
func ParseCondition(value string) (Condition, error) {
	switch c := Condition(strings.ToLower(strings.TrimSpace(value))); c {
	case "":
		return ConditionNew, nil
	case ConditionNew, ConditionUsed, ConditionRefurbished, ConditionDamaged:
		return c, nil
	default:
		return "", apperrors.Invalid("items.condition", fmt.Sprintf("item condition %q is invalid", value))
	}
}

// NormalizeItems normalizes every item and requires at least one.
func NormalizeItems(items []Item) ([]Item, error) {
	if len(items) == 0 {
		return nil, apperrors.New(apperrors.CodeQuotationItemsRequired, "at least one item is required")
	}
	out := make([]Item, len(items))
	for i, item := range items {
		normalized, err := NormalizeItem(item)
		if err != nil {
			return nil, err
		}
		out[i] = normalized
	}
	return out, nil
}

// TotalQuantity sums item quantities.
func TotalQuantity(items []Item) int64 {
	var total int64
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// TotalValue sums item line values.
func TotalValue(items []Item) money.Amount {
	total := money.Zero()
	for _, item := range items {
		total = total.Add(item.Value)
	}
	return total
}
