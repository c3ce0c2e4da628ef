package quotation

import (
	"fmt"
	"strings"

	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/goods"
)

// DiscountType selects how a discount value is read.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountNominal    DiscountType = "nominal"
)

// Discount is applied to the subtotal before tax.
type Discount struct {
	Type  DiscountType `json:"type"`
	Value money.Amount `json:"value"`
}

// CustomCost is an ad-hoc charge added on top of services.
type CustomCost struct {
	Description string       `json:"description"`
	Amount      money.Amount `json:"amount"`
}

// Summary is the cost breakdown of a quotation.
type Summary struct {
	ItemsSubtotal       money.Amount `json:"items_subtotal"`
	ServiceSubtotal     money.Amount `json:"service_subtotal"`
	CustomCostsSubtotal money.Amount `json:"custom_costs_subtotal"`
	Subtotal            money.Amount `json:"subtotal"`
	DiscountAmount      money.Amount `json:"discount_amount"`
	AfterDiscount       money.Amount `json:"after_discount"`
	TaxRate             money.Amount `json:"tax_rate"`
	TaxAmount           money.Amount `json:"tax_amount"`
	GrandTotal          money.Amount `json:"grand_total"`
}

var hundred = money.FromInt(100)

// Summarize computes the breakdown. Percentage discounts must lie within
// 0..100, nominal discounts within 0..subtotal and the tax rate within 0..100.
func Summarize(items []goods.Item, services []goods.ServiceLine, customCosts []CustomCost, discount Discount, taxRate money.Amount) (Summary, error) {
	s := Summary{
		ItemsSubtotal:       goods.TotalValue(items),
		ServiceSubtotal:     goods.ServicesTotal(services),
		CustomCostsSubtotal: customCostsTotal(customCosts),
		TaxRate:             taxRate,
	}
	s.Subtotal = money.Sum(s.ItemsSubtotal, s.ServiceSubtotal, s.CustomCostsSubtotal)

	if taxRate.IsNegative() || taxRate.GreaterThan(hundred) {
		return Summary{}, apperrors.New(apperrors.CodeQuotationTaxRateRange, "tax rate must be within 0..100")
	}
	if discount.Value.IsNegative() {
		return Summary{}, discountRangeError("discount must not be negative")
	}
	switch discount.Type {
	case DiscountPercentage, "":
		if discount.Value.GreaterThan(hundred) {
			return Summary{}, discountRangeError("percentage discount must be within 0..100")
		}
		s.DiscountAmount = money.Percent(s.Subtotal, discount.Value)
	case DiscountNominal:
		if discount.Value.GreaterThan(s.Subtotal) {
			return Summary{}, discountRangeError("nominal discount exceeds subtotal")
		}
		s.DiscountAmount = discount.Value
	default:
		return Summary{}, apperrors.Invalid("discount.type", fmt.Sprintf("discount type %q is invalid", discount.Type))
	}

	s.AfterDiscount = s.Subtotal.Sub(s.DiscountAmount)
	s.TaxAmount = money.Percent(s.AfterDiscount, taxRate)
	s.GrandTotal = s.AfterDiscount.Add(s.TaxAmount)
	return s, nil
}

func normalizeDiscount(d Discount) (Discount, error) {
	d.Type = DiscountType(strings.ToLower(strings.TrimSpace(string(d.Type))))
	switch d.Type {
	case "":
		d.Type = DiscountPercentage
	case DiscountPercentage, DiscountNominal:
	default:
		return Discount{}, apperrors.Invalid("discount.type", fmt.Sprintf("discount type %q is invalid", d.Type))
	}
	return d, nil
}

func normalizeCustomCosts(costs []CustomCost) ([]CustomCost, error) {
	out := make([]CustomCost, 0, len(costs))
	for _, c := range costs {
		c.Description = strings.TrimSpace(c.Description)
		if c.Description == "" {
			return nil, apperrors.Invalid("custom_costs.description", "custom cost description is required")
		}
		if !c.Amount.IsPositive() {
			return nil, apperrors.Invalid("custom_costs.amount", "custom cost amount must be greater than zero")
		}
		out = append(out, c)
	}
	return out, nil
}

func customCostsTotal(costs []CustomCost) money.Amount {
	total := money.Zero()
	for _, c := range costs {
		total = total.Add(c.Amount)
	}
	return total
}

func discountRangeError(message string) error {
	return apperrors.New(apperrors.CodeQuotationDiscountRange, message)
}
