// Package money holds rupiah amounts and their locale formatting.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amount is a currency amount. Rupiah values carry no minor unit but
// percentages of them can, so arithmetic stays in decimal.
type Amount = decimal.Decimal

// Indonesian is the default formatting locale.
var Indonesian = language.MustParse("id-ID")

var hundred = decimal.NewFromInt(100)

// Zero returns the zero amount.
func Zero() Amount { return decimal.Zero }

// FromInt converts whole rupiah.
func FromInt(v int64) Amount { return decimal.NewFromInt(v) }

// FromFloat converts a float amount.
func FromFloat(v float64) Amount { return decimal.NewFromFloat(v) }

// Sum adds amounts.
func Sum(amounts ...Amount) Amount {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Percent returns base*rate/100.
func Percent(base, rate Amount) Amount {
	return base.Mul(rate).Div(hundred)
}

// Ratio returns part/whole*100, or zero when whole is zero.
func Ratio(part, whole Amount) Amount {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// Format renders amount rounded to whole units with the grouping of tag,
// e.g. 1234567 -> "1.234.567" for Indonesian.
func Format(tag language.Tag, amount Amount) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%d", amount.Round(0).IntPart())
}

// FormatRupiah renders amount as "Rp 1.234.567" with the grouping of tag.
func FormatRupiah(tag language.Tag, amount Amount) string {
	return "Rp " + Format(tag, amount)
}
