package goods

import (
	"errors"
	"testing"

	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
)

func TestNormalizeItemDefaults(t *testing.T) {
	t.Parallel()

	item, err := NormalizeItem(Item{GoodsType: " Elektronik ", Quantity: 3, Value: money.FromInt(900)})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if item.Name != "Elektronik" || item.Unit != "pcs" || item.Currency != DefaultCurrency || item.Condition != ConditionNew {
		t.Fatalf("defaults not applied: %+v", item)
	}
}

func TestNormalizeItemRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		item Item
		code apperrors.Code
	}{
		{"missing name", Item{Quantity: 1}, apperrors.CodeInvalidArgument},
		{"zero quantity", Item{Name: "Box", Quantity: 0}, apperrors.CodeQuotationItemQuantity},
		{"negative value", Item{Name: "Box", Quantity: 1, Value: money.FromInt(-1)}, apperrors.CodeInvalidArgument},
		{"bad condition", Item{Name: "Box", Quantity: 1, Condition: "shiny"}, apperrors.CodeInvalidArgument},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizeItem(tc.item)
			if got := apperrors.CodeOf(err); got != tc.code {
				t.Fatalf("code = %s, want %s (err %v)", got, tc.code, err)
			}
		})
	}
}

func TestNormalizeItemsRequiresOne(t *testing.T) {
	t.Parallel()

	_, err := NormalizeItems(nil)
	if !errors.Is(err, apperrors.New(apperrors.CodeQuotationItemsRequired, "")) {
		t.Fatalf("err = %v", err)
	}
}

func TestTotals(t *testing.T) {
	t.Parallel()

	items := []Item{
		{Name: "A", Quantity: 2, Value: money.FromInt(1000)},
		{Name: "B", Quantity: 5, Value: money.FromInt(250)},
	}
	if got := TotalQuantity(items); got != 7 {
		t.Fatalf("TotalQuantity = %d, want 7", got)
	}
	if got := TotalValue(items); !got.Equal(money.FromInt(1250)) {
		t.Fatalf("TotalValue = %s, want 1250", got)
	}
}

func TestServiceLineTotal(t *testing.T) {
	t.Parallel()

	storage := ServiceLine{Type: ServiceStorage, Days: 10, DailyRate: money.FromInt(50000), Quantity: 99, UnitPrice: money.FromInt(1)}
	if got := storage.Total(); !got.Equal(money.FromInt(500000)) {
		t.Fatalf("storage total = %s", got)
	}
	handling := ServiceLine{Type: ServiceHandling, Quantity: 4, UnitPrice: money.FromInt(25000)}
	if got := handling.Total(); !got.Equal(money.FromInt(100000)) {
		t.Fatalf("handling total = %s", got)
	}
}

func TestNormalizeServices(t *testing.T) {
	t.Parallel()

	lines, err := NormalizeServices([]ServiceLine{
		{Type: ServiceHandling, Quantity: 2, UnitPrice: money.FromInt(10)},
		{Type: ServiceInsurance, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(lines) != 1 || lines[0].Description != "Loading/Unloading" {
		t.Fatalf("lines = %+v", lines)
	}
	if got := ServicesTotal(lines); !got.Equal(money.FromInt(20)) {
		t.Fatalf("ServicesTotal = %s", got)
	}
	if _, err := NormalizeServices([]ServiceLine{{Type: "catering", Quantity: 1}}); err == nil {
		t.Fatal("expected invalid type error")
	}
}
