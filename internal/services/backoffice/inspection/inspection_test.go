package inspection

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/customs"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/goods"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/warehouse"
)

var fixedNow = time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func fixedID() (string, error) { return "gm-1", nil }

func sampleMovement(t *testing.T) Movement {
	t.Helper()
	doc := customs.Document{
		ID:            "doc-1",
		BCNumber:      "BC23-200123",
		SubmittedDate: "2025-07-13",
		Direction:     customs.DirectionInbound,
		CustomerName:  "PT Maju",
		Items: []goods.Item{
			{PackageNumber: "P1", Name: "Laptop", GoodsType: "Electronics", Quantity: 10, Unit: "pcs", Condition: goods.ConditionNew, Value: money.FromInt(150_000_000)},
			{PackageNumber: "P1", Name: "Mouse", Quantity: 20, Unit: "pcs", Condition: goods.ConditionNew, Value: money.FromInt(2_000_000)},
			{PackageNumber: "P2", Name: "Desk", Quantity: 2, Unit: "pcs", Condition: goods.ConditionUsed, Value: money.FromInt(3_000_000)},
		},
	}
	mv, err := NewMovement(doc, fixedClock, fixedID)
	if err != nil {
		t.Fatalf("new movement: %v", err)
	}
	return mv
}

func TestNewMovementPendingInspection(t *testing.T) {
	t.Parallel()

	mv := sampleMovement(t)
	if mv.Status != MovementPendingInspection {
		t.Fatalf("status = %s", mv.Status)
	}
	if mv.Number != "GM-1752487200000-GM1" || mv.BCDocID != "doc-1" || len(mv.Items) != 3 {
		t.Fatalf("movement = %+v", mv)
	}
}

func TestOverall(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []Item
		want  OverallStatus
	}{
		{name: "passed", items: []Item{{Verified: true, Condition: ConditionGood}}, want: OverallPassed},
		{name: "discrepancy", items: []Item{{Verified: true, Condition: ConditionGood, Discrepancy: -1}}, want: OverallWithNotes},
		{name: "damaged", items: []Item{{Verified: true, Condition: ConditionDamaged}}, want: OverallWithNotes},
		{name: "unverified wins", items: []Item{{Verified: true, Condition: ConditionBroken}, {Condition: ConditionGood}}, want: OverallFailed},
		{name: "empty", want: OverallPassed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Overall(tt.items); got != tt.want {
				t.Fatalf("overall = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestInspectStoresMovement(t *testing.T) {
	t.Parallel()

	mv := sampleMovement(t)
	stored, ins, err := Inspect(mv, Input{
		Inspector: " Andi ",
		Items: []ItemResult{
			{ActualQuantity: 9, Verified: true},
			{ActualQuantity: 20, Verified: true},
			{ActualQuantity: 2, Condition: ConditionDamaged, ConditionNotes: "scratched", Verified: true},
		},
	}, fixedClock, func() (string, error) { return "ins-1", nil })
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if stored.Status != MovementStored {
		t.Fatalf("movement status = %s", stored.Status)
	}
	if ins.Inspector != "Andi" || ins.InspectionDate != "2025-07-14" || ins.OverallStatus != OverallWithNotes {
		t.Fatalf("inspection = %+v", ins)
	}
	want := Item{PackageNumber: "P1", GoodsType: "Electronics", BCQuantity: 10, ActualQuantity: 9, Unit: "pcs", Discrepancy: -1, Condition: ConditionGood, Verified: true}
	if diff := cmp.Diff(want, ins.Items[0]); diff != "" {
		t.Fatalf("item mismatch (-want +got):\n%s", diff)
	}
	if ins.Items[1].GoodsType != "Mouse" {
		t.Fatalf("goods type fallback = %q", ins.Items[1].GoodsType)
	}

	if _, _, err := Inspect(stored, Input{Inspector: "Andi"}, fixedClock, fixedID); !errors.Is(err, ErrAlreadyStored) {
		t.Fatalf("second inspect err = %v", err)
	}
}

func TestInspectValidation(t *testing.T) {
	t.Parallel()

	mv := sampleMovement(t)
	if _, _, err := Inspect(mv, Input{}, fixedClock, fixedID); !errors.Is(err, ErrInspectorRequired) {
		t.Fatalf("err = %v, want inspector required", err)
	}
	if _, _, err := Inspect(mv, Input{Inspector: "Andi", Items: []ItemResult{{}}}, fixedClock, fixedID); apperrors.CodeOf(err) != apperrors.CodeInvalidArgument {
		t.Fatalf("item count code = %s", apperrors.CodeOf(err))
	}
	bad := []ItemResult{{Condition: "lost"}, {}, {}}
	if _, _, err := Inspect(mv, Input{Inspector: "Andi", Items: bad}, fixedClock, fixedID); apperrors.CodeOf(err) != apperrors.CodeInvalidArgument {
		t.Fatalf("condition code = %s", apperrors.CodeOf(err))
	}
}

func TestRegistrationInputFromInspection(t *testing.T) {
	t.Parallel()

	mv := sampleMovement(t)
	_, ins, err := Inspect(mv, Input{
		Inspector: "Andi",
		Items: []ItemResult{
			{ActualQuantity: 9, Verified: true},
			{ActualQuantity: 20, Verified: true},
			{ActualQuantity: 2, Condition: ConditionBroken, Verified: false},
		},
	}, fixedClock, func() (string, error) { return "ins-1", nil })
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if ins.OverallStatus != OverallFailed {
		t.Fatalf("overall = %s", ins.OverallStatus)
	}

	input := RegistrationInput(mv, ins)
	if len(input.Packages) != 2 || len(input.Packages[0].Items) != 2 {
		t.Fatalf("packages = %+v", input.Packages)
	}
	laptop := input.Packages[0].Items[0]
	if laptop.Quantity != 9 || !laptop.Value.Equal(money.FromInt(15_000_000)) {
		t.Fatalf("laptop = %+v", laptop)
	}
	if desk := input.Packages[1].Items[0]; desk.Condition != goods.ConditionDamaged || desk.Position != warehouse.PlaceGudang {
		t.Fatalf("desk = %+v", desk)
	}
	if input.InspectionID != "ins-1" || input.BCDocumentNumber != "BC23-200123" || input.BCDocumentDate != "2025-07-13" {
		t.Fatalf("registration input = %+v", input)
	}
	if _, err := warehouse.CreateRegistration(input, fixedClock, nil); err != nil {
		t.Fatalf("create registration: %v", err)
	}
}
