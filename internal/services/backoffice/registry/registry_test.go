package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
)

var fixedNow = time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func fixedID(value string) func() (string, error) {
	return func() (string, error) { return value, nil }
}

func TestCreateCustomer(t *testing.T) {
	t.Parallel()

	got, err := CreateCustomer(CustomerInput{
		Name:    "  Budi Santoso ",
		Company: "PT Maju Jaya",
		Email:   "Budi@MajuJaya.co.id",
		NPWP:    "01.234.567.8-901.000",
	}, fixedClock, fixedID("cust-1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	want := Customer{
		ID:        "cust-1",
		Name:      "Budi Santoso",
		Company:   "PT Maju Jaya",
		Email:     "budi@majujaya.co.id",
		NPWP:      "01.234.567.8-901.000",
		Status:    StatusActive,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("customer mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateCustomerValidation(t *testing.T) {
	t.Parallel()

	if _, err := CreateCustomer(CustomerInput{Name: " "}, fixedClock, fixedID("x")); apperrors.CodeOf(err) != apperrors.CodeInvalidArgument {
		t.Fatalf("blank name err = %v", err)
	}
	if _, err := CreateCustomer(CustomerInput{Name: "A", Email: "not-an-email"}, fixedClock, fixedID("x")); apperrors.CodeOf(err) != apperrors.CodeInvalidArgument {
		t.Fatalf("bad email err = %v", err)
	}
	if _, err := CreateCustomer(CustomerInput{Name: "A", Status: "archived"}, fixedClock, fixedID("x")); err == nil {
		t.Fatal("expected status error")
	}
}

func TestCreateCustomerIDError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := CreateCustomer(CustomerInput{Name: "A"}, fixedClock, func() (string, error) { return "", boom })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestUpdateCustomerKeepsIdentity(t *testing.T) {
	t.Parallel()

	existing := Customer{ID: "cust-1", Name: "Old", Status: StatusActive, CreatedAt: fixedNow}
	later := fixedNow.Add(time.Hour)
	got, err := UpdateCustomer(existing, CustomerInput{Name: "New", Status: StatusInactive}, func() time.Time { return later })
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ID != "cust-1" || !got.CreatedAt.Equal(fixedNow) || !got.UpdatedAt.Equal(later) {
		t.Fatalf("identity not preserved: %+v", got)
	}
	if got.Name != "New" || got.Status != StatusInactive {
		t.Fatalf("fields not applied: %+v", got)
	}
}

func TestCreateVendorCategory(t *testing.T) {
	t.Parallel()

	v, err := CreateVendor(VendorInput{Name: "Samudra Lines", Category: "shipping"}, fixedClock, fixedID("ven-1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if v.Category != CategoryShipping {
		t.Fatalf("category = %q, want %q", v.Category, CategoryShipping)
	}
	v, err = CreateVendor(VendorInput{Name: "Umum"}, fixedClock, fixedID("ven-2"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if v.Category != CategoryGeneral {
		t.Fatalf("default category = %q", v.Category)
	}
	if _, err := CreateVendor(VendorInput{Name: "X", Category: "Catering"}, fixedClock, fixedID("ven-3")); err == nil {
		t.Fatal("expected category error")
	}
}

func TestInputFromRoundTrip(t *testing.T) {
	t.Parallel()

	c := Customer{ID: "c", Name: "N", Company: "Co", Email: "a@b", Status: StatusActive}
	got, err := UpdateCustomer(c, CustomerInputFrom(c), fixedClock)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != c.Name || got.Company != c.Company || got.Email != c.Email {
		t.Fatalf("round trip changed fields: %+v", got)
	}
	v := Vendor{ID: "v", Name: "V", Category: CategoryWarehouse, Status: StatusInactive}
	gotV, err := UpdateVendor(v, VendorInputFrom(v), fixedClock)
	if err != nil {
		t.Fatalf("update vendor: %v", err)
	}
	if gotV.Category != CategoryWarehouse || gotV.Status != StatusInactive {
		t.Fatalf("vendor round trip: %+v", gotV)
	}
}
