// Package registry models the customer and vendor master data.
package registry

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/id"
)

// Status marks whether a party is still in use.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// VendorCategory groups vendors by the service they provide.
type VendorCategory string

const (
	CategoryShipping      VendorCategory = "Shipping"
	CategoryWarehouse     VendorCategory = "Warehouse"
	CategoryEquipment     VendorCategory = "Equipment"
	CategoryEventSupplies VendorCategory = "Event Supplies"
	CategoryGeneral       VendorCategory = "General"
)

// VendorCategories lists the accepted vendor categories.
var VendorCategories = []VendorCategory{
	CategoryShipping, CategoryWarehouse, CategoryEquipment, CategoryEventSupplies, CategoryGeneral,
}

// Customer is a party that ships goods through the facility.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	NPWP      string    `json:"npwp"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Vendor is a supplier of services to the facility.
type Vendor struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Contact   string         `json:"contact"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Category  VendorCategory `json:"category"`
	NPWP      string         `json:"npwp"`
	Status    Status         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// CustomerInput carries editable customer fields.
type CustomerInput struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	NPWP    string `json:"npwp"`
	Status  Status `json:"status"`
}

// VendorInput carries editable vendor fields.
type VendorInput struct {
	Name     string         `json:"name"`
	Contact  string         `json:"contact"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Category VendorCategory `json:"category"`
	NPWP     string         `json:"npwp"`
	Status   Status         `json:"status"`
}

// NormalizeCustomerInput trims and validates customer input.
func NormalizeCustomerInput(input CustomerInput) (CustomerInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return CustomerInput{}, apperrors.Invalid("name", "customer name is required")
	}
	input.Company = strings.TrimSpace(input.Company)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address = strings.TrimSpace(input.Address)
	input.NPWP = strings.TrimSpace(input.NPWP)
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return CustomerInput{}, err
	}
	input.Email = email
	status, err := normalizeStatus(input.Status)
	if err != nil {
		return CustomerInput{}, err
	}
	input.Status = status
	return input, nil
}

// NormalizeVendorInput trims and validates vendor input.
func NormalizeVendorInput(input VendorInput) (VendorInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return VendorInput{}, apperrors.Invalid("name", "vendor name is required")
	}
	input.Contact = strings.TrimSpace(input.Contact)
	input.Phone = strings.TrimSpace(input.Phone)
	input.NPWP = strings.TrimSpace(input.NPWP)
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return VendorInput{}, err
	}
	input.Email = email

	category := VendorCategory(strings.TrimSpace(string(input.Category)))
	if category == "" {
		category = CategoryGeneral
	}
	valid := false
	for _, c := range VendorCategories {
		if strings.EqualFold(string(c), string(category)) {
			category, valid = c, true
			break
		}
	}
	if !valid {
		return VendorInput{}, apperrors.Invalid("category", fmt.Sprintf("vendor category %q is invalid", input.Category))
	}
	input.Category = category

	status, err := normalizeStatus(input.Status)
	if err != nil {
		return VendorInput{}, err
	}
	input.Status = status
	return input, nil
}

// CreateCustomer builds a new customer.
func CreateCustomer(input CustomerInput, now func() time.Time, idGenerator func() (string, error)) (Customer, error) {
	now, idGenerator = defaults(now, idGenerator)
	normalized, err := NormalizeCustomerInput(input)
	if err != nil {
		return Customer{}, err
	}
	customerID, err := idGenerator()
	if err != nil {
		return Customer{}, fmt.Errorf("generate customer id: %w", err)
	}
	createdAt := now().UTC()
	return UpdateCustomer(Customer{ID: customerID, CreatedAt: createdAt}, normalized, func() time.Time { return createdAt })
}

// UpdateCustomer applies input to an existing customer.
func UpdateCustomer(existing Customer, input CustomerInput, now func() time.Time) (Customer, error) {
	if now == nil {
		now = time.Now
	}
	normalized, err := NormalizeCustomerInput(input)
	if err != nil {
		return Customer{}, err
	}
	existing.Name = normalized.Name
	existing.Company = normalized.Company
	existing.Email = normalized.Email
	existing.Phone = normalized.Phone
	existing.Address = normalized.Address
	existing.NPWP = normalized.NPWP
	existing.Status = normalized.Status
	existing.UpdatedAt = now().UTC()
	return existing, nil
}

// CustomerInputFrom returns the editable fields of c.
func CustomerInputFrom(c Customer) CustomerInput {
	return CustomerInput{
		Name: c.Name, Company: c.Company, Email: c.Email, Phone: c.Phone,
		Address: c.Address, NPWP: c.NPWP, Status: c.Status,
	}
}

// CreateVendor builds a new vendor.
func CreateVendor(input VendorInput, now func() time.Time, idGenerator func() (string, error)) (Vendor, error) {
	now, idGenerator = defaults(now, idGenerator)
	normalized, err := NormalizeVendorInput(input)
	if err != nil {
		return Vendor{}, err
	}
	vendorID, err := idGenerator()
	if err != nil {
		return Vendor{}, fmt.Errorf("generate vendor id: %w", err)
	}
	createdAt := now().UTC()
	return UpdateVendor(Vendor{ID: vendorID, CreatedAt: createdAt}, normalized, func() time.Time { return createdAt })
}

// UpdateVendor applies input to an existing vendor.
func UpdateVendor(existing Vendor, input VendorInput, now func() time.Time) (Vendor, error) {
	if now == nil {
		now = time.Now
	}
	normalized, err := NormalizeVendorInput(input)
	if err != nil {
		return Vendor{}, err
	}
	existing.Name = normalized.Name
	existing.Contact = normalized.Contact
	existing.Email = normalized.Email
	existing.Phone = normalized.Phone
	existing.Category = normalized.Category
	existing.NPWP = normalized.NPWP
	existing.Status = normalized.Status
	existing.UpdatedAt = now().UTC()
	return existing, nil
}

// VendorInputFrom returns the editable fields of v.
func VendorInputFrom(v Vendor) VendorInput {
	return VendorInput{
		Name: v.Name, Contact: v.Contact, Email: v.Email, Phone: v.Phone,
		Category: v.Category, NPWP: v.NPWP, Status: v.Status,
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" && !strings.Contains(email, "@") {
		return "", apperrors.Invalid("email", "email must contain @")
	}
	return email, nil
}

func normalizeStatus(status Status) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(string(status)))) {
	case "", StatusActive:
		return StatusActive, nil
	case StatusInactive:
		return StatusInactive, nil
	default:
		return "", apperrors.Invalid("status", fmt.Sprintf("status %q is invalid", status))
	}
}

func defaults(now func() time.Time, idGenerator func() (string, error)) (func() time.Time, func() (string, error)) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return now, idGenerator
}
