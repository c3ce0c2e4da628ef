// Package seed loads master-data fixtures (BC codes, item codes, customers
// and vendors) from YAML into the back office.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/customs"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/registry"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/warehouse"
)

// Fixture is one seed file.
type Fixture struct {
	BCCodes   []BCCode   `yaml:"bc_codes"`
	ItemCodes []ItemCode `yaml:"item_codes"`
	Customers []Customer `yaml:"customers"`
	Vendors   []Vendor   `yaml:"vendors"`
}

// BCCode seeds a customs document code.
type BCCode struct {
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
	Inactive    bool   `yaml:"inactive"`
}

// ItemCode seeds a warehouse item code.
type ItemCode struct {
	Code string `yaml:"code"`
	Type string `yaml:"type"`
}

// Customer seeds a registry customer.
type Customer struct {
	Name    string `yaml:"name"`
	Company string `yaml:"company"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	Address string `yaml:"address"`
	NPWP    string `yaml:"npwp"`
}

// Vendor seeds a registry vendor.
type Vendor struct {
	Name     string `yaml:"name"`
	Contact  string `yaml:"contact"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Category string `yaml:"category"`
	NPWP     string `yaml:"npwp"`
}

// Target receives seeded records.
type Target interface {
	CreateBCCode(ctx context.Context, input customs.BCCodeInput) (customs.BCCode, error)
	CreateItemCode(ctx context.Context, input warehouse.ItemCodeInput) (warehouse.ItemCode, error)
	CreateCustomer(ctx context.Context, input registry.CustomerInput) (registry.Customer, error)
	CreateVendor(ctx context.Context, input registry.VendorInput) (registry.Vendor, error)
}

// Result counts applied and skipped records.
type Result struct {
	Created int
	Skipped int
}

// Decode parses a fixture. Unknown keys are rejected.
func Decode(r io.Reader) (Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f Fixture
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Fixture{}, nil
		}
		return Fixture{}, fmt.Errorf("decode seed yaml: %w", err)
	}
	return f, nil
}

// Apply creates every record of f. Records that already exist are skipped so
// a fixture can be applied repeatedly.
func Apply(ctx context.Context, target Target, f Fixture) (Result, error) {
	if target == nil {
		return Result{}, errors.New("seed target is required")
	}
	var res Result
	for _, c := range f.BCCodes {
		active := !c.Inactive
		_, err := target.CreateBCCode(ctx, customs.BCCodeInput{
			Code:        c.Code,
			Name:        c.Name,
			Category:    customs.Category(c.Category),
			Description: c.Description,
			IsActive:    &active,
		})
		if err := res.count("bc code "+c.Code, err); err != nil {
			return res, err
		}
	}
	for _, c := range f.ItemCodes {
		_, err := target.CreateItemCode(ctx, warehouse.ItemCodeInput{ItemCode: c.Code, ItemType: c.Type})
		if err := res.count("item code "+c.Code, err); err != nil {
			return res, err
		}
	}
	for _, c := range f.Customers {
		_, err := target.CreateCustomer(ctx, registry.CustomerInput{
			Name: c.Name, Company: c.Company, Email: c.Email, Phone: c.Phone, Address: c.Address, NPWP: c.NPWP,
		})
		if err := res.count("customer "+c.Name, err); err != nil {
			return res, err
		}
	}
	for _, v := range f.Vendors {
		_, err := target.CreateVendor(ctx, registry.VendorInput{
			Name: v.Name, Contact: v.Contact, Email: v.Email, Phone: v.Phone,
			Category: registry.VendorCategory(v.Category), NPWP: v.NPWP,
		})
		if err := res.count("vendor "+v.Name, err); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (r *Result) count(what string, err error) error {
	switch {
	case err == nil:
		r.Created++
		return nil
	case apperrors.CodeOf(err) == apperrors.CodeAlreadyExists:
		r.Skipped++
		return nil
	default:
		return fmt.Errorf("seed %s: %w", what, err)
	}
}
