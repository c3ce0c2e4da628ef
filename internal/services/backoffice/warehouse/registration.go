// Package warehouse models bonded-warehouse stock: goods registrations
// (pengajuan), per-item stock movements and the mutation log they produce.
package warehouse

import (
	"fmt"
	"strings"
	"time"

	"github.com/tppb-bridge/backoffice/internal/platform/calendar"
	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/id"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/goods"
)

// Place is where a stock item currently sits.
type Place string

const (
	PlaceGudang           Place = "gudang"
	PlacePameran          Place = "pameran"
	PlaceSupplier         Place = "supplier"
	PlaceCustomer         Place = "customer"
	PlaceBarangHabisRusak Place = "barang_habis_rusak"
	PlacePenjualan        Place = "penjualan"
	PlaceRusak            Place = "rusak"
	PlaceLainnya          Place = "lainnya"
)

// Places lists every accepted movement origin or destination.
var Places = []Place{
	PlaceGudang, PlacePameran, PlaceSupplier, PlaceCustomer,
	PlaceBarangHabisRusak, PlacePenjualan, PlaceRusak, PlaceLainnya,
}

// ParsePlace validates a place name.
func ParsePlace(value string) (Place, error) {
	p := Place(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range Places {
		if p == known {
			return p, nil
		}
	}
	return "", apperrors.Invalid("location", fmt.Sprintf("location %q is invalid", value))
}

// Location is the shelf address inside the warehouse.
type Location struct {
	Room string `json:"room"`
	Rack string `json:"rack"`
	Slot string `json:"slot"`
}

// StockItem is one stored item line. Value is the unit value.
type StockItem struct {
	ID           string          `json:"id"`
	ItemCode     string          `json:"item_code"`
	Name         string          `json:"name"`
	SerialNumber string          `json:"serial_number,omitempty"`
	GoodsType    string          `json:"goods_type,omitempty"`
	Quantity     int64           `json:"quantity"`
	Unit         string          `json:"unit"`
	Condition    goods.Condition `json:"condition"`
	Value        money.Amount    `json:"value"`
	Location     Location        `json:"location"`
	Position     Place           `json:"position"`
}

// Package groups stock items under one package number.
type Package struct {
	PackageNumber string      `json:"package_number"`
	Description   string      `json:"description,omitempty"`
	Items         []StockItem `json:"items"`
}

// Registration is a goods submission (pengajuan) held in the warehouse.
type Registration struct {
	ID               string    `json:"id"`
	Number           string    `json:"number"`
	SubmissionDate   string    `json:"submission_date"`
	BCDocumentNumber string    `json:"bc_document_number"`
	BCDocumentDate   string    `json:"bc_document_date"`
	Title            string    `json:"title"`
	CustomerName     string    `json:"customer_name"`
	InspectionID     string    `json:"inspection_id,omitempty"`
	Packages         []Package `json:"packages"`
	Remarks          string    `json:"remarks,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// RegistrationInput carries a new registration.
type RegistrationInput struct {
	SubmissionDate   string    `json:"submission_date"`
	BCDocumentNumber string    `json:"bc_document_number"`
	BCDocumentDate   string    `json:"bc_document_date"`
	Title            string    `json:"title"`
	CustomerName     string    `json:"customer_name"`
	InspectionID     string    `json:"inspection_id"`
	Packages         []Package `json:"packages"`
	Remarks          string    `json:"remarks"`
}

// UpdateInput relocates every item and replaces the remarks.
type UpdateInput struct {
	Location Location `json:"location"`
	Remarks  string   `json:"remarks"`
}

// CreateRegistration validates input and assigns item ids.
func CreateRegistration(input RegistrationInput, now func() time.Time, idGenerator func() (string, error)) (Registration, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	at := now().UTC()
	submission, err := calendar.NormalizeDate(input.SubmissionDate, at)
	if err != nil {
		return Registration{}, apperrors.Invalid("submission_date", err.Error())
	}
	bcDate := strings.TrimSpace(input.BCDocumentDate)
	if bcDate != "" {
		if _, err := calendar.ParseDate(bcDate); err != nil {
			return Registration{}, apperrors.Invalid("bc_document_date", err.Error())
		}
	}
	if len(input.Packages) == 0 {
		return Registration{}, apperrors.Invalid("packages", "at least one package is required")
	}
	packages := make([]Package, len(input.Packages))
	for i, pkg := range input.Packages {
		pkg.PackageNumber = strings.TrimSpace(pkg.PackageNumber)
		if pkg.PackageNumber == "" {
			pkg.PackageNumber = fmt.Sprintf("PKG-%d", i+1)
		}
		pkg.Description = strings.TrimSpace(pkg.Description)
		if len(pkg.Items) == 0 {
			return Registration{}, apperrors.Invalid("packages.items", fmt.Sprintf("package %s has no items", pkg.PackageNumber))
		}
		items := make([]StockItem, len(pkg.Items))
		for j, item := range pkg.Items {
			normalized, err := normalizeStockItem(item)
			if err != nil {
				return Registration{}, err
			}
			if normalized.ID == "" {
				if normalized.ID, err = idGenerator(); err != nil {
					return Registration{}, fmt.Errorf("generate stock item id: %w", err)
				}
			}
			items[j] = normalized
		}
		pkg.Items = items
		packages[i] = pkg
	}
	regID, err := idGenerator()
	if err != nil {
		return Registration{}, fmt.Errorf("generate registration id: %w", err)
	}
	return Registration{
		ID:               regID,
		Number:           id.Number("REG", at, regID),
		SubmissionDate:   submission,
		BCDocumentNumber: strings.TrimSpace(input.BCDocumentNumber),
		BCDocumentDate:   bcDate,
		Title:            strings.TrimSpace(input.Title),
		CustomerName:     strings.TrimSpace(input.CustomerName),
		InspectionID:     strings.TrimSpace(input.InspectionID),
		Packages:         packages,
		Remarks:          strings.TrimSpace(input.Remarks),
		CreatedAt:        at,
		UpdatedAt:        at,
	}, nil
}

func normalizeStockItem(item StockItem) (StockItem, error) {
	item.ItemCode = strings.TrimSpace(item.ItemCode)
	item.Name = strings.TrimSpace(item.Name)
	item.SerialNumber = strings.TrimSpace(item.SerialNumber)
	item.GoodsType = strings.TrimSpace(item.GoodsType)
	item.Unit = strings.TrimSpace(item.Unit)
	if item.Name == "" {
		item.Name = item.GoodsType
	}
	if item.Name == "" {
		return StockItem{}, apperrors.Invalid("items.name", "item name is required")
	}
	if item.Quantity < 0 {
		return StockItem{}, apperrors.Invalid("items.quantity", "item quantity must not be negative")
	}
	if item.Value.IsNegative() {
		return StockItem{}, apperrors.Invalid("items.value", "item value must not be negative")
	}
	if item.Unit == "" {
		item.Unit = "pcs"
	}
	condition, err := goods.ParseCondition(string(item.Condition))
	if err != nil {
		return StockItem{}, err
	}
	item.Condition = condition
	if item.Position == "" {
		item.Position = PlaceGudang
	} else {
		p, err := ParsePlace(string(item.Position))
		if err != nil {
			return StockItem{}, err
		}
		item.Position = p
	}
	return item, nil
}

// UpdateRegistration sets the location of every item and replaces remarks.
func UpdateRegistration(reg Registration, input UpdateInput, now func() time.Time) Registration {
	if now == nil {
		now = time.Now
	}
	loc := Location{
		Room: strings.TrimSpace(input.Location.Room),
		Rack: strings.TrimSpace(input.Location.Rack),
		Slot: strings.TrimSpace(input.Location.Slot),
	}
	reg = reg.Clone()
	for i := range reg.Packages {
		for j := range reg.Packages[i].Items {
			reg.Packages[i].Items[j].Location = loc
		}
	}
	reg.Remarks = strings.TrimSpace(input.Remarks)
	reg.UpdatedAt = now().UTC()
	return reg
}

// Clone deep-copies packages so edits never alias the original.
func (r Registration) Clone() Registration {
	packages := make([]Package, len(r.Packages))
	for i, pkg := range r.Packages {
		pkg.Items = append([]StockItem(nil), pkg.Items...)
		packages[i] = pkg
	}
	r.Packages = packages
	return r
}

// TotalStock sums the current quantity of every item.
func (r Registration) TotalStock() int64 {
	var total int64
	for _, pkg := range r.Packages {
		for _, item := range pkg.Items {
			total += item.Quantity
		}
	}
	return total
}

// FindItem returns the package and item index of itemID.
func (r Registration) FindItem(itemID string) (pkgIdx, itemIdx int, ok bool) {
	for i, pkg := range r.Packages {
		for j, item := range pkg.Items {
			if item.ID == itemID {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}
