// Package transaction records customs clearances of goods entering
// (barang masuk) and leaving (barang keluar) the bonded zone, their service
// invoices, reject records and the customs monitoring ledger.
package transaction

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
)

// ServiceTaxRate is the VAT percentage charged on services.
const ServiceTaxRate = 11

// Status is the customs clearance state.
type Status string

const (
	StatusPending Status = "pending"
	StatusCleared Status = "cleared"
	StatusHold    Status = "hold"
)

// DirectCosts are the operator's own costs of handling a transaction.
type DirectCosts struct {
	Labor            money.Amount `json:"labor"`
	WarehouseOp      money.Amount `json:"warehouse_op"`
	Equipment        money.Amount `json:"equipment"`
	Utilities        money.Amount `json:"utilities"`
	ExternalServices money.Amount `json:"external_services"`
	Other            money.Amount `json:"other"`
}

// Total sums every cost component.
func (c DirectCosts) Total() money.Amount {
	return money.Sum(c.Labor, c.WarehouseOp, c.Equipment, c.Utilities, c.ExternalServices, c.Other)
}

func (c DirectCosts) validate() error {
	for _, v := range []money.Amount{c.Labor, c.WarehouseOp, c.Equipment, c.Utilities, c.ExternalServices, c.Other} {
		if v.IsNegative() {
			return apperrors.Invalid("direct_costs", "direct costs must not be negative")
		}
	}
	return nil
}

// Totals are the computed money figures of a transaction.
type Totals struct {
	Value             money.Amount `json:"value"`
	ServiceSubtotal   money.Amount `json:"service_subtotal"`
	ServiceTax        money.Amount `json:"service_tax"`
	ServiceGrandTotal money.Amount `json:"service_grand_total"`
	TotalDirectCosts  money.Amount `json:"total_direct_costs"`
	GrossProfit       money.Amount `json:"gross_profit"`
	ProfitMargin      money.Amount `json:"profit_margin"`
}

// Compute derives totals from items, services and direct costs.
func Compute(items []goods.Item, services []goods.ServiceLine, costs DirectCosts) Totals {
	subtotal := goods.ServicesTotal(services)
	tax := money.Percent(subtotal, money.FromInt(ServiceTaxRate))
	grand := subtotal.Add(tax)
	direct := costs.Total()
	gross := grand.Sub(direct)
	return Totals{
		Value:             goods.TotalValue(items),
		ServiceSubtotal:   subtotal,
		ServiceTax:        tax,
		ServiceGrandTotal: grand,
		TotalDirectCosts:  direct,
		GrossProfit:       gross,
		ProfitMargin:      money.Ratio(gross, grand).Round(2),
	}
}

// Transaction is one customs clearance. Party is the supplier for inbound
// and the recipient for outbound; Place is the origin or destination.
type Transaction struct {
	ID          string              `json:"id"`
	Number      string              `json:"number"`
	Direction   customs.Direction   `json:"direction"`
	Date        string              `json:"date"`
	BCDocNumber string              `json:"bc_doc_number"`
	BCDocDate   string              `json:"bc_doc_date"`
	Party       string              `json:"party"`
	Place       string              `json:"place"`
	Officer     string              `json:"officer"`
	Status      Status              `json:"status"`
	Items       []goods.Item        `json:"items"`
	Services    []goods.ServiceLine `json:"services"`
	DirectCosts DirectCosts         `json:"direct_costs"`
	Totals      Totals              `json:"totals"`
	Notes       string              `json:"notes,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// Input carries transaction fields.
type Input struct {
	Direction   customs.Direction   `json:"direction"`
	Date        string              `json:"date"`
	BCDocNumber string              `json:"bc_doc_number"`
	BCDocDate   string              `json:"bc_doc_date"`
	Party       string              `json:"party"`
	Place       string              `json:"place"`
	Officer     string              `json:"officer"`
	Status      Status              `json:"status"`
	Items       []goods.Item        `json:"items"`
	Services    []goods.ServiceLine `json:"services"`
	DirectCosts DirectCosts         `json:"direct_costs"`
	Notes       string              `json:"notes"`
}

func normalize(input Input, now time.Time) (Input, error) {
	direction, err := customs.ParseDirection(string(input.Direction))
	if err != nil {
		return Input{}, err
	}
	input.Direction = direction
	if input.Date, err = calendar.NormalizeDate(input.Date, now); err != nil {
		return Input{}, apperrors.Invalid("date", err.Error())
	}
	input.BCDocDate = strings.TrimSpace(input.BCDocDate)
	if input.BCDocDate == "" {
		input.BCDocDate = input.Date
	} else if _, err := calendar.ParseDate(input.BCDocDate); err != nil {
		return Input{}, apperrors.Invalid("bc_doc_date", err.Error())
	}
	switch Status(strings.ToLower(strings.TrimSpace(string(input.Status)))) {
	case "", StatusPending:
		input.Status = StatusPending
	case StatusCleared:
		input.Status = StatusCleared
	case StatusHold:
		input.Status = StatusHold
	default:
		return Input{}, apperrors.Invalid("status", fmt.Sprintf("status %q is invalid", input.Status))
	}
	if input.Items, err = goods.NormalizeItems(input.Items); err != nil {
		return Input{}, err
	}
	if input.Services, err = goods.NormalizeServices(input.Services); err != nil {
		return Input{}, err
	}
	if err := input.DirectCosts.validate(); err != nil {
		return Input{}, err
	}
	input.BCDocNumber = strings.TrimSpace(input.BCDocNumber)
	input.Party = strings.TrimSpace(input.Party)
	input.Place = strings.TrimSpace(input.Place)
	input.Officer = strings.TrimSpace(input.Officer)
	input.Notes = strings.TrimSpace(input.Notes)
	return input, nil
}

func numberPrefix(direction customs.Direction) string {
	if direction == customs.DirectionOutbound {
		return "OUT"
	}
	return "IN"
}

// Create validates input and computes totals for a new transaction.
func Create(input Input, now func() time.Time, idGenerator func() (string, error)) (Transaction, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	at := now().UTC()
	n, err := normalize(input, at)
	if err != nil {
		return Transaction{}, err
	}
	txID, err := idGenerator()
	if err != nil {
		return Transaction{}, fmt.Errorf("generate transaction id: %w", err)
	}
	tx := Transaction{ID: txID, Number: id.Number(numberPrefix(n.Direction), at, txID), CreatedAt: at}
	apply(&tx, n, at)
	return tx, nil
}

// Update replaces the editable fields; the direction is fixed at creation.
func Update(existing Transaction, input Input, now func() time.Time) (Transaction, error) {
	if now == nil {
		now = time.Now
	}
	input.Direction = existing.Direction
	at := now().UTC()
	n, err := normalize(input, at)
	if err != nil {
		return Transaction{}, err
	}
	apply(&existing, n, at)
	return existing, nil
}

func apply(tx *Transaction, n Input, at time.Time) {
	tx.Direction = n.Direction
	tx.Date = n.Date
	tx.BCDocNumber = n.BCDocNumber
	tx.BCDocDate = n.BCDocDate
	tx.Party = n.Party
	tx.Place = n.Place
	tx.Officer = n.Officer
	tx.Status = n.Status
	tx.Items = n.Items
	tx.Services = n.Services
	tx.DirectCosts = n.DirectCosts
	tx.Notes = n.Notes
	tx.Totals = Compute(n.Items, n.Services, n.DirectCosts)
	tx.UpdatedAt = at
}

// DocNumber returns the BC number, falling back to the transaction number.
func (t Transaction) DocNumber() string {
	if t.BCDocNumber != "" {
		return t.BCDocNumber
	}
	return t.Number
}
