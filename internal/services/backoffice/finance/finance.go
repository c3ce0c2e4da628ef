// Package finance is the general income and expense ledger shared by every
// business line.
package finance

import (
	"fmt"
	"strings"
	"time"

	"github.com/tppb-bridge/backoffice/internal/platform/calendar"
	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/id"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
)

// Type is the ledger direction.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Categories lists the accepted entry categories.
var Categories = []string{"Sales", "Service", "Equipment", "Operational", "Marketing", "Other"}

// Business lines.
const (
	ModuleGeneral = "general"
	ModuleBlink   = "blink"
	ModuleBridge  = "bridge"
	ModuleBig     = "big"
)

var modules = []string{ModuleGeneral, ModuleBlink, ModuleBridge, ModuleBig}

// Entry is one income or expense.
type Entry struct {
	ID          string       `json:"id"`
	Type        Type         `json:"type"`
	Category    string       `json:"category"`
	Amount      money.Amount `json:"amount"`
	Description string       `json:"description"`
	Module      string       `json:"module"`
	Date        string       `json:"date"`
	Reference   string       `json:"reference,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Input carries editable entry fields.
type Input struct {
	Type        Type         `json:"type"`
	Category    string       `json:"category"`
	Amount      money.Amount `json:"amount"`
	Description string       `json:"description"`
	Module      string       `json:"module"`
	Date        string       `json:"date"`
	Reference   string       `json:"reference"`
}

// NormalizeInput validates input; blank module means general and a blank
// date means today.
func NormalizeInput(input Input, now time.Time) (Input, error) {
	switch Type(strings.ToLower(strings.TrimSpace(string(input.Type)))) {
	case TypeIncome:
		input.Type = TypeIncome
	case TypeExpense:
		input.Type = TypeExpense
	default:
		return Input{}, apperrors.Invalid("type", fmt.Sprintf("type %q must be income or expense", input.Type))
	}
	category, ok := match(Categories, input.Category)
	if !ok {
		return Input{}, apperrors.Invalid("category", fmt.Sprintf("category %q is invalid", input.Category))
	}
	input.Category = category
	if !input.Amount.IsPositive() {
		return Input{}, apperrors.Invalid("amount", "amount must be greater than zero")
	}
	if strings.TrimSpace(input.Module) == "" {
		input.Module = ModuleGeneral
	}
	module, ok := match(modules, input.Module)
	if !ok {
		return Input{}, apperrors.Invalid("module", fmt.Sprintf("module %q is invalid", input.Module))
	}
	input.Module = module
	date, err := calendar.NormalizeDate(input.Date, now)
	if err != nil {
		return Input{}, apperrors.Invalid("date", err.Error())
	}
	input.Date = date
	input.Description = strings.TrimSpace(input.Description)
	input.Reference = strings.TrimSpace(input.Reference)
	return input, nil
}

func match(options []string, value string) (string, bool) {
	value = strings.TrimSpace(value)
	for _, o := range options {
		if strings.EqualFold(o, value) {
			return o, true
		}
	}
	return "", false
}

// Create builds a new entry.
func Create(input Input, now func() time.Time, idGenerator func() (string, error)) (Entry, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	at := now().UTC()
	n, err := NormalizeInput(input, at)
	if err != nil {
		return Entry{}, err
	}
	entryID, err := idGenerator()
	if err != nil {
		return Entry{}, fmt.Errorf("generate finance id: %w", err)
	}
	return Entry{
		ID:          entryID,
		Type:        n.Type,
		Category:    n.Category,
		Amount:      n.Amount,
		Description: n.Description,
		Module:      n.Module,
		Date:        n.Date,
		Reference:   n.Reference,
		CreatedAt:   at,
		UpdatedAt:   at,
	}, nil
}

// Update applies input to an existing entry.
func Update(existing Entry, input Input, now func() time.Time) (Entry, error) {
	if now == nil {
		now = time.Now
	}
	at := now().UTC()
	n, err := NormalizeInput(input, at)
	if err != nil {
		return Entry{}, err
	}
	existing.Type = n.Type
	existing.Category = n.Category
	existing.Amount = n.Amount
	existing.Description = n.Description
	existing.Module = n.Module
	existing.Date = n.Date
	existing.Reference = n.Reference
	existing.UpdatedAt = at
	return existing, nil
}

// InputFrom returns the editable fields of e.
func InputFrom(e Entry) Input {
	return Input{
		Type:        e.Type,
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
		Module:      e.Module,
		Date:        e.Date,
		Reference:   e.Reference,
	}
}

// Summary totals the ledger.
type Summary struct {
	TotalIncome  money.Amount `json:"total_income"`
	TotalExpense money.Amount `json:"total_expense"`
	Balance      money.Amount `json:"balance"`
}

// Summarize totals income and expense.
func Summarize(entries []Entry) Summary {
	income, expense := money.Zero(), money.Zero()
	for _, e := range entries {
		switch e.Type {
		case TypeIncome:
			income = income.Add(e.Amount)
		case TypeExpense:
			expense = expense.Add(e.Amount)
		}
	}
	return Summary{TotalIncome: income, TotalExpense: expense, Balance: income.Sub(expense)}
}
