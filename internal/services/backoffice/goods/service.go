package goods

import (
	"fmt"
	"strings"

	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
)

// ServiceType names a service breakdown line.
type ServiceType string

const (
	ServiceHandling          ServiceType = "handling"
	ServiceStorage           ServiceType = "storage"
	ServiceCustomsProcessing ServiceType = "customsProcessing"
	ServiceTransportation    ServiceType = "transportation"
	ServiceInsurance         ServiceType = "insurance"
	ServiceDocumentation     ServiceType = "documentation"
	ServiceOther             ServiceType = "other"
)

var defaultDescriptions = map[ServiceType]string{
	ServiceHandling:          "Loading/Unloading",
	ServiceStorage:           "Warehouse Storage",
	ServiceCustomsProcessing: "Proses Pabean",
	ServiceTransportation:    "Transportation",
	ServiceInsurance:         "Cargo Insurance",
	ServiceDocumentation:     "Admin & Documentation",
	ServiceOther:             "Other Services",
}

// ServiceLine is one priced service. Storage is billed per day; every other
// type is billed per unit.
type ServiceLine struct {
	Type        ServiceType  `json:"type"`
	Description string       `json:"description"`
	Quantity    int64        `json:"quantity,omitempty"`
	UnitPrice   money.Amount `json:"unit_price"`
	Days        int64        `json:"days,omitempty"`
	DailyRate   money.Amount `json:"daily_rate"`
}

// Total returns the line amount.
func (l ServiceLine) Total() money.Amount {
	if l.Type == ServiceStorage {
		return l.DailyRate.Mul(money.FromInt(l.Days))
	}
	return l.UnitPrice.Mul(money.FromInt(l.Quantity))
}

// NormalizeServices validates service lines. Lines with a zero total are
// dropped so an untouched breakdown stores nothing.
func NormalizeServices(lines []ServiceLine) ([]ServiceLine, error) {
	out := make([]ServiceLine, 0, len(lines))
	for _, line := range lines {
		line.Type = ServiceType(strings.TrimSpace(string(line.Type)))
		desc, ok := defaultDescriptions[line.Type]
		if !ok {
			return nil, apperrors.Invalid("services.type", fmt.Sprintf("service type %q is invalid", line.Type))
		}
		line.Description = strings.TrimSpace(line.Description)
		if line.Description == "" {
			line.Description = desc
		}
		if line.Quantity < 0 || line.Days < 0 || line.UnitPrice.IsNegative() || line.DailyRate.IsNegative() {
			return nil, apperrors.Invalid("services", "service amounts must not be negative")
		}
		if line.Total().IsZero() {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

// ServicesTotal sums service line totals.
func ServicesTotal(lines []ServiceLine) money.Amount {
	total := money.Zero()
	for _, line := range lines {
		total = total.Add(line.Total())
	}
	return total
}
