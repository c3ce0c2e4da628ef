package transaction

import (
	"sort"

	"github.com/tppb-bridge/backoffice/internal/platform/calendar"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/customs"
)

// LineType is the ledger movement kind.
type LineType string

const (
	LineIn    LineType = "IN"
	LineOut   LineType = "OUT"
	LineBroke LineType = "BROKE"
)

// LedgerLine is one signed item movement: IN positive, OUT and BROKE negative.
type LedgerLine struct {
	Date          string   `json:"date"`
	Type          LineType `json:"type"`
	BCDocNumber   string   `json:"bc_doc_number"`
	BCDocDate     string   `json:"bc_doc_date"`
	GoodsType     string   `json:"goods_type"`
	PackageNumber string   `json:"package_number,omitempty"`
	SerialNumber  string   `json:"serial_number,omitempty"`
	Quantity      int64    `json:"quantity"`
	Unit          string   `json:"unit"`
	Condition     string   `json:"condition,omitempty"`
	Officer       string   `json:"officer"`
	Status        string   `json:"status"`
	Party         string   `json:"party"`
}

// Position is the net stock of one goods type.
type Position struct {
	GoodsType    string `json:"goods_type"`
	Unit         string `json:"unit"`
	TotalIn      int64  `json:"total_in"`
	TotalOut     int64  `json:"total_out"`
	Broke        int64  `json:"broke"`
	CurrentStock int64  `json:"current_stock"`
}

// LedgerQuery narrows the ledger; blank fields match everything.
type LedgerQuery struct {
	From      string
	To        string
	GoodsType string
}

// Ledger is the customs monitoring view.
type Ledger struct {
	Lines      []LedgerLine `json:"lines"`
	Positions  []Position   `json:"positions"`
	GoodsTypes []string     `json:"goods_types"`
	TotalIn    int64        `json:"total_in"`
	TotalOut   int64        `json:"total_out"`
	TotalBroke int64        `json:"total_broke"`
	TotalStock int64        `json:"total_stock"`
}

// BuildLedger flattens transactions and reject records into signed lines and
// nets them per goods type. GoodsTypes lists every type seen before the
// goods-type filter so callers can offer it as a choice.
func BuildLedger(txs []Transaction, rejects []RejectRecord, q LedgerQuery) Ledger {
	var all []LedgerLine
	for _, tx := range txs {
		kind, sign := LineIn, int64(1)
		if tx.Direction == customs.DirectionOutbound {
			kind, sign = LineOut, -1
		}
		for _, item := range tx.Items {
			goodsType := item.GoodsType
			if goodsType == "" {
				goodsType = item.Name
			}
			all = append(all, LedgerLine{
				Date:          tx.Date,
				Type:          kind,
				BCDocNumber:   tx.DocNumber(),
				BCDocDate:     tx.BCDocDate,
				GoodsType:     goodsType,
				PackageNumber: item.PackageNumber,
				SerialNumber:  item.SerialNumber,
				Quantity:      sign * item.Quantity,
				Unit:          item.Unit,
				Condition:     string(item.Condition),
				Officer:       tx.Officer,
				Status:        string(tx.Status),
				Party:         tx.Party,
			})
		}
	}
	for _, r := range rejects {
		all = append(all, LedgerLine{
			Date:        r.Date,
			Type:        LineBroke,
			BCDocNumber: r.CustomsDocNumber,
			BCDocDate:   r.CustomsDocDate,
			GoodsType:   r.GoodsType,
			Quantity:    -r.Quantity,
			Unit:        r.Unit,
			Status:      r.Reason,
		})
	}

	seen := map[string]bool{}
	ledger := Ledger{}
	positions := map[string]*Position{}
	var order []string
	for _, line := range all {
		if !calendar.InRange(line.Date, q.From, q.To) {
			continue
		}
		if !seen[line.GoodsType] {
			seen[line.GoodsType] = true
			ledger.GoodsTypes = append(ledger.GoodsTypes, line.GoodsType)
		}
		if q.GoodsType != "" && line.GoodsType != q.GoodsType {
			continue
		}
		ledger.Lines = append(ledger.Lines, line)
		pos, ok := positions[line.GoodsType]
		if !ok {
			pos = &Position{GoodsType: line.GoodsType, Unit: line.Unit}
			positions[line.GoodsType] = pos
			order = append(order, line.GoodsType)
		}
		switch line.Type {
		case LineIn:
			pos.TotalIn += line.Quantity
			ledger.TotalIn += line.Quantity
		case LineOut:
			pos.TotalOut -= line.Quantity
			ledger.TotalOut -= line.Quantity
		case LineBroke:
			pos.Broke -= line.Quantity
			ledger.TotalBroke -= line.Quantity
		}
		pos.CurrentStock += line.Quantity
		ledger.TotalStock += line.Quantity
	}
	sort.SliceStable(ledger.Lines, func(i, j int) bool { return ledger.Lines[i].Date > ledger.Lines[j].Date })
	for _, name := range order {
		ledger.Positions = append(ledger.Positions, *positions[name])
	}
	sort.Strings(ledger.GoodsTypes)
	return ledger
}
