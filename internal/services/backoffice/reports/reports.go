// Package reports derives the read-only dashboards: customs (pabean) counts,
// revenue analysis and the combined back-office overview.
package reports

import (
	"time"

	"github.com/tppb-bridge/backoffice/internal/platform/calendar"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/customs"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/quotation"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/transaction"
)

// Pabean counts customs transactions and quotation document states.
type Pabean struct {
	TotalInbound  int `json:"total_inbound"`
	TotalOutbound int `json:"total_outbound"`
	TotalReject   int `json:"total_reject"`
	DocsPending   int `json:"docs_pending"`
	DocsApproved  int `json:"docs_approved"`
	DocsRejected  int `json:"docs_rejected"`
	DocsTotal     int `json:"docs_total"`
}

// BuildPabean counts txs, rejects and quotations. Draft quotations count as
// pending and confirmed ones as approved.
func BuildPabean(txs []transaction.Transaction, rejects []transaction.RejectRecord, quotes []quotation.Quotation) Pabean {
	p := Pabean{TotalReject: len(rejects), DocsTotal: len(quotes)}
	for _, tx := range txs {
		if tx.Direction == customs.DirectionOutbound {
			p.TotalOutbound++
		} else {
			p.TotalInbound++
		}
	}
	for _, q := range quotes {
		switch q.Status {
		case quotation.StatusDraft:
			p.DocsPending++
		case quotation.StatusConfirmed:
			p.DocsApproved++
		case quotation.StatusRejected:
			p.DocsRejected++
		}
	}
	return p
}

// Revenue is the profitability of customs transactions over a period.
// Cost of goods sold is not tracked, so gross profit equals sales revenue.
type Revenue struct {
	Period           calendar.Period `json:"period"`
	From             string          `json:"from,omitempty"`
	To               string          `json:"to,omitempty"`
	SalesRevenue     money.Amount    `json:"sales_revenue"`
	InboundCost      money.Amount    `json:"inbound_cost"`
	InboundOpCosts   money.Amount    `json:"inbound_op_costs"`
	OutboundOpCosts  money.Amount    `json:"outbound_op_costs"`
	OperationalCosts money.Amount    `json:"operational_costs"`
	GrossProfit      money.Amount    `json:"gross_profit"`
	NetProfit        money.Amount    `json:"net_profit"`
	ProfitMargin     money.Amount    `json:"profit_margin"`
	InboundCount     int             `json:"inbound_count"`
	OutboundCount    int             `json:"outbound_count"`
	TransactionCount int             `json:"transaction_count"`
	AverageValue     money.Amount    `json:"average_value"`
}

// AnalyzeRevenue sums transactions dated within the period containing now.
func AnalyzeRevenue(txs []transaction.Transaction, period calendar.Period, now time.Time) Revenue {
	from, to := period.Bounds(now)
	r := Revenue{
		Period:          period,
		From:            from,
		To:              to,
		SalesRevenue:    money.Zero(),
		InboundCost:     money.Zero(),
		InboundOpCosts:  money.Zero(),
		OutboundOpCosts: money.Zero(),
	}
	for _, tx := range txs {
		if !calendar.InRange(tx.Date, from, to) {
			continue
		}
		if tx.Direction == customs.DirectionOutbound {
			r.OutboundCount++
			r.SalesRevenue = r.SalesRevenue.Add(tx.Totals.Value)
			r.OutboundOpCosts = r.OutboundOpCosts.Add(tx.Totals.TotalDirectCosts)
		} else {
			r.InboundCount++
			r.InboundCost = r.InboundCost.Add(tx.Totals.Value)
			r.InboundOpCosts = r.InboundOpCosts.Add(tx.Totals.TotalDirectCosts)
		}
	}
	r.TransactionCount = r.InboundCount + r.OutboundCount
	r.OperationalCosts = r.InboundOpCosts.Add(r.OutboundOpCosts)
	r.GrossProfit = r.SalesRevenue
	r.NetProfit = r.GrossProfit.Sub(r.OperationalCosts)
	r.ProfitMargin = money.Ratio(r.NetProfit, r.SalesRevenue).Round(2)
	r.AverageValue = money.Zero()
	if r.TransactionCount > 0 {
		r.AverageValue = r.SalesRevenue.Add(r.InboundCost).Div(money.FromInt(int64(r.TransactionCount))).Round(0)
	}
	return r
}
