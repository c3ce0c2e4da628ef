package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tppb-bridge/backoffice/internal/platform/i18n"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
	"github.com/tppb-bridge/backoffice/internal/platform/requestctx"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/activity"
	routepath "github.com/tppb-bridge/backoffice/internal/services/backoffice/api/routepath"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/reports"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

// dashboardView is what the summary partial renders.
type dashboardView struct {
	Dashboard reports.Dashboard
	Failed    bool
	Tag       language.Tag
	Printer   *message.Printer
}

// HandleDashboard renders the dashboard shell; HTMX loads its content.
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if isHTMXRequest(r) {
		h.HandleDashboardContent(w, r)
		return
	}
	tag, _ := i18n.ResolveTag(r)
	operator := requestctx.OperatorName(r.Context(), activity.DefaultUser)
	query := ""
	if period := r.URL.Query().Get("period"); period != "" {
		query = "?" + url.Values{"period": {period}}.Encode()
	}
	templ.Handler(dashboardPage(i18n.Printer(tag), tag, operator, routepath.DashboardContent+query)).ServeHTTP(w, r)
}

// HandleDashboardContent renders the summary partial for ?period=.
func (h *Handler) HandleDashboardContent(w http.ResponseWriter, r *http.Request) {
	tag, _ := i18n.ResolveTag(r)
	view := dashboardView{Tag: tag, Printer: i18n.Printer(tag)}
	period, err := periodParam(r)
	if err == nil {
		view.Dashboard, err = h.svc.Dashboard(r.Context(), period)
	}
	if err != nil {
		h.logger.Warn("dashboard content", zap.Error(err))
		view.Failed = true
	}
	templ.Handler(dashboardContent(view)).ServeHTTP(w, r)
}

// isHTMXRequest reports whether the request originated from HTMX.
func isHTMXRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("HX-Request"), "true")
}

func dashboardPage(p *message.Printer, tag language.Tag, operator, contentURL string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		base, _ := tag.Base()
		title := templ.EscapeString(p.Sprintf("dashboard.title"))
		_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="%s">
<head>
<meta charset="utf-8">
<title>%s</title>
<script src="%s"></script>
</head>
<body>
<header><h1>%s</h1><p>%s</p></header>
<main id="dashboard" hx-get="%s" hx-trigger="load">%s</main>
</body>
</html>
`,
			templ.EscapeString(base.String()),
			title,
			htmxScript,
			title,
			templ.EscapeString(p.Sprintf("dashboard.operator", operator)),
			templ.EscapeString(contentURL),
			templ.EscapeString(p.Sprintf("dashboard.loading")),
		)
		return err
	})
}

type stat struct {
	label string
	value string
}

func dashboardContent(view dashboardView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := view.Printer
		if view.Failed {
			_, err := fmt.Fprintf(w, "<p class=\"error\">%s</p>\n", templ.EscapeString(p.Sprintf("dashboard.error")))
			return err
		}
		d := view.Dashboard
		amount := func(a money.Amount) string { return money.FormatRupiah(view.Tag, a) }
		count := func(n int) string { return p.Sprintf("%d", n) }
		sections := []struct {
			title string
			stats []stat
		}{
			{p.Sprintf("dashboard.section.pabean"), []stat{
				{p.Sprintf("dashboard.inbound"), count(d.Pabean.TotalInbound)},
				{p.Sprintf("dashboard.outbound"), count(d.Pabean.TotalOutbound)},
				{p.Sprintf("dashboard.reject"), count(d.Pabean.TotalReject)},
				{p.Sprintf("dashboard.docs_pending"), count(d.Pabean.DocsPending)},
				{p.Sprintf("dashboard.docs_approved"), count(d.Pabean.DocsApproved)},
			}},
			{p.Sprintf("dashboard.section.revenue"), []stat{
				{p.Sprintf("dashboard.sales"), amount(d.Revenue.SalesRevenue)},
				{p.Sprintf("dashboard.op_costs"), amount(d.Revenue.OperationalCosts)},
				{p.Sprintf("dashboard.net_profit"), amount(d.Revenue.NetProfit)},
				{p.Sprintf("dashboard.margin"), d.Revenue.ProfitMargin.StringFixed(2) + "%"},
			}},
			{p.Sprintf("dashboard.section.warehouse"), []stat{
				{p.Sprintf("dashboard.mutations_total"), count(d.Warehouse.TotalMutations)},
				{p.Sprintf("dashboard.mutations_today"), count(d.Warehouse.MutationsToday)},
			}},
			{p.Sprintf("dashboard.section.approvals"), []stat{
				{p.Sprintf("dashboard.pending"), count(d.Approvals.Pending)},
				{p.Sprintf("dashboard.approved"), count(d.Approvals.Approved)},
				{p.Sprintf("dashboard.rejected"), count(d.Approvals.Rejected)},
			}},
			{p.Sprintf("dashboard.section.finance"), []stat{
				{p.Sprintf("dashboard.income"), amount(d.Finance.TotalIncome)},
				{p.Sprintf("dashboard.expense"), amount(d.Finance.TotalExpense)},
				{p.Sprintf("dashboard.balance"), amount(d.Finance.Balance)},
			}},
		}
		var b strings.Builder
		for _, section := range sections {
			fmt.Fprintf(&b, "<section>\n<h2>%s</h2>\n<dl>\n", templ.EscapeString(section.title))
			for _, s := range section.stats {
				fmt.Fprintf(&b, "<dt>%s</dt><dd>%s</dd>\n", templ.EscapeString(s.label), templ.EscapeString(s.value))
			}
			b.WriteString("</dl>\n</section>\n")
		}
		fmt.Fprintf(&b, "<footer>%s</footer>\n", templ.EscapeString(p.Sprintf("dashboard.generated", d.GeneratedAt.Format("2006-01-02 15:04 MST"))))
		_, err := io.WriteString(w, b.String())
		return err
	})
}
