package api

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	message.SetString(lang, "dashboard.title", "TPPB Back Office")
	message.SetString(lang, "dashboard.loading", "Loading summary...")
	message.SetString(lang, "dashboard.generated", "Generated %s")
	message.SetString(lang, "dashboard.operator", "Signed in as %s")
	message.SetString(lang, "dashboard.section.pabean", "Customs")
	message.SetString(lang, "dashboard.section.revenue", "Revenue")
	message.SetString(lang, "dashboard.section.warehouse", "Warehouse")
	message.SetString(lang, "dashboard.section.approvals", "Approvals")
	message.SetString(lang, "dashboard.section.finance", "Finance")
	message.SetString(lang, "dashboard.inbound", "Inbound")
	message.SetString(lang, "dashboard.outbound", "Outbound")
	message.SetString(lang, "dashboard.reject", "Rejected goods")
	message.SetString(lang, "dashboard.docs_pending", "Documents pending")
	message.SetString(lang, "dashboard.docs_approved", "Documents approved")
	message.SetString(lang, "dashboard.sales", "Sales revenue")
	message.SetString(lang, "dashboard.op_costs", "Operational costs")
	message.SetString(lang, "dashboard.net_profit", "Net profit")
	message.SetString(lang, "dashboard.margin", "Margin")
	message.SetString(lang, "dashboard.mutations_total", "Mutations")
	message.SetString(lang, "dashboard.mutations_today", "Mutations today")
	message.SetString(lang, "dashboard.pending", "Pending")
	message.SetString(lang, "dashboard.approved", "Approved")
	message.SetString(lang, "dashboard.rejected", "Rejected")
	message.SetString(lang, "dashboard.income", "Income")
	message.SetString(lang, "dashboard.expense", "Expense")
	message.SetString(lang, "dashboard.balance", "Balance")
	message.SetString(lang, "dashboard.error", "The summary is unavailable.")
}
