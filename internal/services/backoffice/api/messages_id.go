package api

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("id-ID")

	message.SetString(lang, "dashboard.title", "Back Office TPPB")
	message.SetString(lang, "dashboard.loading", "Memuat ringkasan...")
	message.SetString(lang, "dashboard.generated", "Dibuat %s")
	message.SetString(lang, "dashboard.operator", "Masuk sebagai %s")
	message.SetString(lang, "dashboard.section.pabean", "Pabean")
	message.SetString(lang, "dashboard.section.revenue", "Pendapatan")
	message.SetString(lang, "dashboard.section.warehouse", "Gudang")
	message.SetString(lang, "dashboard.section.approvals", "Persetujuan")
	message.SetString(lang, "dashboard.section.finance", "Keuangan")
	message.SetString(lang, "dashboard.inbound", "Barang masuk")
	message.SetString(lang, "dashboard.outbound", "Barang keluar")
	message.SetString(lang, "dashboard.reject", "Barang reject")
	message.SetString(lang, "dashboard.docs_pending", "Dokumen menunggu")
	message.SetString(lang, "dashboard.docs_approved", "Dokumen disetujui")
	message.SetString(lang, "dashboard.sales", "Pendapatan penjualan")
	message.SetString(lang, "dashboard.op_costs", "Biaya operasional")
	message.SetString(lang, "dashboard.net_profit", "Laba bersih")
	message.SetString(lang, "dashboard.margin", "Margin")
	message.SetString(lang, "dashboard.mutations_total", "Mutasi")
	message.SetString(lang, "dashboard.mutations_today", "Mutasi hari ini")
	message.SetString(lang, "dashboard.pending", "Menunggu")
	message.SetString(lang, "dashboard.approved", "Disetujui")
	message.SetString(lang, "dashboard.rejected", "Ditolak")
	message.SetString(lang, "dashboard.income", "Pemasukan")
	message.SetString(lang, "dashboard.expense", "Pengeluaran")
	message.SetString(lang, "dashboard.balance", "Saldo")
	message.SetString(lang, "dashboard.error", "Ringkasan tidak tersedia.")
}
