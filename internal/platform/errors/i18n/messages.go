package i18n

var enUSMessages = map[Code]string{
	"UNKNOWN":                         "Something went wrong. Please try again.",
	"INVALID_ARGUMENT":                "{{if .Field}}Invalid value for {{.Field}}.{{else}}The request is invalid.{{end}}",
	"INVALID_FILTER":                  "The filter expression could not be understood.",
	"UNAUTHENTICATED":                 "Please sign in to continue.",
	"NOT_FOUND":                       "{{if .Entity}}The {{.Entity}} was not found.{{else}}The record was not found.{{end}}",
	"ALREADY_EXISTS":                  "{{if .Entity}}That {{.Entity}} already exists.{{else}}The record already exists.{{end}}",
	"BC_DOCUMENT_NOT_PENDING":         "BC document {{.Number}} has already been processed.",
	"BC_APPROVER_REQUIRED":            "An approver name is required.",
	"BC_REJECT_REASON_REQUIRED":       "A rejection reason is required.",
	"QUOTATION_NOT_DRAFT":             "Quotation {{.Number}} is no longer a draft.",
	"QUOTATION_DISCOUNT_OUT_OF_RANGE": "The discount is outside the allowed range.",
	"QUOTATION_TAX_RATE_OUT_OF_RANGE": "The tax rate must be between 0 and 100.",
	"QUOTATION_ITEMS_REQUIRED":        "Add at least one item.",
	"QUOTATION_ITEM_QUANTITY_INVALID": "Item quantities must be greater than zero.",
	"QUOTATION_CUSTOMER_REQUIRED":     "Select a customer.",
	"STOCK_INSUFFICIENT":              "Quantity exceeds the available stock ({{.Available}}).",
	"MOVEMENT_QUANTITY_INVALID":       "Quantity must be greater than zero.",
	"MOVEMENT_PIC_REQUIRED":           "A person in charge is required.",
	"MUTATION_BATCH_EMPTY":            "Add at least one mutation.",
	"MOVEMENT_ALREADY_STORED":         "These goods have already been inspected.",
	"INSPECTOR_REQUIRED":              "An inspector name is required.",
	"APPROVAL_NOT_PENDING":            "This request has already been reviewed.",
	"APPROVAL_REASON_REQUIRED":        "A rejection reason is required.",
	"INVOICE_ALREADY_PAID":            "Invoice {{.Number}} is already paid.",
	"EXPORT_NO_DATA":                  "There is no data to export.",
	"STORAGE_BUSY":                    "The database is busy. Please try again.",
}

var idIDMessages = map[Code]string{
	"UNKNOWN":                         "Terjadi kesalahan. Silakan coba lagi.",
	"INVALID_ARGUMENT":                "{{if .Field}}Nilai {{.Field}} tidak valid.{{else}}Permintaan tidak valid.{{end}}",
	"INVALID_FILTER":                  "Ekspresi filter tidak dapat dipahami.",
	"UNAUTHENTICATED":                 "Silakan masuk terlebih dahulu.",
	"NOT_FOUND":                       "{{if .Entity}}Data {{.Entity}} tidak ditemukan.{{else}}Data tidak ditemukan.{{end}}",
	"ALREADY_EXISTS":                  "{{if .Entity}}Data {{.Entity}} sudah ada.{{else}}Data sudah ada.{{end}}",
	"BC_DOCUMENT_NOT_PENDING":         "Dokumen BC {{.Number}} sudah diproses.",
	"BC_APPROVER_REQUIRED":            "Nama penyetuju wajib diisi.",
	"BC_REJECT_REASON_REQUIRED":       "Alasan penolakan wajib diisi.",
	"QUOTATION_NOT_DRAFT":             "Quotation {{.Number}} bukan lagi draft.",
	"QUOTATION_DISCOUNT_OUT_OF_RANGE": "Diskon di luar batas yang diizinkan.",
	"QUOTATION_TAX_RATE_OUT_OF_RANGE": "Tarif pajak harus antara 0 dan 100.",
	"QUOTATION_ITEMS_REQUIRED":        "Tambahkan minimal satu barang.",
	"QUOTATION_ITEM_QUANTITY_INVALID": "Jumlah barang harus lebih dari nol.",
	"QUOTATION_CUSTOMER_REQUIRED":     "Pilih customer.",
	"STOCK_INSUFFICIENT":              "Jumlah melebihi stok tersedia ({{.Available}}).",
	"MOVEMENT_QUANTITY_INVALID":       "Jumlah harus lebih dari nol.",
	"MOVEMENT_PIC_REQUIRED":           "PIC wajib diisi.",
	"MUTATION_BATCH_EMPTY":            "Tambahkan minimal satu mutasi.",
	"MOVEMENT_ALREADY_STORED":         "Barang ini sudah diperiksa.",
	"INSPECTOR_REQUIRED":              "Nama pemeriksa wajib diisi.",
	"APPROVAL_NOT_PENDING":            "Permintaan ini sudah ditinjau.",
	"APPROVAL_REASON_REQUIRED":        "Alasan penolakan wajib diisi.",
	"INVOICE_ALREADY_PAID":            "Invoice {{.Number}} sudah dibayar.",
	"EXPORT_NO_DATA":                  "Tidak ada data untuk diekspor.",
	"STORAGE_BUSY":                    "Database sedang sibuk. Silakan coba lagi.",
}
