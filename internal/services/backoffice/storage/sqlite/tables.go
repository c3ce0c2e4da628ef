package sqlite

import (
	"github.com/tppb-bridge/backoffice/internal/platform/filter"
)

func str(name string) filter.Field { return filter.Field{Name: name, Column: name, Type: filter.String} }

var createdAt = filter.Field{Name: "created_at", Column: "created_at", Type: filter.Timestamp}

var (
	customersTable = table{
		name:    "customers",
		columns: []string{"name", "company", "email", "status", "created_at"},
		search:  []string{"name", "company", "email"},
		order:   "created_at DESC, id",
		schema:  filter.MustSchema(str("name"), str("company"), str("email"), str("status"), createdAt),
	}
	vendorsTable = table{
		name:    "vendors",
		columns: []string{"name", "category", "email", "status", "created_at"},
		search:  []string{"name", "category", "email"},
		order:   "created_at DESC, id",
		schema:  filter.MustSchema(str("name"), str("category"), str("email"), str("status"), createdAt),
	}
	bcCodesTable = table{
		name:    "bc_codes",
		columns: []string{"code", "name", "category", "is_active", "created_at"},
		search:  []string{"code", "name"},
		order:   "code",
		schema: filter.MustSchema(str("code"), str("name"), str("category"),
			filter.Field{Name: "is_active", Column: "is_active", Type: filter.Int}, createdAt),
	}
	itemCodesTable = table{
		name:    "item_codes",
		columns: []string{"item_code", "item_type", "created_at"},
		search:  []string{"item_code", "item_type"},
		order:   "item_code",
		schema:  filter.MustSchema(str("item_code"), str("item_type"), createdAt),
	}
	quotationsTable = table{
		name:    "quotations",
		columns: []string{"number", "direction", "status", "customer_name", "date", "created_at"},
		search:  []string{"number", "customer_name"},
		order:   "created_at DESC, id",
		schema:  filter.MustSchema(str("number"), str("direction"), str("status"), str("customer_name"), str("date"), createdAt),
	}
	bcDocumentsTable = table{
		name:    "bc_documents",
		columns: []string{"bc_number", "bc_type", "direction", "status", "customer_name", "quotation_id", "submitted_date", "created_at"},
		search:  []string{"bc_number", "customer_name"},
		order:   "created_at DESC, id",
		schema: filter.MustSchema(str("bc_number"), str("bc_type"), str("direction"), str("status"),
			str("customer_name"), str("quotation_id"), str("submitted_date"), createdAt),
	}
	goodsMovementsTable = table{
		name:    "goods_movements",
		columns: []string{"number", "bc_doc_id", "bc_number", "direction", "status", "movement_date", "created_at"},
		search:  []string{"number", "bc_number"},
		order:   "created_at DESC, id",
		schema: filter.MustSchema(str("number"), str("bc_doc_id"), str("bc_number"), str("direction"),
			str("status"), str("movement_date"), createdAt),
	}
	inspectionsTable = table{
		name:    "inspections",
		columns: []string{"number", "goods_movement_id", "bc_number", "inspector", "overall_status", "inspection_date", "created_at"},
		search:  []string{"number", "bc_number", "inspector"},
		order:   "created_at DESC, id",
		schema: filter.MustSchema(str("number"), str("goods_movement_id"), str("bc_number"), str("inspector"),
			str("overall_status"), str("inspection_date"), createdAt),
	}
	registrationsTable = table{
		name:    "registrations",
		columns: []string{"number", "bc_document_number", "customer_name", "title", "submission_date", "created_at", "item_names"},
		search:  []string{"number", "bc_document_number", "customer_name", "title", "item_names"},
		order:   "created_at DESC, id",
		schema: filter.MustSchema(str("number"), str("bc_document_number"), str("customer_name"),
			str("submission_date"), createdAt),
	}
	mutationLogsTable = table{
		name:    "mutation_logs",
		columns: []string{"registration_id", "registration_number", "bc_document_number", "item_name", "pic", "type", "date", "created_at"},
		search:  []string{"registration_number", "bc_document_number", "item_name", "pic"},
		order:   "created_at DESC, id",
		schema: filter.MustSchema(str("registration_id"), str("registration_number"), str("bc_document_number"),
			str("item_name"), str("pic"), str("type"), str("date"), createdAt),
	}
	transactionsTable = table{
		name:    "transactions",
		columns: []string{"number", "direction", "bc_doc_number", "party", "status", "date", "created_at"},
		search:  []string{"number", "bc_doc_number", "party"},
		order:   "date DESC, created_at DESC",
		schema: filter.MustSchema(str("number"), str("direction"), str("bc_doc_number"), str("party"),
			str("status"), str("date"), createdAt),
	}
	invoicesTable = table{
		name:    "invoices",
		columns: []string{"number", "transaction_id", "party", "status", "issued_date", "created_at"},
		search:  []string{"number", "party"},
		order:   "created_at DESC, id",
		schema:  filter.MustSchema(str("number"), str("transaction_id"), str("party"), str("status"), str("issued_date"), createdAt),
	}
	rejectsTable = table{
		name:    "rejects",
		columns: []string{"customs_doc_number", "asset_name", "reason", "goods_type", "date", "created_at"},
		search:  []string{"customs_doc_number", "asset_name", "reason"},
		order:   "date DESC, created_at DESC",
		schema:  filter.MustSchema(str("customs_doc_number"), str("asset_name"), str("goods_type"), str("date"), createdAt),
	}
	approvalsTable = table{
		name:    "approvals",
		columns: []string{"type", "entity_type", "entity_id", "entity_name", "requested_by", "details", "status", "created_at"},
		search:  []string{"entity_name", "requested_by", "details"},
		order:   "created_at DESC, id",
		schema: filter.MustSchema(str("type"), str("entity_type"), str("entity_id"), str("requested_by"),
			str("status"), createdAt),
	}
	activityTable = table{
		name:    "activity_logs",
		columns: []string{"user_name", "action", "module", "entity_type", "entity_name", "details", "created_at"},
		search:  []string{"user_name", "entity_name", "details"},
		order:   "created_at DESC, id",
		schema: filter.MustSchema(filter.Field{Name: "user", Column: "user_name"}, str("action"), str("module"),
			str("entity_type"), createdAt),
	}
	financeTable = table{
		name:    "finance_entries",
		columns: []string{"type", "category", "module", "description", "date", "created_at"},
		search:  []string{"category", "description"},
		order:   "date DESC, created_at DESC",
		schema:  filter.MustSchema(str("type"), str("category"), str("module"), str("date"), createdAt),
	}
	shipmentsTable = table{
		name:    "shipments",
		columns: []string{"origin", "destination", "customer_name", "vendor_name", "status", "created_at"},
		search:  []string{"origin", "destination", "customer_name", "vendor_name"},
		order:   "created_at DESC, id",
		schema:  filter.MustSchema(str("origin"), str("destination"), str("customer_name"), str("vendor_name"), str("status"), createdAt),
	}
	eventsTable = table{
		name:    "events",
		columns: []string{"name", "location", "customer_name", "status", "date", "created_at"},
		search:  []string{"name", "location", "customer_name"},
		order:   "date DESC, created_at DESC",
		schema:  filter.MustSchema(str("name"), str("location"), str("customer_name"), str("status"), str("date"), createdAt),
	}
)
