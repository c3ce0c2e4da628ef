// Package errors provides coded domain errors with localized messages.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Request errors
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeInvalidFilter   Code = "INVALID_FILTER"
	CodeUnauthenticated Code = "UNAUTHENTICATED"

	// Storage errors
	CodeNotFound      Code = "NOT_FOUND"
	CodeAlreadyExists Code = "ALREADY_EXISTS"
	// CodeStorageBusy is retryable: another write held the database.
	CodeStorageBusy Code = "STORAGE_BUSY"

	// Customs errors
	CodeBCDocumentNotPending   Code = "BC_DOCUMENT_NOT_PENDING"
	CodeBCApproverRequired     Code = "BC_APPROVER_REQUIRED"
	CodeBCRejectReasonRequired Code = "BC_REJECT_REASON_REQUIRED"

	// Quotation errors
	CodeQuotationNotDraft       Code = "QUOTATION_NOT_DRAFT"
	CodeQuotationDiscountRange  Code = "QUOTATION_DISCOUNT_OUT_OF_RANGE"
	CodeQuotationTaxRateRange   Code = "QUOTATION_TAX_RATE_OUT_OF_RANGE"
	CodeQuotationItemsRequired  Code = "QUOTATION_ITEMS_REQUIRED"
	CodeQuotationItemQuantity   Code = "QUOTATION_ITEM_QUANTITY_INVALID"
	CodeQuotationCustomerMissed Code = "QUOTATION_CUSTOMER_REQUIRED"

	// Warehouse errors
	CodeStockInsufficient   Code = "STOCK_INSUFFICIENT"
	CodeMovementQuantity    Code = "MOVEMENT_QUANTITY_INVALID"
	CodeMovementPICRequired Code = "MOVEMENT_PIC_REQUIRED"
	CodeMutationBatchEmpty  Code = "MUTATION_BATCH_EMPTY"

	// Inspection errors
	CodeMovementAlreadyStored Code = "MOVEMENT_ALREADY_STORED"
	CodeInspectorRequired     Code = "INSPECTOR_REQUIRED"

	// Approval errors
	CodeApprovalNotPending     Code = "APPROVAL_NOT_PENDING"
	CodeApprovalReasonRequired Code = "APPROVAL_REASON_REQUIRED"

	// Finance errors
	CodeInvoiceAlreadyPaid Code = "INVOICE_ALREADY_PAID"

	// Export errors
	CodeExportNoData Code = "EXPORT_NO_DATA"
)

// HTTPStatus maps domain codes to HTTP response statuses.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidArgument,
		CodeInvalidFilter,
		CodeBCApproverRequired,
		CodeBCRejectReasonRequired,
		CodeQuotationDiscountRange,
		CodeQuotationTaxRateRange,
		CodeQuotationItemsRequired,
		CodeQuotationItemQuantity,
		CodeQuotationCustomerMissed,
		CodeMovementQuantity,
		CodeMovementPICRequired,
		CodeMutationBatchEmpty,
		CodeInspectorRequired,
		CodeApprovalReasonRequired:
		return http.StatusBadRequest

	case CodeBCDocumentNotPending,
		CodeQuotationNotDraft,
		CodeStockInsufficient,
		CodeMovementAlreadyStored,
		CodeApprovalNotPending,
		CodeInvoiceAlreadyPaid,
		CodeAlreadyExists:
		return http.StatusConflict

	case CodeNotFound, CodeExportNoData:
		return http.StatusNotFound

	case CodeUnauthenticated:
		return http.StatusUnauthorized

	case CodeStorageBusy:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}
