package transaction

import (
	"fmt"
	"strings"
	"time"

	"github.com/tppb-bridge/backoffice/internal/platform/calendar"
	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/id"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/goods"
)

// RejectRecord is goods written off as rejected, damaged or scrap.
type RejectRecord struct {
	ID               string       `json:"id"`
	CustomsDocType   string       `json:"customs_doc_type"`
	CustomsDocNumber string       `json:"customs_doc_number"`
	CustomsDocDate   string       `json:"customs_doc_date"`
	ReceiptNumber    string       `json:"receipt_number"`
	Date             string       `json:"date"`
	Reason           string       `json:"reason"`
	ItemCode         string       `json:"item_code"`
	AssetName        string       `json:"asset_name"`
	GoodsType        string       `json:"goods_type"`
	Quantity         int64        `json:"quantity"`
	Unit             string       `json:"unit"`
	Value            money.Amount `json:"value"`
	Currency         string       `json:"currency"`
	Notes            string       `json:"notes,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}

// RejectInput carries a new reject record.
type RejectInput struct {
	CustomsDocType   string       `json:"customs_doc_type"`
	CustomsDocNumber string       `json:"customs_doc_number"`
	CustomsDocDate   string       `json:"customs_doc_date"`
	ReceiptNumber    string       `json:"receipt_number"`
	Date             string       `json:"date"`
	Reason           string       `json:"reason"`
	ItemCode         string       `json:"item_code"`
	AssetName        string       `json:"asset_name"`
	GoodsType        string       `json:"goods_type"`
	Quantity         int64        `json:"quantity"`
	Unit             string       `json:"unit"`
	Value            money.Amount `json:"value"`
	Currency         string       `json:"currency"`
	Notes            string       `json:"notes"`
}

// CreateReject validates and builds a reject record.
func CreateReject(input RejectInput, now func() time.Time, idGenerator func() (string, error)) (RejectRecord, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	at := now().UTC()
	name := strings.TrimSpace(input.AssetName)
	if name == "" {
		return RejectRecord{}, apperrors.Invalid("asset_name", "asset name is required")
	}
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return RejectRecord{}, apperrors.Invalid("reason", "reject reason is required")
	}
	if input.Quantity <= 0 {
		return RejectRecord{}, apperrors.Invalid("quantity", "quantity must be greater than zero")
	}
	if input.Value.IsNegative() {
		return RejectRecord{}, apperrors.Invalid("value", "value must not be negative")
	}
	date, err := calendar.NormalizeDate(input.Date, at)
	if err != nil {
		return RejectRecord{}, apperrors.Invalid("date", err.Error())
	}
	docDate := strings.TrimSpace(input.CustomsDocDate)
	if docDate != "" {
		if _, err := calendar.ParseDate(docDate); err != nil {
			return RejectRecord{}, apperrors.Invalid("customs_doc_date", err.Error())
		}
	}
	rejectID, err := idGenerator()
	if err != nil {
		return RejectRecord{}, fmt.Errorf("generate reject id: %w", err)
	}
	unit := strings.TrimSpace(input.Unit)
	if unit == "" {
		unit = "pcs"
	}
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = goods.DefaultCurrency
	}
	goodsType := strings.TrimSpace(input.GoodsType)
	if goodsType == "" {
		goodsType = name
	}
	return RejectRecord{
		ID:               rejectID,
		CustomsDocType:   strings.TrimSpace(input.CustomsDocType),
		CustomsDocNumber: strings.TrimSpace(input.CustomsDocNumber),
		CustomsDocDate:   docDate,
		ReceiptNumber:    strings.TrimSpace(input.ReceiptNumber),
		Date:             date,
		Reason:           reason,
		ItemCode:         strings.TrimSpace(input.ItemCode),
		AssetName:        name,
		GoodsType:        goodsType,
		Quantity:         input.Quantity,
		Unit:             unit,
		Value:            input.Value,
		Currency:         currency,
		Notes:            strings.TrimSpace(input.Notes),
		CreatedAt:        at,
	}, nil
}
