package warehouse

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/id"
)

// ItemCode is a master entry classifying stored goods.
type ItemCode struct {
	ID        string    `json:"id"`
	ItemCode  string    `json:"item_code"`
	ItemType  string    `json:"item_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemCodeInput carries editable item code fields.
type ItemCodeInput struct {
	ItemCode string `json:"item_code"`
	ItemType string `json:"item_type"`
}

// NormalizeItemCodeInput trims and validates input.
func NormalizeItemCodeInput(input ItemCodeInput) (ItemCodeInput, error) {
	input.ItemCode = strings.ToUpper(strings.TrimSpace(input.ItemCode))
	if input.ItemCode == "" {
		return ItemCodeInput{}, apperrors.Invalid("item_code", "item code is required")
	}
	input.ItemType = strings.TrimSpace(input.ItemType)
	if input.ItemType == "" {
		return ItemCodeInput{}, apperrors.Invalid("item_type", "item type is required")
	}
	return input, nil
}

// CreateItemCode builds a new item code.
func CreateItemCode(input ItemCodeInput, now func() time.Time, idGenerator func() (string, error)) (ItemCode, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	normalized, err := NormalizeItemCodeInput(input)
	if err != nil {
		return ItemCode{}, err
	}
	codeID, err := idGenerator()
	if err != nil {
		return ItemCode{}, fmt.Errorf("generate item code id: %w", err)
	}
	at := now().UTC()
	return ItemCode{ID: codeID, ItemCode: normalized.ItemCode, ItemType: normalized.ItemType, CreatedAt: at, UpdatedAt: at}, nil
}

// UpdateItemCode applies input to an existing code.
func UpdateItemCode(existing ItemCode, input ItemCodeInput, now func() time.Time) (ItemCode, error) {
	if now == nil {
		now = time.Now
	}
	normalized, err := NormalizeItemCodeInput(input)
	if err != nil {
		return ItemCode{}, err
	}
	existing.ItemCode = normalized.ItemCode
	existing.ItemType = normalized.ItemType
	existing.UpdatedAt = now().UTC()
	return existing, nil
}

// ItemCodeInputFrom returns the editable fields of c.
func ItemCodeInputFrom(c ItemCode) ItemCodeInput {
	return ItemCodeInput{ItemCode: c.ItemCode, ItemType: c.ItemType}
}
