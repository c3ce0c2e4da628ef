package customs

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/id"
)

// Category groups BC codes by the flow they document.
type Category string

const (
	CategoryInbound    Category = "inbound"
	CategoryOutbound   Category = "outbound"
	CategoryMonitoring Category = "monitoring"
)

// BCCode is a master entry for one customs document type (e.g. "BC 2.3").
type BCCode struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BCCodeInput carries editable BC code fields. A nil IsActive keeps the
// current value, or true for new codes.
type BCCodeInput struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// NormalizeBCCodeInput trims and validates input.
func NormalizeBCCodeInput(input BCCodeInput) (BCCodeInput, error) {
	input.Code = strings.ToUpper(strings.TrimSpace(input.Code))
	if input.Code == "" {
		return BCCodeInput{}, apperrors.Invalid("code", "bc code is required")
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return BCCodeInput{}, apperrors.Invalid("name", "bc code name is required")
	}
	input.Description = strings.TrimSpace(input.Description)
	switch Category(strings.ToLower(strings.TrimSpace(string(input.Category)))) {
	case CategoryInbound, CategoryOutbound, CategoryMonitoring:
		input.Category = Category(strings.ToLower(strings.TrimSpace(string(input.Category))))
	default:
		return BCCodeInput{}, apperrors.Invalid("category", fmt.Sprintf("bc code category %q is invalid", input.Category))
	}
	return input, nil
}

// CreateBCCode builds an active BC code.
func CreateBCCode(input BCCodeInput, now func() time.Time, idGenerator func() (string, error)) (BCCode, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	normalized, err := NormalizeBCCodeInput(input)
	if err != nil {
		return BCCode{}, err
	}
	codeID, err := idGenerator()
	if err != nil {
		return BCCode{}, fmt.Errorf("generate bc code id: %w", err)
	}
	createdAt := now().UTC()
	code := BCCode{ID: codeID, IsActive: true, CreatedAt: createdAt}
	return UpdateBCCode(code, normalized, func() time.Time { return createdAt })
}

// UpdateBCCode applies input to an existing code.
func UpdateBCCode(existing BCCode, input BCCodeInput, now func() time.Time) (BCCode, error) {
	if now == nil {
		now = time.Now
	}
	normalized, err := NormalizeBCCodeInput(input)
	if err != nil {
		return BCCode{}, err
	}
	existing.Code = normalized.Code
	existing.Name = normalized.Name
	existing.Category = normalized.Category
	existing.Description = normalized.Description
	if normalized.IsActive != nil {
		existing.IsActive = *normalized.IsActive
	}
	existing.UpdatedAt = now().UTC()
	return existing, nil
}

// BCCodeInputFrom returns the editable fields of c.
func BCCodeInputFrom(c BCCode) BCCodeInput {
	active := c.IsActive
	return BCCodeInput{Code: c.Code, Name: c.Name, Category: c.Category, Description: c.Description, IsActive: &active}
}
