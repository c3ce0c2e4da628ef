package warehouse

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tppb-bridge/backoffice/internal/platform/calendar"
	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/id"
)

// MovementType is the direction of a stock movement.
type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

var (
	// ErrQuantity indicates a non-positive movement quantity.
	ErrQuantity = apperrors.New(apperrors.CodeMovementQuantity, "movement quantity must be greater than zero")
	// ErrPICRequired indicates the person in charge is missing.
	ErrPICRequired = apperrors.New(apperrors.CodeMovementPICRequired, "pic is required")
	// ErrEmptyBatch indicates a mutation batch without entries.
	ErrEmptyBatch = apperrors.New(apperrors.CodeMutationBatchEmpty, "mutation batch is empty")
	// ErrInsufficientStock indicates an out movement larger than stock.
	ErrInsufficientStock = apperrors.New(apperrors.CodeStockInsufficient, "quantity exceeds available stock")
)

// MovementRequest asks to move quantity of one stock item.
type MovementRequest struct {
	RegistrationID string       `json:"registration_id"`
	ItemID         string       `json:"item_id"`
	Type           MovementType `json:"type"`
	Quantity       int64        `json:"quantity"`
	Origin         Place        `json:"origin"`
	Destination    Place        `json:"destination"`
	Date           string       `json:"date"`
	Time           string       `json:"time"`
	PIC            string       `json:"pic"`
	Remarks        string       `json:"remarks"`
}

// MutationLog records one applied movement.
type MutationLog struct {
	ID                 string       `json:"id"`
	RegistrationID     string       `json:"registration_id"`
	RegistrationNumber string       `json:"registration_number"`
	BCDocumentNumber   string       `json:"bc_document_number"`
	ItemID             string       `json:"item_id"`
	ItemCode           string       `json:"item_code"`
	ItemName           string       `json:"item_name"`
	SerialNumber       string       `json:"serial_number,omitempty"`
	Date               string       `json:"date"`
	Time               string       `json:"time"`
	PIC                string       `json:"pic"`
	TotalStock         int64        `json:"total_stock"`
	MutatedQty         int64        `json:"mutated_qty"`
	RemainingStock     int64        `json:"remaining_stock"`
	Type               MovementType `json:"type"`
	Origin             Place        `json:"origin"`
	Destination        Place        `json:"destination"`
	Remarks            string       `json:"remarks,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
}

// Stats summarizes the mutation log.
type Stats struct {
	TotalMutations int `json:"total_mutations"`
	MutationsToday int `json:"mutations_today"`
}

func normalizeRequest(req MovementRequest, now time.Time) (MovementRequest, error) {
	switch MovementType(strings.ToLower(strings.TrimSpace(string(req.Type)))) {
	case "", MovementOut:
		req.Type = MovementOut
	case MovementIn:
		req.Type = MovementIn
	default:
		return MovementRequest{}, apperrors.Invalid("type", fmt.Sprintf("movement type %q is invalid", req.Type))
	}
	if req.Quantity <= 0 {
		return MovementRequest{}, ErrQuantity
	}
	req.PIC = strings.TrimSpace(req.PIC)
	if req.PIC == "" {
		return MovementRequest{}, ErrPICRequired
	}
	var err error
	if req.Origin == "" {
		req.Origin = PlaceGudang
	}
	if req.Origin, err = ParsePlace(string(req.Origin)); err != nil {
		return MovementRequest{}, err
	}
	if req.Destination == "" {
		req.Destination = PlacePameran
	}
	if req.Destination, err = ParsePlace(string(req.Destination)); err != nil {
		return MovementRequest{}, err
	}
	if req.Date, err = calendar.NormalizeDate(req.Date, now); err != nil {
		return MovementRequest{}, apperrors.Invalid("date", err.Error())
	}
	if req.Time, err = calendar.NormalizeTime(req.Time, now); err != nil {
		return MovementRequest{}, apperrors.Invalid("time", err.Error())
	}
	req.ItemID = strings.TrimSpace(req.ItemID)
	req.Remarks = strings.TrimSpace(req.Remarks)
	return req, nil
}

// ApplyMovement moves stock of one item and returns the updated
// registration with its log entry. reg itself is not modified.
func ApplyMovement(reg Registration, req MovementRequest, now func() time.Time, idGenerator func() (string, error)) (Registration, MutationLog, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	at := now().UTC()
	req, err := normalizeRequest(req, at)
	if err != nil {
		return Registration{}, MutationLog{}, err
	}
	pi, ii, ok := reg.FindItem(req.ItemID)
	if !ok {
		return Registration{}, MutationLog{}, apperrors.NotFound("item", fmt.Sprintf("item %s not found in registration %s", req.ItemID, reg.Number))
	}
	reg = reg.Clone()
	item := &reg.Packages[pi].Items[ii]
	before := item.Quantity
	var remaining int64
	switch req.Type {
	case MovementOut:
		if req.Quantity > before {
			return Registration{}, MutationLog{}, apperrors.WithMetadata(
				apperrors.CodeStockInsufficient,
				fmt.Sprintf("out quantity %d exceeds stock %d of %s", req.Quantity, before, item.Name),
				map[string]string{"Available": strconv.FormatInt(before, 10)},
			)
		}
		remaining = before - req.Quantity
	case MovementIn:
		remaining = before + req.Quantity
	}
	item.Quantity = remaining
	item.Position = req.Destination
	reg.UpdatedAt = at

	logID, err := idGenerator()
	if err != nil {
		return Registration{}, MutationLog{}, fmt.Errorf("generate mutation id: %w", err)
	}
	return reg, MutationLog{
		ID:                 logID,
		RegistrationID:     reg.ID,
		RegistrationNumber: reg.Number,
		BCDocumentNumber:   reg.BCDocumentNumber,
		ItemID:             item.ID,
		ItemCode:           item.ItemCode,
		ItemName:           item.Name,
		SerialNumber:       item.SerialNumber,
		Date:               req.Date,
		Time:               req.Time,
		PIC:                req.PIC,
		TotalStock:         before,
		MutatedQty:         req.Quantity,
		RemainingStock:     remaining,
		Type:               req.Type,
		Origin:             req.Origin,
		Destination:        req.Destination,
		Remarks:            req.Remarks,
		CreatedAt:          at,
	}, nil
}

// ApplyMutations applies a batch in order across the given registrations.
// Either every request applies or none does: on error the input map is
// untouched and nothing is returned.
func ApplyMutations(regs map[string]Registration, reqs []MovementRequest, now func() time.Time, idGenerator func() (string, error)) (map[string]Registration, []MutationLog, error) {
	if len(reqs) == 0 {
		return nil, nil, ErrEmptyBatch
	}
	working := make(map[string]Registration, len(regs))
	for k, v := range regs {
		working[k] = v
	}
	changed := make(map[string]Registration)
	logs := make([]MutationLog, 0, len(reqs))
	for i, req := range reqs {
		reg, ok := working[req.RegistrationID]
		if !ok {
			return nil, nil, apperrors.NotFound("registration", fmt.Sprintf("mutation %d: registration %s not found", i+1, req.RegistrationID))
		}
		updated, log, err := ApplyMovement(reg, req, now, idGenerator)
		if err != nil {
			return nil, nil, fmt.Errorf("mutation %d: %w", i+1, err)
		}
		working[req.RegistrationID] = updated
		changed[req.RegistrationID] = updated
		logs = append(logs, log)
	}
	return changed, logs, nil
}

// ComputeStats counts all mutations and those dated today.
func ComputeStats(logs []MutationLog, now time.Time) Stats {
	today := calendar.Today(now)
	stats := Stats{TotalMutations: len(logs)}
	for _, l := range logs {
		if l.Date == today {
			stats.MutationsToday++
		}
	}
	return stats
}
