// Package activity is the audit trail of operator actions.
package activity

import (
	"fmt"
	"strings"
	"time"

	"github.com/tppb-bridge/backoffice/internal/platform/id"
)

// Action is what the operator did.
type Action string

const (
	ActionAdd     Action = "add"
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionMutate  Action = "mutate"
)

// Module names the back-office area an entry belongs to.
const (
	ModuleRegistry    = "registry"
	ModuleCustoms     = "customs"
	ModuleQuotation   = "quotation"
	ModuleWarehouse   = "warehouse"
	ModuleInspection  = "inspection"
	ModuleTransaction = "transaction"
	ModuleApproval    = "approval"
	ModuleFinance     = "finance"
	ModuleLogistics   = "logistics"
)

// DefaultUser is recorded when no operator is known.
const DefaultUser = "system"

// Entry is one audit line.
type Entry struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	User       string    `json:"user"`
	Action     Action    `json:"action"`
	Module     string    `json:"module"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	EntityName string    `json:"entity_name"`
	Details    string    `json:"details,omitempty"`
}

// New builds an entry stamped with now.
func New(user string, action Action, module, entityType, entityID, entityName, details string, now func() time.Time, idGenerator func() (string, error)) (Entry, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	entryID, err := idGenerator()
	if err != nil {
		return Entry{}, fmt.Errorf("generate activity id: %w", err)
	}
	user = strings.TrimSpace(user)
	if user == "" {
		user = DefaultUser
	}
	return Entry{
		ID:         entryID,
		Timestamp:  now().UTC(),
		User:       user,
		Action:     action,
		Module:     module,
		EntityType: entityType,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    strings.TrimSpace(details),
	}, nil
}

// Counts tallies entries per action.
func Counts(entries []Entry) map[Action]int {
	counts := make(map[Action]int)
	for _, e := range entries {
		counts[e.Action]++
	}
	return counts
}
