package activity

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNewDefaultsUser(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)
	entry, err := New(" ", ActionAdd, ModuleRegistry, "customer", "c-1", "PT Maju", " created ", func() time.Time { return now }, func() (string, error) { return "act-1", nil })
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	want := Entry{ID: "act-1", Timestamp: now, User: DefaultUser, Action: ActionAdd, Module: ModuleRegistry, EntityType: "customer", EntityID: "c-1", EntityName: "PT Maju", Details: "created"}
	if diff := cmp.Diff(want, entry); diff != "" {
		t.Fatalf("entry mismatch (-want +got):\n%s", diff)
	}
}

func TestCounts(t *testing.T) {
	t.Parallel()

	got := Counts([]Entry{{Action: ActionAdd}, {Action: ActionEdit}, {Action: ActionAdd}})
	if diff := cmp.Diff(map[Action]int{ActionAdd: 2, ActionEdit: 1}, got); diff != "" {
		t.Fatalf("counts mismatch (-want +got):\n%s", diff)
	}
}
