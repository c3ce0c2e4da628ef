package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tppb-bridge/backoffice/internal/platform/filter"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/activity"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/customs"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/goods"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/registry"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/storage"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/transaction"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/warehouse"
)

var fixedNow = time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "backoffice.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), " "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "backoffice.db")
	db, err := OpenDB(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	first, err := Migrate(context.Background(), db)
	if err != nil {
		t.Fatalf("first migrate: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("expected migrations to apply")
	}
	second, err := Migrate(context.Background(), db)
	if err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("second migrate applied %v", second)
	}
}

func TestCustomerRoundTripAndSearch(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()
	customers := []registry.Customer{
		{ID: "c-1", Name: "Budi", Company: "PT Maju Jaya", Email: "budi@maju.id", Status: registry.StatusActive, CreatedAt: fixedNow, UpdatedAt: fixedNow},
		{ID: "c-2", Name: "Sari", Company: "CV Sentosa", Status: registry.StatusInactive, CreatedAt: fixedNow.Add(time.Hour), UpdatedAt: fixedNow},
	}
	for _, c := range customers {
		if err := store.PutCustomer(ctx, c); err != nil {
			t.Fatalf("put customer %s: %v", c.ID, err)
		}
	}

	got, err := store.GetCustomer(ctx, "c-1")
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if diff := cmp.Diff(customers[0], got); diff != "" {
		t.Fatalf("customer mismatch (-want +got):\n%s", diff)
	}

	all, err := store.ListCustomers(ctx, storage.ListQuery{})
	if err != nil {
		t.Fatalf("list customers: %v", err)
	}
	if len(all) != 2 || all[0].ID != "c-2" {
		t.Fatalf("list order = %+v", all)
	}

	found, err := store.ListCustomers(ctx, storage.ListQuery{Search: "MAJU"})
	if err != nil {
		t.Fatalf("search customers: %v", err)
	}
	if len(found) != 1 || found[0].ID != "c-1" {
		t.Fatalf("search = %+v", found)
	}

	filtered, err := store.ListCustomers(ctx, storage.ListQuery{Filter: `status = "inactive"`})
	if err != nil {
		t.Fatalf("filter customers: %v", err)
	}
	if len(filtered) != 1 || filtered[0].ID != "c-2" {
		t.Fatalf("filter = %+v", filtered)
	}

	if _, err := store.ListCustomers(ctx, storage.ListQuery{Filter: `nope = "x"`}); !errors.Is(err, filter.ErrInvalid) {
		t.Fatalf("bad filter err = %v", err)
	}

	if err := store.DeleteCustomer(ctx, "c-1"); err != nil {
		t.Fatalf("delete customer: %v", err)
	}
	if _, err := store.GetCustomer(ctx, "c-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get deleted err = %v", err)
	}
	if err := store.DeleteCustomer(ctx, "c-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("delete missing err = %v", err)
	}
}

func TestSearchEscapesWildcards(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()
	if err := store.PutCustomer(ctx, registry.Customer{ID: "c-1", Name: "Plain", Status: registry.StatusActive, CreatedAt: fixedNow}); err != nil {
		t.Fatalf("put customer: %v", err)
	}
	found, err := store.ListCustomers(ctx, storage.ListQuery{Search: "%"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("wildcard matched %+v", found)
	}
}

func TestBCCodeUniqueness(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()
	code := customs.BCCode{ID: "bc-1", Code: "BC 2.3", Name: "Impor", Category: customs.CategoryInbound, IsActive: true, CreatedAt: fixedNow}
	if err := store.PutBCCode(ctx, code); err != nil {
		t.Fatalf("put bc code: %v", err)
	}
	dup := code
	dup.ID = "bc-2"
	if err := store.PutBCCode(ctx, dup); !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("duplicate err = %v", err)
	}
	code.Name = "Impor TPB"
	if err := store.PutBCCode(ctx, code); err != nil {
		t.Fatalf("update bc code: %v", err)
	}
	active, err := store.ListBCCodes(ctx, storage.ListQuery{Filter: "is_active = 1"})
	if err != nil {
		t.Fatalf("list bc codes: %v", err)
	}
	if len(active) != 1 || active[0].Name != "Impor TPB" {
		t.Fatalf("active codes = %+v", active)
	}
}

func TestInTxRollsBack(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")
	err := store.InTx(ctx, func(tx storage.Stores) error {
		if err := tx.PutItemCode(ctx, warehouse.ItemCode{ID: "ic-1", ItemCode: "ELEC", ItemType: "Electronics", CreatedAt: fixedNow}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("InTx err = %v", err)
	}
	if _, err := store.GetItemCode(ctx, "ic-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("rolled back item code err = %v", err)
	}

	err = store.InTx(ctx, func(tx storage.Stores) error {
		return tx.PutItemCode(ctx, warehouse.ItemCode{ID: "ic-1", ItemCode: "ELEC", ItemType: "Electronics", CreatedAt: fixedNow})
	})
	if err != nil {
		t.Fatalf("InTx commit: %v", err)
	}
	if _, err := store.GetItemCode(ctx, "ic-1"); err != nil {
		t.Fatalf("committed item code: %v", err)
	}
}

func TestTransactionAndInvoice(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()
	tx := transaction.Transaction{
		ID: "tx-1", Number: "OUT-1", Direction: customs.DirectionOutbound, Date: "2025-07-14", Status: transaction.StatusPending,
		Items:     []goods.Item{{Name: "Laptop", Quantity: 2, Value: money.FromInt(30_000_000)}},
		Totals:    transaction.Totals{Value: money.FromInt(30_000_000), ServiceGrandTotal: money.FromInt(1_110_000)},
		CreatedAt: fixedNow,
	}
	if err := store.PutTransaction(ctx, tx); err != nil {
		t.Fatalf("put transaction: %v", err)
	}
	got, err := store.GetTransaction(ctx, "tx-1")
	if err != nil {
		t.Fatalf("get transaction: %v", err)
	}
	if !got.Totals.Value.Equal(money.FromInt(30_000_000)) || got.Items[0].Name != "Laptop" {
		t.Fatalf("transaction = %+v", got)
	}

	inv := transaction.Invoice{ID: "inv-1", Number: "INV-1", TransactionID: "tx-1", Status: transaction.InvoiceUnpaid, IssuedDate: "2025-07-14", Amount: money.FromInt(1_110_000), CreatedAt: fixedNow}
	if err := store.PutInvoice(ctx, inv); err != nil {
		t.Fatalf("put invoice: %v", err)
	}
	byTx, err := store.GetInvoiceByTransaction(ctx, "tx-1")
	if err != nil || byTx.ID != "inv-1" {
		t.Fatalf("invoice by tx = %+v, %v", byTx, err)
	}
	if _, err := store.GetInvoiceByTransaction(ctx, "tx-2"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("missing invoice err = %v", err)
	}

	dated, err := store.ListTransactions(ctx, storage.ListQuery{Filter: `date >= "2025-07-01" AND direction = "outbound"`})
	if err != nil || len(dated) != 1 {
		t.Fatalf("filtered transactions = %+v, %v", dated, err)
	}
}

func TestRegistrationSearchMatchesItemNames(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()
	reg := warehouse.Registration{
		ID: "reg-1", Number: "REG-1", SubmissionDate: "2025-07-14", CreatedAt: fixedNow,
		Packages: []warehouse.Package{{PackageNumber: "P1", Items: []warehouse.StockItem{
			{ID: "i-1", Name: "Forklift", Quantity: 1, Position: warehouse.PlaceGudang},
		}}},
	}
	if err := store.PutRegistration(ctx, reg); err != nil {
		t.Fatalf("put registration: %v", err)
	}
	found, err := store.ListRegistrations(ctx, storage.ListQuery{Search: "forklift"})
	if err != nil || len(found) != 1 {
		t.Fatalf("search registrations = %+v, %v", found, err)
	}
	for _, term := range []string{"gudang", "quantity", "packages"} {
		found, err := store.ListRegistrations(ctx, storage.ListQuery{Search: term})
		if err != nil {
			t.Fatalf("search %q: %v", term, err)
		}
		if len(found) != 0 {
			t.Fatalf("search %q matched %d registrations, want 0", term, len(found))
		}
	}
}

func TestActivityFilterByTimestamp(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()
	for i, action := range []activity.Action{activity.ActionAdd, activity.ActionDelete} {
		entry := activity.Entry{
			ID: string(action), Timestamp: fixedNow.Add(time.Duration(i) * 24 * time.Hour),
			User: "admin", Action: action, Module: activity.ModuleRegistry,
		}
		if err := store.AppendActivity(ctx, entry); err != nil {
			t.Fatalf("append activity: %v", err)
		}
	}
	recent, err := store.ListActivity(ctx, storage.ListQuery{Filter: `created_at > timestamp("2025-07-14T12:00:00Z")`})
	if err != nil {
		t.Fatalf("list activity: %v", err)
	}
	if len(recent) != 1 || recent[0].Action != activity.ActionDelete {
		t.Fatalf("recent = %+v", recent)
	}
	byUser, err := store.ListActivity(ctx, storage.ListQuery{Filter: `user = "admin" AND action = "add"`})
	if err != nil || len(byUser) != 1 {
		t.Fatalf("by user = %+v, %v", byUser, err)
	}
}
