package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestApplyRecordsMigrationsOnce(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	migrations := fstest.MapFS{
		"migrations/001_init.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE customers (id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE customers;\n")},
		"migrations/002_more.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE vendors (id TEXT PRIMARY KEY);\n")},
		"migrations/readme.txt":   {Data: []byte("ignored")},
	}
	ctx := context.Background()

	applied, err := Apply(ctx, db, migrations, "migrations")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(applied) != 2 || applied[0] != "migrations/001_init.sql" || applied[1] != "migrations/002_more.sql" {
		t.Fatalf("applied = %v", applied)
	}

	again, err := Apply(ctx, db, migrations, "migrations")
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("second apply ran %v, want none", again)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("recorded = %d, want 2", count)
	}
}

func TestApplyRollsBackFailedMigration(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	migrations := fstest.MapFS{
		"001_bad.sql": {Data: []byte("CREATE TABLE broken (")},
	}
	if _, err := Apply(context.Background(), db, migrations, ""); err == nil {
		t.Fatal("expected error")
	}
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("recorded = %d, want 0", count)
	}
}

func TestApplyRequiresDB(t *testing.T) {
	t.Parallel()

	if _, err := Apply(context.Background(), nil, fstest.MapFS{}, "."); err == nil {
		t.Fatal("expected error for nil db")
	}
}

func TestExtractUpMigration(t *testing.T) {
	t.Parallel()

	content := "header\n-- +migrate Up\nCREATE TABLE a (id INT);\n-- +migrate Down\nDROP TABLE a;\n"
	if got := ExtractUpMigration(content); got != "\nCREATE TABLE a (id INT);\n" {
		t.Fatalf("up = %q", got)
	}
	if got := ExtractUpMigration("SELECT 1;"); got != "SELECT 1;" {
		t.Fatalf("no marker = %q", got)
	}
}

func TestIsAlreadyExistsError(t *testing.T) {
	t.Parallel()

	if !IsAlreadyExistsError(errors.New("table customers already exists")) {
		t.Fatal("expected already exists match")
	}
	if !IsAlreadyExistsError(errors.New("duplicate column name: npwp")) {
		t.Fatal("expected duplicate column match")
	}
	if IsAlreadyExistsError(errors.New("syntax error")) || IsAlreadyExistsError(nil) {
		t.Fatal("unexpected match")
	}
}
