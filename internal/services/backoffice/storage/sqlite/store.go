// Package sqlite provides a SQLite-backed back-office storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/tppb-bridge/backoffice/internal/platform/filter"
	sqlitemigrate "github.com/tppb-bridge/backoffice/internal/platform/storage/sqlitemigrate"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/storage"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store persists back-office state in SQLite.
type Store struct {
	repo
	sqlDB *sql.DB
}

// repo implements every entity store against one querier.
type repo struct {
	q querier
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// Open opens a SQLite store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	sqlDB, err := OpenDB(path)
	if err != nil {
		return nil, err
	}
	if _, err := Migrate(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return &Store{repo: repo{q: sqlDB}, sqlDB: sqlDB}, nil
}

// OpenDB opens and pings the database without migrating it.
func OpenDB(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)&_txlock=immediate"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return sqlDB, nil
}

// Migrate applies pending embedded migrations and returns their names.
func Migrate(ctx context.Context, sqlDB *sql.DB) ([]string, error) {
	applied, err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, "")
	if err != nil {
		return applied, fmt.Errorf("run migrations: %w", err)
	}
	return applied, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// InTx runs fn inside one transaction.
func (s *Store) InTx(ctx context.Context, fn func(storage.Stores) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return busyErr(fmt.Errorf("begin tx: %w", err))
	}
	defer func() { _ = tx.Rollback() }()
	if err := fn(repo{q: tx}); err != nil {
		return busyErr(err)
	}
	if err := tx.Commit(); err != nil {
		return busyErr(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

// table describes one aggregate table: id, indexed columns, and the JSON
// document of the whole record in data.
type table struct {
	name    string
	columns []string
	search  []string
	order   string
	schema  *filter.Schema
}

func (t table) put(ctx context.Context, q querier, id string, values []any, record any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s id is required", t.name)
	}
	if len(values) != len(t.columns) {
		return fmt.Errorf("%s: got %d column values, want %d", t.name, len(values), len(t.columns))
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s: %w", t.name, err)
	}
	cols := append([]string{"id"}, t.columns...)
	cols = append(cols, "data")
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	updates := make([]string, 0, len(cols)-1)
	for _, c := range cols[1:] {
		updates = append(updates, c+" = excluded."+c)
	}
	query := fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (%s) ON CONFLICT(id) DO UPDATE SET %s`,
		t.name, strings.Join(cols, ", "), placeholders, strings.Join(updates, ", "),
	)
	args := make([]any, 0, len(cols))
	args = append(args, id)
	args = append(args, values...)
	args = append(args, string(data))
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("put %s: %w", t.name, storage.ErrAlreadyExists)
		}
		return fmt.Errorf("put %s: %w", t.name, err)
	}
	return nil
}

func (t table) delete(ctx context.Context, q querier, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	res, err := q.ExecContext(ctx, `DELETE FROM `+t.name+` WHERE id = ?`, strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("delete %s: %w", t.name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", t.name, err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func getRecord[T any](ctx context.Context, q querier, t table, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	var data string
	err := q.QueryRowContext(ctx, `SELECT data FROM `+t.name+` WHERE id = ?`, strings.TrimSpace(id)).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, storage.ErrNotFound
		}
		return zero, fmt.Errorf("get %s: %w", t.name, err)
	}
	var record T
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return zero, fmt.Errorf("decode %s: %w", t.name, err)
	}
	return record, nil
}

// findRecord returns the first record matching column = value.
func findRecord[T any](ctx context.Context, q querier, t table, column string, value any) (T, error) {
	records, err := selectRecords[T](ctx, q, t, filter.SQLCondition{Clause: column + " = ?", Params: []any{value}})
	if err != nil {
		var zero T
		return zero, err
	}
	if len(records) == 0 {
		var zero T
		return zero, storage.ErrNotFound
	}
	return records[0], nil
}

func listRecords[T any](ctx context.Context, q querier, t table, query storage.ListQuery) ([]T, error) {
	cond, err := t.schema.Parse(query.Filter)
	if err != nil {
		return nil, err
	}
	return selectRecords[T](ctx, q, t, cond.And(t.searchCondition(query.Search)))
}

func selectRecords[T any](ctx context.Context, q querier, t table, cond filter.SQLCondition) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	query := `SELECT data FROM ` + t.name
	if !cond.Empty() {
		query += ` WHERE ` + cond.Clause
	}
	query += ` ORDER BY ` + t.order
	rows, err := q.QueryContext(ctx, query, cond.Params...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("list %s: %w", t.name, err)
		}
		var record T
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			return nil, fmt.Errorf("decode %s: %w", t.name, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	return records, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (t table) searchCondition(term string) filter.SQLCondition {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || len(t.search) == 0 {
		return filter.SQLCondition{}
	}
	pattern := "%" + likeEscaper.Replace(term) + "%"
	parts := make([]string, len(t.search))
	params := make([]any, len(t.search))
	for i, col := range t.search {
		parts[i] = "LOWER(" + col + `) LIKE ? ESCAPE '\'`
		params[i] = pattern
	}
	return filter.SQLCondition{Clause: "(" + strings.Join(parts, " OR ") + ")", Params: params}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

// busyErr tags lock contention with storage.ErrBusy.
func busyErr(err error) error {
	if err == nil || errors.Is(err, storage.ErrBusy) {
		return err
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() & 0xff {
		case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED:
			return fmt.Errorf("%w: %w", storage.ErrBusy, err)
		}
	}
	return err
}

var (
	_ storage.Store  = (*Store)(nil)
	_ storage.Stores = repo{}
)
