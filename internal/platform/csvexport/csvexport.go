// Package csvexport writes tabular records as CSV downloads.
package csvexport

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"
)

// ErrNoData is returned when there are no rows to export.
var ErrNoData = errors.New("no data to export")

// Column maps a row key to its header label.
type Column struct {
	Key    string
	Header string
}

// Row is one exported record keyed by Column.Key.
type Row map[string]any

// Write renders header plus rows to w.
func Write(w io.Writer, columns []Column, rows []Row) error {
	if len(rows) == 0 {
		return ErrNoData
	}
	if len(columns) == 0 {
		return errors.New("columns are required")
	}
	cw := csv.NewWriter(w)
	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Header
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = Cell(row[col.Key])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Cell renders one value: nil is empty, composite values are JSON encoded.
func Cell(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format("2006-01-02")
	case fmt.Stringer:
		return v.String()
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(data)
	case reflect.Pointer:
		rv := reflect.ValueOf(value)
		if rv.IsNil() {
			return ""
		}
		return Cell(rv.Elem().Interface())
	}
	return fmt.Sprint(value)
}

// Filename returns "<name>_<YYYY-MM-DD>.csv".
func Filename(name string, now time.Time) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "export"
	}
	return name + "_" + now.Format("2006-01-02") + ".csv"
}
