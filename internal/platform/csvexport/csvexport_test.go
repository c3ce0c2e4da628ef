package csvexport

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestWriteQuotesAndFormatsCells(t *testing.T) {
	t.Parallel()

	columns := []Column{
		{Key: "name", Header: "Nama"},
		{Key: "note", Header: "Catatan"},
		{Key: "qty", Header: "Jumlah"},
		{Key: "value", Header: "Nilai"},
		{Key: "tags", Header: "Tag"},
		{Key: "missing", Header: "Kosong"},
	}
	rows := []Row{{
		"name":  `PT "Maju", Jaya`,
		"note":  "line1\nline2",
		"qty":   12,
		"value": decimal.NewFromInt(1500000),
		"tags":  []string{"a", "b"},
	}}

	var buf bytes.Buffer
	if err := Write(&buf, columns, rows); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "Nama,Catatan,Jumlah,Nilai,Tag,Kosong\n" +
		`"PT ""Maju"", Jaya","line1` + "\n" + `line2",12,1500000,"[""a"",""b""]",` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("csv = %q, want %q", got, want)
	}
}

func TestWriteNoData(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Write(&buf, []Column{{Key: "a", Header: "A"}}, nil)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("err = %v, want ErrNoData", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected nothing written, got %q", buf.String())
	}
}

func TestCellTime(t *testing.T) {
	t.Parallel()

	if got := Cell(time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC)); got != "2025-03-07" {
		t.Fatalf("Cell(time) = %q", got)
	}
	if got := Cell(time.Time{}); got != "" {
		t.Fatalf("Cell(zero time) = %q", got)
	}
	var p *int
	if got := Cell(p); got != "" {
		t.Fatalf("Cell(nil ptr) = %q", got)
	}
}

func TestFilename(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 11, 2, 8, 0, 0, 0, time.UTC)
	if got := Filename("data_customer", now); got != "data_customer_2025-11-02.csv" {
		t.Fatalf("Filename = %q", got)
	}
	if got := Filename(" ", now); got != "export_2025-11-02.csv" {
		t.Fatalf("Filename(blank) = %q", got)
	}
}
