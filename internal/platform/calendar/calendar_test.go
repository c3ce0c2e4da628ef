package calendar

import (
	"testing"
	"time"
)

func TestNormalizeDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 4, 9, 15, 30, 0, 0, time.UTC)
	got, err := NormalizeDate("", now)
	if err != nil || got != "2025-04-09" {
		t.Fatalf("NormalizeDate(blank) = %q, %v", got, err)
	}
	got, err = NormalizeDate(" 2025-01-31 ", now)
	if err != nil || got != "2025-01-31" {
		t.Fatalf("NormalizeDate = %q, %v", got, err)
	}
	if _, err := NormalizeDate("31/01/2025", now); err == nil {
		t.Fatal("expected error for wrong layout")
	}
}

func TestNormalizeTime(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 4, 9, 15, 30, 0, 0, time.UTC)
	if got, err := NormalizeTime("", now); err != nil || got != "15:30" {
		t.Fatalf("NormalizeTime(blank) = %q, %v", got, err)
	}
	if _, err := NormalizeTime("25:99", now); err == nil {
		t.Fatal("expected error for invalid time")
	}
}

func TestInRange(t *testing.T) {
	t.Parallel()

	if !InRange("2025-02-10", "2025-02-01", "2025-02-28") {
		t.Fatal("expected in range")
	}
	if InRange("2025-03-01", "", "2025-02-28") {
		t.Fatal("expected after upper bound")
	}
	if !InRange("2020-01-01", "", "") {
		t.Fatal("expected open range to match")
	}
}

func TestPeriodBounds(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)
	tests := []struct {
		period   Period
		from, to string
	}{
		{PeriodMonth, "2024-05-01", "2024-05-31"},
		{PeriodQuarter, "2024-04-01", "2024-06-30"},
		{PeriodYear, "2024-01-01", "2024-12-31"},
		{PeriodAll, "", ""},
	}
	for _, tt := range tests {
		from, to := tt.period.Bounds(now)
		if from != tt.from || to != tt.to {
			t.Fatalf("%s bounds = %s..%s, want %s..%s", tt.period, from, to, tt.from, tt.to)
		}
	}
	if from, to := PeriodMonth.Bounds(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)); from != "2024-02-01" || to != "2024-02-29" {
		t.Fatalf("leap february = %s..%s", from, to)
	}
}

func TestParsePeriod(t *testing.T) {
	t.Parallel()

	if p, err := ParsePeriod(""); err != nil || p != PeriodAll {
		t.Fatalf("ParsePeriod(blank) = %q, %v", p, err)
	}
	if p, err := ParsePeriod(" Quarter "); err != nil || p != PeriodQuarter {
		t.Fatalf("ParsePeriod = %q, %v", p, err)
	}
	if _, err := ParsePeriod("week"); err == nil {
		t.Fatal("expected error for unknown period")
	}
}
