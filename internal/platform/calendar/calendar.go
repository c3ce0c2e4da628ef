// Package calendar normalizes the business dates and clock times recorded on
// customs and warehouse documents.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the stored form of business dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the stored form of clock times.
	TimeLayout = "15:04"
)

// Today renders now as a business date.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// ParseDate parses a business date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must be YYYY-MM-DD", value)
	}
	return t, nil
}

// NormalizeDate validates value, defaulting blanks to today.
func NormalizeDate(value string, now time.Time) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Today(now), nil
	}
	if _, err := ParseDate(value); err != nil {
		return "", err
	}
	return value, nil
}

// NormalizeTime validates an HH:MM clock time, defaulting blanks to now.
func NormalizeTime(value string, now time.Time) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return now.Format(TimeLayout), nil
	}
	if _, err := time.Parse(TimeLayout, value); err != nil {
		return "", fmt.Errorf("time %q must be HH:MM", value)
	}
	return value, nil
}

// InRange reports whether date lies within [from, to]; blank bounds are open.
func InRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}

// Period is a reporting window relative to the current date.
type Period string

const (
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
	PeriodAll     Period = "all"
)

// ParsePeriod validates a period name; blank means all.
func ParsePeriod(value string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(value))); p {
	case "":
		return PeriodAll, nil
	case PeriodMonth, PeriodQuarter, PeriodYear, PeriodAll:
		return p, nil
	default:
		return "", fmt.Errorf("period %q must be month, quarter, year or all", value)
	}
}

// Bounds returns the inclusive business-date range of the period containing
// now. PeriodAll yields open bounds.
func (p Period) Bounds(now time.Time) (from, to string) {
	year, month, _ := now.Date()
	var start, end time.Time
	switch p {
	case PeriodMonth:
		start = time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 1, -1)
	case PeriodQuarter:
		first := time.Month((int(month)-1)/3*3 + 1)
		start = time.Date(year, first, 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 3, -1)
	case PeriodYear:
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())
		end = time.Date(year, time.December, 31, 0, 0, 0, 0, now.Location())
	default:
		return "", ""
	}
	return start.Format(DateLayout), end.Format(DateLayout)
}
