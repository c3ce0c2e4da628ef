// Package id generates record identifiers and human-facing reference numbers.
package id

import (
	"encoding/base32"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewID returns a random UUIDv4 encoded as lowercase unpadded base32.
func NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return strings.ToLower(encoding.EncodeToString(value[:])), nil
}

// Number formats a reference number such as QT-1718000123456-X4K2QF. The
// suffix is the tail of recordID so numbers stamped in the same millisecond
// stay distinct.
func Number(prefix string, now time.Time, recordID string) string {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	number := strconv.FormatInt(now.UTC().UnixMilli(), 10)
	if suffix := numberSuffix(recordID); suffix != "" {
		number += "-" + suffix
	}
	if prefix == "" {
		return number
	}
	return prefix + "-" + number
}

const suffixLen = 6

func numberSuffix(recordID string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(recordID) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) > suffixLen {
		out = out[len(out)-suffixLen:]
	}
	return out
}

// ShortNumber formats a reference number using only the last six digits of
// the millisecond clock, e.g. BC23-123456.
func ShortNumber(prefix string, now time.Time) string {
	millis := strconv.FormatInt(now.UTC().UnixMilli(), 10)
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		return millis
	}
	return prefix + "-" + millis
}
