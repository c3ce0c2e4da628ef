package id

import (
	"encoding/base32"
	"strings"
	"testing"
	"time"
)

func TestNewIDFormat(t *testing.T) {
	id, err := NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if strings.Contains(id, "=") {
		t.Fatal("expected no padding")
	}
	if len(id) != 26 {
		t.Fatalf("expected 26-character id, got %d", len(id))
	}
	for _, r := range id {
		if (r < 'a' || r > 'z') && (r < '2' || r > '7') {
			t.Fatalf("unexpected character %q in id", r)
		}
	}

	decoded, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(strings.ToUpper(id))
	if err != nil {
		t.Fatalf("decode id: %v", err)
	}
	if version := decoded[6] >> 4; version != 4 {
		t.Fatalf("expected version 4, got %d", version)
	}
	if variant := decoded[8] & 0xC0; variant != 0x80 {
		t.Fatalf("expected variant 0x80, got 0x%X", variant)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]struct{}, 64)
	for i := 0; i < 64; i++ {
		id, err := NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestNumber(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1718000123456)
	tests := []struct {
		name     string
		prefix   string
		recordID string
		want     string
	}{
		{name: "prefix and id", prefix: "qt", recordID: "abcdefghij2345", want: "QT-1718000123456-IJ2345"},
		{name: "short id", prefix: "INV", recordID: "id-7", want: "INV-1718000123456-ID7"},
		{name: "no id", prefix: "GM", want: "GM-1718000123456"},
		{name: "no prefix", recordID: "x1", want: "1718000123456-X1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Number(tt.prefix, now, tt.recordID); got != tt.want {
				t.Fatalf("Number = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNumberDistinctWithinMillisecond(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1718000123456)
	seen := make(map[string]struct{}, 64)
	for i := 0; i < 64; i++ {
		recordID, err := NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		number := Number("QT", now, recordID)
		if _, ok := seen[number]; ok {
			t.Fatalf("duplicate number %q", number)
		}
		seen[number] = struct{}{}
	}
}

func TestShortNumber(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1718000123456)
	if got := ShortNumber("BC23", now); got != "BC23-123456" {
		t.Fatalf("ShortNumber = %q, want %q", got, "BC23-123456")
	}
}
