package money

import (
	"testing"

	"golang.org/x/text/language"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag    language.Tag
		amount Amount
		want   string
	}{
		{Indonesian, FromInt(1234567), "1.234.567"},
		{Indonesian, FromInt(0), "0"},
		{Indonesian, FromFloat(999.6), "1.000"},
		{language.AmericanEnglish, FromInt(1234567), "1,234,567"},
	}
	for _, tc := range tests {
		if got := Format(tc.tag, tc.amount); got != tc.want {
			t.Fatalf("Format(%v, %s) = %q, want %q", tc.tag, tc.amount, got, tc.want)
		}
	}
}

func TestFormatRupiah(t *testing.T) {
	t.Parallel()

	if got := FormatRupiah(Indonesian, FromInt(2500000)); got != "Rp 2.500.000" {
		t.Fatalf("FormatRupiah(id) = %q", got)
	}
	if got := FormatRupiah(language.AmericanEnglish, FromInt(2500000)); got != "Rp 2,500,000" {
		t.Fatalf("FormatRupiah(en) = %q", got)
	}
}

func TestPercentAndRatio(t *testing.T) {
	t.Parallel()

	if got := Percent(FromInt(1000000), FromInt(11)); !got.Equal(FromInt(110000)) {
		t.Fatalf("Percent = %s", got)
	}
	if got := Ratio(FromInt(25), FromInt(200)); !got.Equal(FromFloat(12.5)) {
		t.Fatalf("Ratio = %s", got)
	}
	if got := Ratio(FromInt(5), Zero()); !got.IsZero() {
		t.Fatalf("Ratio over zero = %s", got)
	}
	if got := Sum(FromInt(1), FromInt(2), FromInt(3)); !got.Equal(FromInt(6)) {
		t.Fatalf("Sum = %s", got)
	}
}
