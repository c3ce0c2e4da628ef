package requestctx

import (
	"context"
	"testing"
)

func TestOperatorRoundTrip(t *testing.T) {
	ctx := WithOperator(context.Background(), Operator{Name: "siti", Role: "admin"})
	got, ok := OperatorFromContext(ctx)
	if !ok {
		t.Fatal("expected operator")
	}
	if got.Name != "siti" || got.Role != "admin" {
		t.Fatalf("operator = %+v", got)
	}
	if name := OperatorName(ctx, "system"); name != "siti" {
		t.Fatalf("OperatorName = %q, want %q", name, "siti")
	}
}

func TestOperatorNameFallback(t *testing.T) {
	if name := OperatorName(context.Background(), "system"); name != "system" {
		t.Fatalf("OperatorName = %q, want fallback", name)
	}
	//nolint:staticcheck // nil context handling is part of the contract.
	if _, ok := OperatorFromContext(nil); ok {
		t.Fatal("expected no operator on nil context")
	}
}

func TestWithOperatorNilContext(t *testing.T) {
	//nolint:staticcheck // nil context handling is part of the contract.
	ctx := WithOperator(nil, Operator{Name: "budi"})
	if name := OperatorName(ctx, ""); name != "budi" {
		t.Fatalf("OperatorName = %q", name)
	}
}

func TestLocaleRoundTrip(t *testing.T) {
	ctx := WithLocale(context.Background(), "id-ID")
	if got := LocaleFromContext(ctx); got != "id-ID" {
		t.Fatalf("LocaleFromContext = %q", got)
	}
	if got := LocaleFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty locale, got %q", got)
	}
}
