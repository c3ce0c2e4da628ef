package backoffice

import (
	"flag"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(flag.NewFlagSet("backoffice", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	want := Config{
		HTTPAddr:      ":8090",
		DBPath:        "data/backoffice.db",
		SessionIssuer: "tppb-backoffice",
		LogLevel:      "info",
		TaxRate:       11,
		Locale:        "id-ID",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("TPPB_HTTP_ADDR", ":9000")
	t.Setenv("TPPB_SESSION_SECRET", "s3cret")

	cfg, err := ParseConfig(flag.NewFlagSet("backoffice", flag.ContinueOnError), []string{"-http-addr", "127.0.0.1:7000", "-log-level", "debug"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:7000" || cfg.LogLevel != "debug" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if !cfg.AuthConfig().Enabled() {
		t.Fatal("expected auth enabled with a session secret")
	}
}

func TestParseConfigRejectsTaxRate(t *testing.T) {
	t.Setenv("TPPB_DEFAULT_TAX_RATE", "150")

	if _, err := ParseConfig(flag.NewFlagSet("backoffice", flag.ContinueOnError), nil); err == nil {
		t.Fatal("expected tax rate error")
	}
}
