package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int    `env:"TEST_PORT" envDefault:"123"`
	Addr string `env:"TEST_ADDR" envDefault:":8090"`
}

func TestParseEnvPrefixedDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnvPrefixed(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 || cfg.Addr != ":8090" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseEnvPrefixedReadsPrefix(t *testing.T) {
	t.Setenv("TPPB_TEST_ADDR", ":9999")
	t.Setenv("TEST_ADDR", ":1111")

	var cfg envTestConfig
	if err := ParseEnvPrefixed(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Fatalf("addr = %q, want %q", cfg.Addr, ":9999")
	}
}

func TestParseEnvPrefixedError(t *testing.T) {
	t.Setenv("TPPB_TEST_PORT", "not-an-int")

	var cfg envTestConfig
	err := ParseEnvPrefixed(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
