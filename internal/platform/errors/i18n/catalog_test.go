package i18n

import "testing"

func TestGetCatalogFallback(t *testing.T) {
	base := GetCatalog("en-US")
	if base == nil {
		t.Fatal("expected base catalog")
	}
	if got := GetCatalog("missing-locale"); got != base {
		t.Fatal("expected fallback to en-US catalog")
	}
	if got := GetCatalog(""); got != base {
		t.Fatal("expected empty locale to use en-US catalog")
	}
}

func TestGetCatalogMatchesLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"id-ID", "id-ID"},
		{"id", "id-ID"},
		{"en-GB", "en-US"},
	}
	for _, tc := range tests {
		if got := GetCatalog(tc.in).Locale(); got != tc.want {
			t.Fatalf("GetCatalog(%q).Locale() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCatalogsCoverSameCodes(t *testing.T) {
	for code := range enUSMessages {
		if _, ok := idIDMessages[code]; !ok {
			t.Fatalf("id-ID catalog missing %s", code)
		}
	}
	if len(enUSMessages) != len(idIDMessages) {
		t.Fatalf("catalog sizes differ: en=%d id=%d", len(enUSMessages), len(idIDMessages))
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "hello {{.Name}}",
	})

	if cat.Format("unknown", nil) != "unknown" {
		t.Fatal("expected code fallback when template missing")
	}
	if cat.Format("code", nil) != "hello <no value>" {
		t.Fatal("expected template to render missing metadata")
	}
}

func TestFormatTemplateErrorFallback(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "{{ if .Name }}",
	})
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ if .Name }}" {
		t.Fatal("expected template fallback on parse error")
	}
}

func TestFormatMetadata(t *testing.T) {
	got := GetCatalog("id-ID").Format("STOCK_INSUFFICIENT", map[string]string{"Available": "5"})
	if got != "Jumlah melebihi stok tersedia (5)." {
		t.Fatalf("format = %q", got)
	}
}

func TestRegisterCatalog(t *testing.T) {
	custom := NewCatalog("custom", map[Code]string{"code": "ok"})
	RegisterCatalog("custom", custom)
	if got := GetCatalog("custom"); got != custom {
		t.Fatal("expected registered catalog")
	}
}
