package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tppb-bridge/backoffice/internal/platform/authtoken"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/service"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/storage/sqlite"
)

var fixedNow = time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)

func newTestHandler(t *testing.T, auth authtoken.Config) *Handler {
	t.Helper()
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "backoffice.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	clock := func() time.Time { return fixedNow }
	svc, err := service.New(store, service.Options{Now: clock})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	h, err := New(svc, Options{Auth: auth, Now: clock})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	return h
}

func do(t *testing.T, h http.Handler, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestNewRequiresService(t *testing.T) {
	t.Parallel()

	if _, err := New(nil, Options{}); err == nil {
		t.Fatal("expected error for nil service")
	}
}

func TestCustomerCRUD(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, authtoken.Config{})
	rec := do(t, h, http.MethodPost, "/api/customers", `{"name":"PT Maju","email":"ops@maju.id"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	created := decode[struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}](t, rec)
	if created.ID == "" || created.Name != "PT Maju" {
		t.Fatalf("created = %+v", created)
	}

	rec = do(t, h, http.MethodPut, "/api/customers/"+created.ID, `{"name":"PT Maju Jaya"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodGet, "/api/customers?q=jaya", "", nil)
	list := decode[struct {
		Items []struct {
			Name string `json:"name"`
		} `json:"items"`
		Total int `json:"total"`
	}](t, rec)
	if list.Total != 1 || list.Items[0].Name != "PT Maju Jaya" {
		t.Fatalf("list = %+v", list)
	}

	rec = do(t, h, http.MethodDelete, "/api/customers/"+created.ID, "", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec = do(t, h, http.MethodGet, "/api/customers/"+created.ID, "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get deleted status = %d", rec.Code)
	}
}

func TestErrorsAreLocalized(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, authtoken.Config{})
	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
		want   errorDetail
	}{
		{
			name:   "invalid filter",
			method: http.MethodGet,
			target: "/api/customers?lang=en&filter=" + "nope%20%3D%20%22x%22",
			status: http.StatusBadRequest,
			want:   errorDetail{Code: "INVALID_FILTER", Message: "The filter expression could not be understood."},
		},
		{
			name:   "missing record",
			method: http.MethodGet,
			target: "/api/vendors/missing?lang=en",
			status: http.StatusNotFound,
			want:   errorDetail{Code: "NOT_FOUND", Message: "The vendor was not found."},
		},
		{
			name:   "malformed body",
			method: http.MethodPost,
			target: "/api/vendors?lang=id",
			body:   `{"name":`,
			status: http.StatusBadRequest,
			want:   errorDetail{Code: "INVALID_ARGUMENT", Message: "Permintaan tidak valid."},
		},
		{
			name:   "empty export",
			method: http.MethodGet,
			target: "/export/vendors.csv?lang=en",
			status: http.StatusNotFound,
			want:   errorDetail{Code: "EXPORT_NO_DATA", Message: "There is no data to export."},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, tc.method, tc.target, tc.body, nil)
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tc.status, rec.Body.String())
			}
			got := decode[errorBody](t, rec)
			if diff := cmp.Diff(tc.want, got.Error); diff != "" {
				t.Fatalf("error mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRejectsAreImmutable(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, authtoken.Config{})
	rec := do(t, h, http.MethodPut, "/api/rejects/r-1", `{}`, nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestQuotationToMovementFlow(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, authtoken.Config{})
	rec := do(t, h, http.MethodPost, "/api/quotations",
		`{"direction":"inbound","customer_name":"PT Expo","items":[{"name":"Panel","quantity":2,"value":"1000000"}]}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create quotation status = %d, body %s", rec.Code, rec.Body.String())
	}
	q := decode[struct {
		ID string `json:"id"`
	}](t, rec)

	rec = do(t, h, http.MethodPost, "/api/quotations/"+q.ID+"/confirm", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("confirm status = %d, body %s", rec.Code, rec.Body.String())
	}
	confirmed := decode[struct {
		BCDocument struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"bc_document"`
	}](t, rec)
	if confirmed.BCDocument.Status != "pending" {
		t.Fatalf("bc document = %+v", confirmed.BCDocument)
	}

	rec = do(t, h, http.MethodPost, "/api/bc-documents/"+confirmed.BCDocument.ID+"/approve", `{"approver":"Budi"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("approve status = %d, body %s", rec.Code, rec.Body.String())
	}
	approved := decode[struct {
		Movement struct {
			Status string `json:"status"`
		} `json:"goods_movement"`
	}](t, rec)
	if approved.Movement.Status != "pending_inspection" {
		t.Fatalf("movement = %+v", approved.Movement)
	}

	rec = do(t, h, http.MethodPost, "/api/bc-documents/"+confirmed.BCDocument.ID+"/approve", `{"approver":"Budi"}`, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("second approve status = %d", rec.Code)
	}
}

func TestAuthRequiresToken(t *testing.T) {
	t.Parallel()

	cfg := authtoken.Config{Secret: []byte("test-secret"), Issuer: "tppb-backoffice", Now: func() time.Time { return time.Now() }}
	h := newTestHandler(t, cfg)

	if rec := do(t, h, http.MethodGet, "/healthz", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("health status = %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/api/session", "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous status = %d", rec.Code)
	}

	token, err := authtoken.Issue(cfg, "siti", "", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	rec := do(t, h, http.MethodGet, "/api/session", "", map[string]string{"Authorization": "Bearer " + token})
	if rec.Code != http.StatusOK {
		t.Fatalf("session status = %d, body %s", rec.Code, rec.Body.String())
	}
	got := decode[sessionBody](t, rec)
	want := sessionBody{Operator: "siti", Role: authtoken.DefaultRole, Locale: "id-ID", AuthEnabled: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("session mismatch (-want +got):\n%s", diff)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	cookieRec := httptest.NewRecorder()
	h.ServeHTTP(cookieRec, req)
	if cookieRec.Code != http.StatusOK {
		t.Fatalf("cookie session status = %d", cookieRec.Code)
	}
}

func TestExportCSV(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, authtoken.Config{})
	if rec := do(t, h, http.MethodPost, "/api/bc-codes", `{"code":"BC 2.3","name":"Impor","category":"inbound"}`, nil); rec.Code != http.StatusCreated {
		t.Fatalf("create bc code status = %d, body %s", rec.Code, rec.Body.String())
	}
	rec := do(t, h, http.MethodGet, "/export/bc-codes.csv", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("export status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/csv") {
		t.Fatalf("content type = %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="bc-codes_2025-07-14.csv"` {
		t.Fatalf("content disposition = %q", got)
	}
	if !strings.Contains(rec.Body.String(), "BC 2.3") {
		t.Fatalf("body = %q", rec.Body.String())
	}

	rec = do(t, h, http.MethodGet, "/export", "", nil)
	datasets := decode[datasetsBody](t, rec)
	if len(datasets.Datasets) == 0 {
		t.Fatal("expected export datasets")
	}
}

func TestDashboardPages(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, authtoken.Config{})
	rec := do(t, h, http.MethodGet, "/?lang=en", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("page status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `hx-get="/dashboard/content"`) || !strings.Contains(body, "TPPB Back Office") {
		t.Fatalf("page body = %s", body)
	}
	if cookie := rec.Result().Cookies(); len(cookie) == 0 || cookie[0].Name != "tppb_lang" {
		t.Fatalf("expected language cookie, got %v", cookie)
	}

	rec = do(t, h, http.MethodGet, "/dashboard/content?period=month", "", map[string]string{"Accept-Language": "id"})
	if rec.Code != http.StatusOK {
		t.Fatalf("content status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Pabean") || !strings.Contains(rec.Body.String(), "Rp 0") {
		t.Fatalf("content body = %s", rec.Body.String())
	}

	rec = do(t, h, http.MethodGet, "/", "", map[string]string{"HX-Request": "true", "Accept-Language": "en"})
	if strings.Contains(rec.Body.String(), "<!DOCTYPE html>") {
		t.Fatal("htmx request should render the partial")
	}

	rec = do(t, h, http.MethodGet, "/?period=month%26lang%3Den", "", nil)
	if !strings.Contains(rec.Body.String(), `hx-get="/dashboard/content?period=month%26lang%3Den"`) {
		t.Fatalf("content url not encoded: %s", rec.Body.String())
	}
}
