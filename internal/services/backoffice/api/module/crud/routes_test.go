package crud

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeResource struct {
	lastCall string
	lastID   string
}

func (f *fakeResource) HandleList(http.ResponseWriter, *http.Request)   { f.lastCall = "list" }
func (f *fakeResource) HandleCreate(http.ResponseWriter, *http.Request) { f.lastCall = "create" }

func (f *fakeResource) HandleGet(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastID = "get", id
}

func (f *fakeResource) HandleUpdate(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastID = "update", id
}

func (f *fakeResource) HandleDelete(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastID = "delete", id
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	res := &fakeResource{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, "/api/things", res)

	tests := []struct {
		method   string
		path     string
		wantCall string
		wantID   string
	}{
		{method: http.MethodGet, path: "/api/things", wantCall: "list"},
		{method: http.MethodPost, path: "/api/things", wantCall: "create"},
		{method: http.MethodGet, path: "/api/things/t-1", wantCall: "get", wantID: "t-1"},
		{method: http.MethodPut, path: "/api/things/t-2", wantCall: "update", wantID: "t-2"},
		{method: http.MethodDelete, path: "/api/things/t-3", wantCall: "delete", wantID: "t-3"},
	}
	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			res.lastCall, res.lastID = "", ""
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			if res.lastCall != tc.wantCall || res.lastID != tc.wantID {
				t.Fatalf("call = %q/%q, want %q/%q", res.lastCall, res.lastID, tc.wantCall, tc.wantID)
			}
		})
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/things/t-1", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("PATCH status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestRegisterRoutesIgnoresNil(t *testing.T) {
	t.Parallel()

	RegisterRoutes(nil, "/api/things", &fakeResource{})
	RegisterRoutes(http.NewServeMux(), "/api/things", nil)
}
