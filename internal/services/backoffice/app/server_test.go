package app

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestServerServesUntilCanceled(t *testing.T) {
	srv, err := New(context.Background(), Config{
		HTTPAddr: "127.0.0.1:0",
		DBPath:   filepath.Join(t.TempDir(), "nested", "backoffice.db"),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Fatalf("serve: %v", serveErr)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for server shutdown")
		}
	})

	base := "http://" + srv.Addr()
	resp, err := http.Post(base+"/api/customers", "application/json", strings.NewReader(`{"name":"PT Maju"}`))
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}

	resp, err = http.Get(base + "/api/customers")
	if err != nil {
		t.Fatalf("list customers: %v", err)
	}
	defer resp.Body.Close()
	var list struct {
		Total int `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Total != 1 {
		t.Fatalf("total = %d, want 1", list.Total)
	}
}

func TestNewFailsOnBadAddr(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), Config{
		HTTPAddr: "127.0.0.1:-1",
		DBPath:   filepath.Join(t.TempDir(), "backoffice.db"),
	})
	if err == nil {
		t.Fatal("expected listen error")
	}
}

func TestServeNilServer(t *testing.T) {
	t.Parallel()

	var s *Server
	if err := s.Serve(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
	s.Close()
}
