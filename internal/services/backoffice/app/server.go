// Package app wires the back-office store, use cases and HTTP lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tppb-bridge/backoffice/internal/platform/authtoken"
	"github.com/tppb-bridge/backoffice/internal/platform/logging"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
	"github.com/tppb-bridge/backoffice/internal/platform/timeouts"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/api"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/service"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/storage/sqlite"
)

// Config holds the runtime dependencies of a Server.
type Config struct {
	HTTPAddr string
	DBPath   string
	Auth     authtoken.Config
	// TaxRate is the default quotation VAT percentage; nil keeps the
	// domain default.
	TaxRate *money.Amount
	Logger  *zap.Logger
	Now     func() time.Time
}

// Server hosts the back-office HTTP API and storage lifecycle.
type Server struct {
	listener   net.Listener
	httpServer *http.Server
	store      *sqlite.Store
	logger     *zap.Logger
}

// New opens the store, builds the handler and listens on cfg.HTTPAddr.
func New(ctx context.Context, cfg Config) (*Server, error) {
	logger := logging.OrNop(cfg.Logger)
	store, err := OpenStore(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}
	svc, err := service.New(store, service.Options{Logger: logger, Now: cfg.Now, TaxRate: cfg.TaxRate})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("build service: %w", err)
	}
	handler, err := api.New(svc, api.Options{Logger: logger, Auth: cfg.Auth, Now: cfg.Now})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("build api handler: %w", err)
	}

	listener, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("listen on %s: %w", cfg.HTTPAddr, err)
	}
	return &Server{
		listener: listener,
		httpServer: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			WriteTimeout:      timeouts.Write,
			IdleTimeout:       timeouts.Idle,
			ErrorLog:          zap.NewStdLog(logger),
		},
		store:  store,
		logger: logger,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve handles requests until context cancellation, then drains in-flight
// requests within timeouts.Shutdown.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	s.logger.Info("backoffice listening", zap.String("addr", s.Addr()))
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http: %w", err)
		}
		if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	case err := <-serveErr:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("close backoffice store", zap.Error(err))
		}
		s.store = nil
	}
}

// OpenStore creates the database directory and opens the migrated store.
func OpenStore(ctx context.Context, path string) (*sqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = filepath.Join("data", "backoffice.db")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open backoffice sqlite store: %w", err)
	}
	return store, nil
}
