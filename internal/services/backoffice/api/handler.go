// Package api serves the back-office JSON API, CSV exports and the
// dashboard page.
package api

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/tppb-bridge/backoffice/internal/platform/authtoken"
	"github.com/tppb-bridge/backoffice/internal/platform/logging"
	approvalsmodule "github.com/tppb-bridge/backoffice/internal/services/backoffice/api/module/approvals"
	customsmodule "github.com/tppb-bridge/backoffice/internal/services/backoffice/api/module/customs"
	dashboardmodule "github.com/tppb-bridge/backoffice/internal/services/backoffice/api/module/dashboard"
	exportmodule "github.com/tppb-bridge/backoffice/internal/services/backoffice/api/module/export"
	ledgermodule "github.com/tppb-bridge/backoffice/internal/services/backoffice/api/module/ledger"
	registrymodule "github.com/tppb-bridge/backoffice/internal/services/backoffice/api/module/registry"
	reportsmodule "github.com/tppb-bridge/backoffice/internal/services/backoffice/api/module/reports"
	transactionsmodule "github.com/tppb-bridge/backoffice/internal/services/backoffice/api/module/transactions"
	warehousemodule "github.com/tppb-bridge/backoffice/internal/services/backoffice/api/module/warehouse"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/service"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// Options configures the handler.
type Options struct {
	Logger *zap.Logger
	// Auth verifies operator session tokens; an empty secret disables auth.
	Auth authtoken.Config
	Now  func() time.Time
}

// Handler routes back-office requests.
type Handler struct {
	svc     *service.Service
	logger  *zap.Logger
	auth    authtoken.Config
	now     func() time.Time
	handler http.Handler
}

// New builds the handler with every route module registered.
func New(svc *service.Service, opts Options) (*Handler, error) {
	if svc == nil {
		return nil, errors.New("service is required")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	h := &Handler{
		svc:    svc,
		logger: logging.OrNop(opts.Logger),
		auth:   opts.Auth,
		now:    now,
	}

	mux := http.NewServeMux()
	dashboardmodule.RegisterRoutes(mux, h)
	registrymodule.RegisterRoutes(mux, h)
	customsmodule.RegisterRoutes(mux, h)
	warehousemodule.RegisterRoutes(mux, h)
	transactionsmodule.RegisterRoutes(mux, h)
	approvalsmodule.RegisterRoutes(mux, h)
	ledgermodule.RegisterRoutes(mux, h)
	reportsmodule.RegisterRoutes(mux, h)
	exportmodule.RegisterRoutes(mux, h)

	h.handler = withLocale(h.requireAuth(mux))
	return h, nil
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
