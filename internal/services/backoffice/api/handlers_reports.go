package api

import (
	"net/http"

	"github.com/tppb-bridge/backoffice/internal/platform/calendar"
	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/requestctx"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/activity"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/service"
)

type sessionBody struct {
	Operator    string `json:"operator"`
	Role        string `json:"role,omitempty"`
	Locale      string `json:"locale"`
	AuthEnabled bool   `json:"auth_enabled"`
}

type datasetsBody struct {
	Datasets []string `json:"datasets"`
}

func periodParam(r *http.Request) (calendar.Period, error) {
	period, err := calendar.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		return "", apperrors.Invalid("period", err.Error())
	}
	return period, nil
}

// HandleDashboardReport returns the dashboard summary as JSON.
func (h *Handler) HandleDashboardReport(w http.ResponseWriter, r *http.Request) {
	period, err := periodParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	dash, err := h.svc.Dashboard(r.Context(), period)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}

// HandleRevenue analyzes revenue for ?period=.
func (h *Handler) HandleRevenue(w http.ResponseWriter, r *http.Request) {
	period, err := periodParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	revenue, err := h.svc.Revenue(r.Context(), period)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, revenue)
}

// HandlePabean counts customs activity.
func (h *Handler) HandlePabean(w http.ResponseWriter, r *http.Request) {
	pabean, err := h.svc.Pabean(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pabean)
}

// HandleActivityList lists the audit trail.
func (h *Handler) HandleActivityList(w http.ResponseWriter, r *http.Request) {
	listJSON(h, h.svc.ListActivity)(w, r)
}

// HandleSession describes the acting operator.
func (h *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	body := sessionBody{
		Operator:    requestctx.OperatorName(r.Context(), activity.DefaultUser),
		Locale:      requestctx.LocaleFromContext(r.Context()),
		AuthEnabled: h.auth.Enabled(),
	}
	if op, ok := requestctx.OperatorFromContext(r.Context()); ok {
		body.Role = op.Role
	}
	writeJSON(w, http.StatusOK, body)
}

// HandleExportIndex lists the exportable datasets.
func (h *Handler) HandleExportIndex(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, datasetsBody{Datasets: service.ExportDatasets()})
}
