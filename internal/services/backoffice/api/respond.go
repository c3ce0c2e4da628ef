package api

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/requestctx"
	"github.com/tppb-bridge/backoffice/internal/services/backoffice/storage"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type listBody[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func newListBody[T any](items []T) listBody[T] {
	if items == nil {
		items = []T{}
	}
	return listBody[T]{Items: items, Total: len(items)}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders err as a localized JSON error. Server faults are logged
// at error level; client faults at debug.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", fields...)
	} else {
		h.logger.Debug("request rejected", fields...)
	}

	detail := errorDetail{
		Code:    string(apperrors.CodeOf(err)),
		Message: apperrors.LocalizedMessage(err, requestctx.LocaleFromContext(r.Context())),
	}
	var coded *apperrors.Error
	if stderrors.As(err, &coded) {
		detail.Field = coded.Metadata["Field"]
	}
	writeJSON(w, status, errorBody{Error: detail})
}

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched when optional is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, optional bool) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()
	err := json.NewDecoder(body).Decode(dst)
	switch {
	case err == nil:
		return nil
	case optional && stderrors.Is(err, io.EOF):
		return nil
	default:
		return apperrors.Wrap(apperrors.CodeInvalidArgument, "invalid request body", err)
	}
}

func listQuery(r *http.Request) storage.ListQuery {
	q := r.URL.Query()
	return storage.ListQuery{Filter: q.Get("filter"), Search: q.Get("q")}
}
