package api

import (
	"context"
	"net/http"

	"github.com/tppb-bridge/backoffice/internal/services/backoffice/storage"
)

type idHandler func(w http.ResponseWriter, r *http.Request, id string)

// resource adapts service use cases to crud.Resource. Nil handlers answer
// 405.
type resource struct {
	list   http.HandlerFunc
	create http.HandlerFunc
	get    idHandler
	update idHandler
	remove idHandler
}

func (res resource) HandleList(w http.ResponseWriter, r *http.Request) {
	if res.list == nil {
		methodNotAllowed(w)
		return
	}
	res.list(w, r)
}

func (res resource) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if res.create == nil {
		methodNotAllowed(w)
		return
	}
	res.create(w, r)
}

func (res resource) HandleGet(w http.ResponseWriter, r *http.Request, id string) {
	if res.get == nil {
		methodNotAllowed(w)
		return
	}
	res.get(w, r, id)
}

func (res resource) HandleUpdate(w http.ResponseWriter, r *http.Request, id string) {
	if res.update == nil {
		methodNotAllowed(w)
		return
	}
	res.update(w, r, id)
}

func (res resource) HandleDelete(w http.ResponseWriter, r *http.Request, id string) {
	if res.remove == nil {
		methodNotAllowed(w)
		return
	}
	res.remove(w, r, id)
}

func methodNotAllowed(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func listJSON[T any](h *Handler, fn func(context.Context, storage.ListQuery) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := fn(r.Context(), listQuery(r))
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, newListBody(items))
	}
}

func getJSON[T any](h *Handler, fn func(context.Context, string) (T, error)) idHandler {
	return func(w http.ResponseWriter, r *http.Request, id string) {
		item, err := fn(r.Context(), id)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func createJSON[I, T any](h *Handler, fn func(context.Context, I) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input I
		if err := decodeJSON(w, r, &input, false); err != nil {
			h.writeError(w, r, err)
			return
		}
		item, err := fn(r.Context(), input)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, item)
	}
}

func updateJSON[I, T any](h *Handler, fn func(context.Context, string, I) (T, error)) idHandler {
	return func(w http.ResponseWriter, r *http.Request, id string) {
		var input I
		if err := decodeJSON(w, r, &input, false); err != nil {
			h.writeError(w, r, err)
			return
		}
		item, err := fn(r.Context(), id, input)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func deleteJSON(h *Handler, fn func(context.Context, string) error) idHandler {
	return func(w http.ResponseWriter, r *http.Request, id string) {
		if err := fn(r.Context(), id); err != nil {
			h.writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
