// Package crud registers the collection and record routes shared by every
// back-office resource.
package crud

import (
	"net/http"
)

// Resource defines the handlers of one JSON collection.
type Resource interface {
	HandleList(w http.ResponseWriter, r *http.Request)
	HandleCreate(w http.ResponseWriter, r *http.Request)
	HandleGet(w http.ResponseWriter, r *http.Request, id string)
	HandleUpdate(w http.ResponseWriter, r *http.Request, id string)
	HandleDelete(w http.ResponseWriter, r *http.Request, id string)
}

// RegisterRoutes wires collection routes for resource under prefix.
func RegisterRoutes(mux *http.ServeMux, prefix string, resource Resource) {
	if mux == nil || resource == nil || prefix == "" {
		return
	}
	item := prefix + "/{id}"
	mux.HandleFunc("GET "+prefix, resource.HandleList)
	mux.HandleFunc("POST "+prefix, resource.HandleCreate)
	HandleID(mux, "GET "+item, resource.HandleGet)
	HandleID(mux, "PUT "+item, resource.HandleUpdate)
	HandleID(mux, "DELETE "+item, resource.HandleDelete)
}

// HandleID registers pattern, passing its {id} wildcard to handle.
func HandleID(mux *http.ServeMux, pattern string, handle func(http.ResponseWriter, *http.Request, string)) {
	if mux == nil || handle == nil {
		return
	}
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		handle(w, r, r.PathValue("id"))
	})
}
