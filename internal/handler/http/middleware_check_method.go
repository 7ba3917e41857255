// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler for [chi.Mux.MethodNotAllowed] that
// answers a JSON 405 with an Allow header listing the methods registered for
// the exact request path. Paths with no registered route get a JSON 404.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var found *chi.Route
		routes := router.Routes()
		for i := range routes {
			if routes[i].Pattern == r.URL.Path {
				found = &routes[i]
				break
			}
		}

		if found == nil {
			notFound(w, r)
			return
		}

		for method := range found.Handlers {
			w.Header().Add("Allow", method)
		}
		writeJSON(w, r, errorResponse{Message: http.StatusText(http.StatusMethodNotAllowed)}, http.StatusMethodNotAllowed)
	}
}

// notFound answers a JSON 404 for paths with no registered route.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, errorResponse{Message: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
}
