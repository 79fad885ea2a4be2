// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] meant to be registered as
// the router's MethodNotAllowed handler.
//
// Chi responds with HTTP 405 whenever a path matches a registered route but
// the method does not. This handler answers 404 instead, so that probing a
// known path with an unsupported method does not reveal the route exists.
// Requests whose method IS registered for the matched path are forwarded to
// the router's normal pipeline.
//
// Matching compares route patterns against the raw request path, so only
// exact pattern matches are considered.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var matched chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				matched = route
				break
			}
		}

		if _, ok := matched.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
