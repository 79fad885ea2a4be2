// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ebelikov/lotus/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestRoutes_ProtectedEndpointsRequireSession(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	router := h.Init()

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/user"},
		{http.MethodGet, "/api/points"},
		{http.MethodPost, "/api/points"},
		{http.MethodPost, "/api/update-user"},
	}

	for _, ep := range protected {
		t.Run(ep.method+" "+ep.path, func(t *testing.T) {
			req := httptest.NewRequest(ep.method, ep.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

// The build version discloses nothing about any account, so clients may
// fetch it without a session.
func TestRoutes_VersionIsPublic(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AppInfoService: &mockAppInfoService{version: "1.2.3"},
	})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
}

// An unsupported method on a known path is answered with 404, not 405, so
// that route existence is not revealed.
func TestRoutes_UnsupportedMethodHidesRoute(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/auth/register", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_UnknownPath(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
