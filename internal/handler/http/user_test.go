// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ebelikov/lotus/internal/app"
	"github.com/ebelikov/lotus/internal/service"
	"github.com/ebelikov/lotus/internal/store"
	"github.com/ebelikov/lotus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUser_Success(t *testing.T) {
	profile := &mockProfileService{
		getUserFn: func(_ context.Context, userID int64) (models.User, error) {
			require.Equal(t, int64(42), userID)
			return models.User{
				UserID:   42,
				Email:    "alice@example.com",
				Username: "alice",
				Points:   500,
			}, nil
		},
	}

	h := newTestHandler(t, &service.Services{ProfileService: profile})
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req = req.WithContext(ctxWithUserID(req.Context(), 42))
	rec := httptest.NewRecorder()

	h.getUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.UserID)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, int64(500), resp.Points)

	// the password hash must never leak into the response
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestGetUser_NotFound(t *testing.T) {
	profile := &mockProfileService{
		getUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}

	h := newTestHandler(t, &service.Services{ProfileService: profile})
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req = req.WithContext(ctxWithUserID(req.Context(), 42))
	rec := httptest.NewRecorder()

	h.getUser(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgUserNotFound)
}

func TestGetUser_RepositoryError(t *testing.T) {
	profile := &mockProfileService{
		getUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, errors.New("connection refused")
		},
	}

	h := newTestHandler(t, &service.Services{ProfileService: profile})
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req = req.WithContext(ctxWithUserID(req.Context(), 42))
	rec := httptest.NewRecorder()

	h.getUser(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// A request that somehow reaches the handler without the middleware having
// stored a user ID is a server-side wiring fault.
func TestGetUser_MissingContextUserID(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	rec := httptest.NewRecorder()

	h.getUser(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
