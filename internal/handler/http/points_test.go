// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ebelikov/lotus/internal/app"
	"github.com/ebelikov/lotus/internal/service"
	"github.com/ebelikov/lotus/internal/store"
	"github.com/ebelikov/lotus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPoints_Success(t *testing.T) {
	points := &mockPointsService{
		getPointsFn: func(_ context.Context, userID int64) (int64, error) {
			require.Equal(t, int64(42), userID)
			return 1200, nil
		},
	}

	h := newTestHandler(t, &service.Services{PointsService: points})
	req := httptest.NewRequest(http.MethodGet, "/api/points", nil)
	req = req.WithContext(ctxWithUserID(req.Context(), 42))
	rec := httptest.NewRecorder()

	h.getPoints(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PointsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1200), resp.Points)
}

func TestGetPoints_NotFound(t *testing.T) {
	points := &mockPointsService{
		getPointsFn: func(_ context.Context, _ int64) (int64, error) {
			return 0, store.ErrUserNotFound
		},
	}

	h := newTestHandler(t, &service.Services{PointsService: points})
	req := httptest.NewRequest(http.MethodGet, "/api/points", nil)
	req = req.WithContext(ctxWithUserID(req.Context(), 42))
	rec := httptest.NewRecorder()

	h.getPoints(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgUserNotFound)
}

func TestAwardPoints_Success(t *testing.T) {
	points := &mockPointsService{
		awardPointsFn: func(_ context.Context, userID int64) (int64, error) {
			require.Equal(t, int64(42), userID)
			return 1300, nil
		},
	}

	h := newTestHandler(t, &service.Services{PointsService: points})
	req := httptest.NewRequest(http.MethodPost, "/api/points", nil)
	req = req.WithContext(ctxWithUserID(req.Context(), 42))
	rec := httptest.NewRecorder()

	h.awardPoints(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AwardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, app.MsgPointsAwarded, resp.Message)
	assert.Equal(t, int64(1300), resp.NewPoints)
}

// The award amount is fixed server-side; whatever body a client sends along
// with the POST is irrelevant to the outcome.
func TestAwardPoints_RequestBodyIgnored(t *testing.T) {
	points := &mockPointsService{
		awardPointsFn: func(_ context.Context, _ int64) (int64, error) {
			return 100, nil
		},
	}

	h := newTestHandler(t, &service.Services{PointsService: points})
	req := httptest.NewRequest(http.MethodPost, "/api/points",
		strings.NewReader(`{"amount":999999}`))
	req = req.WithContext(ctxWithUserID(req.Context(), 42))
	rec := httptest.NewRecorder()

	h.awardPoints(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AwardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.NewPoints)
}

func TestAwardPoints_RepositoryError(t *testing.T) {
	points := &mockPointsService{
		awardPointsFn: func(_ context.Context, _ int64) (int64, error) {
			return 0, errors.New("connection refused")
		},
	}

	h := newTestHandler(t, &service.Services{PointsService: points})
	req := httptest.NewRequest(http.MethodPost, "/api/points", nil)
	req = req.WithContext(ctxWithUserID(req.Context(), 42))
	rec := httptest.NewRecorder()

	h.awardPoints(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
