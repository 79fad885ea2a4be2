// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
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

// multipartRequest builds a POST /api/update-user request from the given
// text fields and optional avatar file content.
func multipartRequest(t *testing.T, fields map[string]string, avatarName string, avatarData []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}
	if avatarName != "" {
		part, err := mw.CreateFormFile(avatarFormField, avatarName)
		require.NoError(t, err)
		_, err = part.Write(avatarData)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/update-user", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req.WithContext(ctxWithUserID(req.Context(), 42))
}

func TestUpdateUser_FieldsOnly(t *testing.T) {
	var gotUpdate models.ProfileUpdate
	var gotAvatar *models.AvatarUpload

	profile := &mockProfileService{
		updateProfileFn: func(_ context.Context, userID int64, update models.ProfileUpdate, avatar *models.AvatarUpload) (models.UpdatedProfile, error) {
			require.Equal(t, int64(42), userID)
			gotUpdate = update
			gotAvatar = avatar
			return models.UpdatedProfile{FirstName: "Alice", LastName: "Liddell"}, nil
		},
	}

	h := newTestHandler(t, &service.Services{ProfileService: profile})
	req := multipartRequest(t, map[string]string{
		"first_name": "Alice",
		"last_name":  "Liddell",
	}, "", nil)
	rec := httptest.NewRecorder()

	h.updateUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, gotAvatar)
	require.NotNil(t, gotUpdate.FirstName)
	require.NotNil(t, gotUpdate.LastName)
	assert.Equal(t, "Alice", *gotUpdate.FirstName)
	assert.Equal(t, "Liddell", *gotUpdate.LastName)
	assert.Nil(t, gotUpdate.AvatarURL)

	var resp models.UpdateUserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, app.MsgProfileUpdated, resp.Message)
	assert.Equal(t, "Alice", resp.User.FirstName)
	assert.Equal(t, "Liddell", resp.User.LastName)

	// the reply carries the updated columns and nothing else: no id,
	// no email, no points
	assert.NotContains(t, rec.Body.String(), "email")
	assert.NotContains(t, rec.Body.String(), "points")
}

// An absent field leaves the column untouched; a present-but-empty field
// clears it. The two must reach the service differently.
func TestUpdateUser_EmptyFieldClears(t *testing.T) {
	var gotUpdate models.ProfileUpdate

	profile := &mockProfileService{
		updateProfileFn: func(_ context.Context, _ int64, update models.ProfileUpdate, _ *models.AvatarUpload) (models.UpdatedProfile, error) {
			gotUpdate = update
			return models.UpdatedProfile{}, nil
		},
	}

	h := newTestHandler(t, &service.Services{ProfileService: profile})
	req := multipartRequest(t, map[string]string{"first_name": ""}, "", nil)
	rec := httptest.NewRecorder()

	h.updateUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotUpdate.FirstName)
	assert.Equal(t, "", *gotUpdate.FirstName)
	assert.Nil(t, gotUpdate.LastName)
}

func TestUpdateUser_WithAvatar(t *testing.T) {
	avatarBytes := []byte("png-image-bytes")

	var gotAvatar *models.AvatarUpload
	profile := &mockProfileService{
		updateProfileFn: func(_ context.Context, _ int64, _ models.ProfileUpdate, avatar *models.AvatarUpload) (models.UpdatedProfile, error) {
			gotAvatar = avatar
			return models.UpdatedProfile{AvatarURL: "http://blob/lotus/alice-1.png"}, nil
		},
	}

	h := newTestHandler(t, &service.Services{ProfileService: profile})
	req := multipartRequest(t, nil, "me.png", avatarBytes)
	rec := httptest.NewRecorder()

	h.updateUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotAvatar)
	assert.Equal(t, "me.png", gotAvatar.Filename)
	assert.Equal(t, avatarBytes, gotAvatar.Data)
}

// An update carrying nothing at all is acknowledged with 200 and an
// informational message; the profile stays as it was.
func TestUpdateUser_NoFields(t *testing.T) {
	profile := &mockProfileService{
		updateProfileFn: func(_ context.Context, _ int64, _ models.ProfileUpdate, _ *models.AvatarUpload) (models.UpdatedProfile, error) {
			return models.UpdatedProfile{}, store.ErrNoFieldsToUpdate
		},
	}

	h := newTestHandler(t, &service.Services{ProfileService: profile})
	req := multipartRequest(t, nil, "", nil)
	rec := httptest.NewRecorder()

	h.updateUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, app.MsgNoFieldsToUpdate, resp.Message)
}

func TestUpdateUser_NotMultipart(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	req := httptest.NewRequest(http.MethodPost, "/api/update-user",
		strings.NewReader(`{"first_name":"Alice"}`))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(ctxWithUserID(req.Context(), 42))
	rec := httptest.NewRecorder()

	h.updateUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgInvalidDataProvided)
}

func TestUpdateUser_RejectedByValidation(t *testing.T) {
	profile := &mockProfileService{
		updateProfileFn: func(_ context.Context, _ int64, _ models.ProfileUpdate, _ *models.AvatarUpload) (models.UpdatedProfile, error) {
			return models.UpdatedProfile{}, service.ErrInvalidDataProvided
		},
	}

	h := newTestHandler(t, &service.Services{ProfileService: profile})
	req := multipartRequest(t, nil, "payload.exe", []byte("MZ"))
	rec := httptest.NewRecorder()

	h.updateUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgInvalidDataProvided)
}

func TestUpdateUser_AvatarStorageNotConfigured(t *testing.T) {
	profile := &mockProfileService{
		updateProfileFn: func(_ context.Context, _ int64, _ models.ProfileUpdate, _ *models.AvatarUpload) (models.UpdatedProfile, error) {
			return models.UpdatedProfile{}, service.ErrAvatarStorageNotConfigured
		},
	}

	h := newTestHandler(t, &service.Services{ProfileService: profile})
	req := multipartRequest(t, nil, "me.png", []byte("data"))
	rec := httptest.NewRecorder()

	h.updateUser(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
