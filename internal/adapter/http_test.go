// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ebelikov/lotus/internal/config"
	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter points a fresh HTTP adapter at the given test server.
func newTestAdapter(t *testing.T, srv *httptest.Server) ServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "full url", raw: "https://lotus.example.com/", want: "https://lotus.example.com"},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogin_StoresBearerToken(t *testing.T) {
	const signedToken = "signed.jwt.token"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "alice@example.com", req.Email)

		w.Header().Set("Authorization", "Bearer "+signedToken)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SessionUser{
			ID:       42,
			Email:    req.Email,
			Username: "alice",
			Points:   "300",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	sessionUser, err := a.Login(context.Background(), models.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), sessionUser.ID)
	assert.Equal(t, "300", sessionUser.Points)
	assert.Equal(t, signedToken, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "invalid email/password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "x", Password: "y"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid email/password")
	assert.Empty(t, a.Token())
}

func TestRegister_ReturnsCreatedUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.RegisterResponse{
			Message: "user registered",
			User:    models.RegisteredUser{ID: 7, Email: "alice@example.com", Username: "alice"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	created, err := a.Register(context.Background(), models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), created.ID)
	// registration does not open a session
	assert.Empty(t, a.Token())
}

func TestAuthedRequests_CarryBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer stored.jwt", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/api/points":
			_ = json.NewEncoder(w).Encode(models.PointsResponse{Points: 500})
		case "/api/user":
			_ = json.NewEncoder(w).Encode(models.User{UserID: 42, Username: "alice"})
		case "/api/version":
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte("1.2.3\n"))
		default:
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	a.SetToken("stored.jwt")

	points, err := a.GetPoints(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(500), points)

	user, err := a.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	version, err := a.GetServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

func TestAwardPoints_ReturnsNewBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/points", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.AwardResponse{Message: "points awarded", NewPoints: 600})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	a.SetToken("stored.jwt")

	newPoints, err := a.AwardPoints(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(600), newPoints)
}

func TestUpdateProfile_SendsMultipartForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/update-user", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Alice", r.FormValue("first_name"))
		_, ok := r.MultipartForm.Value["last_name"]
		assert.False(t, ok, "absent fields must not appear in the form")

		file, header, err := r.FormFile("avatar")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "me.png", header.Filename)

		_ = json.NewEncoder(w).Encode(models.UpdateUserResponse{
			Message: "profile updated",
			User:    models.UpdatedProfile{FirstName: "Alice", AvatarURL: "http://blob/lotus/alice-1.png"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	a.SetToken("stored.jwt")

	firstName := "Alice"
	resp, err := a.UpdateProfile(context.Background(),
		models.ProfileUpdate{FirstName: &firstName},
		&models.AvatarUpload{Filename: "me.png", ContentType: "image/png", Data: []byte("png-bytes")},
	)
	require.NoError(t, err)
	assert.Equal(t, "Alice", resp.User.FirstName)
	assert.NotEmpty(t, resp.User.AvatarURL)
}

func TestMapHTTPError_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "user not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	a.SetToken("stored.jwt")

	_, err := a.GetProfile(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}
