// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/internal/store"
	"github.com/ebelikov/lotus/internal/utils"
	"github.com/ebelikov/lotus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	getUserByIDFn     func(ctx context.Context, userID int64) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	updateProfileFn   func(ctx context.Context, userID int64, update models.ProfileUpdate) (models.UpdatedProfile, error)
	getPointsFn       func(ctx context.Context, userID int64) (int64, error)
	addPointsFn       func(ctx context.Context, userID int64, amount int64) (int64, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.UpdatedProfile, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, userID, update)
	}
	return models.UpdatedProfile{}, nil
}

func (m *mockUserRepository) GetPoints(ctx context.Context, userID int64) (int64, error) {
	if m.getPointsFn != nil {
		return m.getPointsFn(ctx, userID)
	}
	return 0, nil
}

func (m *mockUserRepository) AddPoints(ctx context.Context, userID int64, amount int64) (int64, error) {
	if m.addPointsFn != nil {
		return m.addPointsFn(ctx, userID, amount)
	}
	return amount, nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestAuthService(repo store.UserRepository) *authService {
	return &authService{
		userRepository: repo,
		tokenSignKey:   "test-sign-key",
		tokenIssuer:    "lotus-test",
		tokenDuration:  time.Hour,
		logger:         logger.Nop(),
	}
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	var storedHash string
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			storedHash = user.PasswordHash
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(context.Background(), models.User{
		Email:        "john@example.com",
		Username:     "john",
		PasswordHash: "plaintext-password",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)

	// The repository must never see the plaintext.
	assert.NotEqual(t, "plaintext-password", storedHash)
	assert.True(t, utils.CheckPassword("plaintext-password", storedHash))
}

func TestAuthService_RegisterUser_MissingFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	tests := []struct {
		name string
		user models.User
	}{
		{"empty email", models.User{Username: "john", PasswordHash: "pw"}},
		{"empty username", models.User{Email: "john@example.com", PasswordHash: "pw"}},
		{"empty password", models.User{Email: "john@example.com", Username: "john"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.user)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.User{
		Email:        "john@example.com",
		Username:     "john",
		PasswordHash: "pw",
	})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 1, Email: email, PasswordHash: hash, Points: 300}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), "john@example.com", "correct-password")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, int64(300), user.Points)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 1, Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err = svc.Login(context.Background(), "john@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := newTestAuthService(repo)

	// A missing account must be indistinguishable from a wrong password.
	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NotErrorIs(t, err, store.ErrUserNotFound)
}

func TestAuthService_Login_RepositoryFault(t *testing.T) {
	repoErr := errors.New("unexpected DB error: connection refused")
	repo := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, repoErr
		},
	}
	svc := newTestAuthService(repo)

	// A repository fault is not a credential failure: it must propagate so
	// the handler answers 500, not 401.
	_, err := svc.Login(context.Background(), "john@example.com", "s3cret")
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, repoErr)
}

func TestAuthService_Login_EmptyStoredHash(t *testing.T) {
	repo := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 1, Email: email, PasswordHash: ""}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "john@example.com", "any-password")
	assert.ErrorIs(t, err, ErrMissingPasswordHash)
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), "", "password")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(context.Background(), "john@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(context.Background(), token.String())
	require.NoError(t, err)

	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestAuthService_ParseToken_WrongIssuer(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	foreign, err := utils.GenerateJWTToken("someone-else", 42, time.Hour, "test-sign-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), foreign.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongSignKey(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	forged, err := utils.GenerateJWTToken("lotus-test", 42, time.Hour, "other-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), forged.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	expired, err := utils.GenerateJWTToken("lotus-test", 42, -time.Minute, "test-sign-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), expired.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

var errRepository = errors.New("repository error")
