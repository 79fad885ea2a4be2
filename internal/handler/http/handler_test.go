// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

package http

import (
	"context"
	"testing"

	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/internal/service"
	"github.com/ebelikov/lotus/internal/utils"
	"github.com/ebelikov/lotus/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockProfileService implements service.ProfileService for unit tests.
type mockProfileService struct {
	getUserFn       func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFn func(ctx context.Context, userID int64, update models.ProfileUpdate, avatar *models.AvatarUpload) (models.UpdatedProfile, error)
}

func (m *mockProfileService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate, avatar *models.AvatarUpload) (models.UpdatedProfile, error) {
	return m.updateProfileFn(ctx, userID, update, avatar)
}

// mockPointsService implements service.PointsService for unit tests.
type mockPointsService struct {
	getPointsFn   func(ctx context.Context, userID int64) (int64, error)
	awardPointsFn func(ctx context.Context, userID int64) (int64, error)
}

func (m *mockPointsService) GetPoints(ctx context.Context, userID int64) (int64, error) {
	return m.getPointsFn(ctx, userID)
}

func (m *mockPointsService) AwardPoints(ctx context.Context, userID int64) (int64, error) {
	return m.awardPointsFn(ctx, userID)
}

// mockAppInfoService implements service.AppInfoService for unit tests.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the supplied mocks. Nil mocks are
// replaced with empty ones so that an unexpected call panics loudly.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.ProfileService == nil {
		svcs.ProfileService = &mockProfileService{}
	}
	if svcs.PointsService == nil {
		svcs.PointsService = &mockPointsService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}

	return NewHandler(svcs, logger.Nop())
}

// ctxWithUserID mimics what the auth middleware does on success.
func ctxWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, utils.UserIDCtxKey, userID)
}
