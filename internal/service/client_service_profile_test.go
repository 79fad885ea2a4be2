// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Egor Belikov

package service

import (
	"context"
	"testing"

	"github.com/ebelikov/lotus/internal/adapter"
	"github.com/ebelikov/lotus/internal/app"
	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/internal/mock"
	"github.com/ebelikov/lotus/internal/store"
	"github.com/ebelikov/lotus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientProfileSvc(t *testing.T, ctrl *gomock.Controller) (ClientProfileService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewClientProfileService(mockAdapter, logger.Nop()), mockAdapter
}

func TestClientGetProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientProfileSvc(t, ctrl)

	mockAdapter.EXPECT().GetProfile(gomock.Any()).
		Return(models.User{UserID: 42, Username: "alice", Points: 500}, nil)

	user, err := svc.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestClientGetProfile_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientProfileSvc(t, ctrl)

	mockAdapter.EXPECT().GetProfile(gomock.Any()).
		Return(models.User{}, wrapped(adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid))

	_, err := svc.GetProfile(context.Background())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestClientUpdateProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientProfileSvc(t, ctrl)

	firstName := "Alice"
	update := models.ProfileUpdate{FirstName: &firstName}
	avatar := &models.AvatarUpload{Filename: "me.png", Data: []byte("png")}

	mockAdapter.EXPECT().
		UpdateProfile(gomock.Any(), update, avatar).
		Return(models.UpdateUserResponse{
			Message: app.MsgProfileUpdated,
			User:    models.UpdatedProfile{FirstName: "Alice"},
		}, nil)

	updated, err := svc.UpdateProfile(context.Background(), update, avatar)
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.FirstName)
}

func TestClientUpdateProfile_NoFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientProfileSvc(t, ctrl)

	mockAdapter.EXPECT().
		UpdateProfile(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.UpdateUserResponse{Message: app.MsgNoFieldsToUpdate}, nil)

	_, err := svc.UpdateProfile(context.Background(), models.ProfileUpdate{}, nil)
	assert.ErrorIs(t, err, store.ErrNoFieldsToUpdate)
}
