package service

import (
	"context"

	"github.com/ebelikov/lotus/internal/adapter"
	"github.com/ebelikov/lotus/internal/app"
	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/internal/store"
	"github.com/ebelikov/lotus/models"
)

type clientProfileService struct {
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientProfileService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientProfileService {
	return &clientProfileService{serverAdapter: serverAdapter, logger: logger}
}

func (s *clientProfileService) GetProfile(ctx context.Context) (models.User, error) {
	user, err := s.serverAdapter.GetProfile(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "GetProfile").Msg("fetching profile failed")
		return models.User{}, mapAdapterError(err)
	}
	return user, nil
}

// UpdateProfile pushes a partial update to the server. The "no fields"
// outcome arrives as a 200 with an informational message; it is surfaced as
// store.ErrNoFieldsToUpdate so the UI can tell it apart from a real change.
func (s *clientProfileService) UpdateProfile(ctx context.Context, update models.ProfileUpdate, avatar *models.AvatarUpload) (models.UpdatedProfile, error) {
	resp, err := s.serverAdapter.UpdateProfile(ctx, update, avatar)
	if err != nil {
		s.logger.Err(err).Str("func", "UpdateProfile").Msg("profile update failed")
		return models.UpdatedProfile{}, mapAdapterError(err)
	}

	if resp.Message == app.MsgNoFieldsToUpdate {
		return models.UpdatedProfile{}, store.ErrNoFieldsToUpdate
	}

	s.logger.Info().Msg("profile updated")
	return resp.User, nil
}
