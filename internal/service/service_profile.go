package service

import (
	"context"
	"fmt"

	"github.com/ebelikov/lotus/internal/logger"
	"github.com/ebelikov/lotus/internal/store"
	"github.com/ebelikov/lotus/internal/validators"
	"github.com/ebelikov/lotus/models"
)

// profileService is the concrete implementation of ProfileService. It serves
// profile reads and partial profile updates, delegating avatar image storage
// to an [AvatarStorage].
type profileService struct {
	userRepository store.UserRepository
	avatarStorage  AvatarStorage
	validator      validators.Validator

	logger *logger.Logger
}

// NewProfileService constructs a ProfileService. avatarStorage may be nil
// when no blob store is configured; avatar uploads are then rejected with
// ErrAvatarStorageNotConfigured while plain field updates keep working.
func NewProfileService(userRepository store.UserRepository, avatarStorage AvatarStorage, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		avatarStorage:  avatarStorage,
		validator:      validators.NewProfileValidator(),
		logger:         logger,
	}
}

// GetUser returns the current persisted state of the given account.
func (p *profileService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := p.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies a partial update to the user's profile and returns
// the persisted values of the updatable columns.
//
// When avatar is non-nil, the image is stored first and the resulting public
// URL joins the update as its AvatarURL field. Absent fields are left
// untouched in the database; an update that carries nothing at all surfaces
// as store.ErrNoFieldsToUpdate, which callers treat as a no-op rather than
// a failure.
func (p *profileService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate, avatar *models.AvatarUpload) (models.UpdatedProfile, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, update); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("invalid profile update")
		return models.UpdatedProfile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if avatar != nil {
		if p.avatarStorage == nil {
			log.Error().Int64("user_id", userID).Msg("avatar upload attempted without configured blob storage")
			return models.UpdatedProfile{}, ErrAvatarStorageNotConfigured
		}

		if err := p.validator.Validate(ctx, avatar); err != nil {
			log.Err(err).Int64("user_id", userID).Msg("invalid avatar upload")
			return models.UpdatedProfile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}

		owner, err := p.userRepository.GetUserByID(ctx, userID)
		if err != nil {
			log.Err(err).Int64("user_id", userID).Msg("user lookup failed")
			return models.UpdatedProfile{}, fmt.Errorf("user lookup failed: %w", err)
		}

		avatarURL, err := p.avatarStorage.Upload(ctx, owner.Username, *avatar)
		if err != nil {
			log.Err(err).Int64("user_id", userID).Msg("avatar upload failed")
			return models.UpdatedProfile{}, fmt.Errorf("avatar upload failed: %w", err)
		}
		update.AvatarURL = &avatarURL
	}

	updated, err := p.userRepository.UpdateProfile(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile update failed")
		return models.UpdatedProfile{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updated, nil
}
